package models

import (
	"time"
)

type Instructor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Surname   string    `json:"surname" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Bio       string    `json:"bio" gorm:"type:text"`
	Photo     string    `json:"photo" gorm:"size:500"`
	Active    bool      `json:"active" gorm:"default:true"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *Instructor) FullName() string {
	return i.Name + " " + i.Surname
}

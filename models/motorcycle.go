package models

import (
	"time"
)

type Motorcycle struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Image       string    `json:"image" gorm:"size:500"`
	Description string    `json:"description" gorm:"type:text"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
	"motovasiya-api/config"
	"motovasiya-api/models"
	"motovasiya-api/utils"
)

// EmailService notifies instructors about their bookings. When SMTP is not
// configured (empty host) every method is a no-op, so the API works the same
// with or without a mail server.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

func (es *EmailService) enabled() bool {
	return es.dialer != nil
}

// NotifyBookingCreated mails the instructor about a new pending booking.
// Delivery runs in the background; failures are logged, not propagated.
func (es *EmailService) NotifyBookingCreated(instructor *models.Instructor, motorcycle *models.Motorcycle, booking *models.Booking) {
	if !es.enabled() {
		return
	}

	subject := fmt.Sprintf("New booking request - %s %s", utils.FormatDate(booking.Date), booking.TimeSlot)
	body := fmt.Sprintf(
		"Hello %s!\n\nYou have a new booking request.\n\n"+
			"Date: %s\nTime: %s\nMotorcycle: %s\nCustomer: %s %s (%s)\n\n"+
			"The booking is pending until you confirm it.\n",
		instructor.Name,
		utils.FormatDate(booking.Date),
		booking.TimeSlot,
		motorcycle.Name,
		booking.CustomerName,
		booking.CustomerSurname,
		booking.CustomerPhone,
	)

	es.send(instructor.Email, subject, body)
}

// NotifyStatusChanged mails the instructor when a booking's status is updated.
func (es *EmailService) NotifyStatusChanged(instructor *models.Instructor, booking *models.Booking) {
	if !es.enabled() {
		return
	}

	subject := fmt.Sprintf("Booking %s - %s %s", booking.Status, utils.FormatDate(booking.Date), booking.TimeSlot)
	body := fmt.Sprintf(
		"Hello %s!\n\nThe booking for %s %s at %s is now %s.\n",
		instructor.Name,
		booking.CustomerName,
		booking.CustomerSurname,
		booking.TimeSlot,
		booking.Status,
	)

	es.send(instructor.Email, subject, body)
}

func (es *EmailService) send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	go func() {
		if err := es.dialer.DialAndSend(m); err != nil {
			fmt.Printf("Failed to send email to %s: %v\n", to, err)
		}
	}()
}

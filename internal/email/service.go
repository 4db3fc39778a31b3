package email

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/nes268/healmate/internal/config"
	"github.com/nes268/healmate/internal/model"
)

type Service interface {
	SendAppointmentConfirmation(to string, appointment *model.Appointment) error
	SendEmergencyDispatch(to string, booking *model.EmergencyBooking) error
}

// NewService returns an SMTP-backed sender when SMTP is configured and
// a logging no-op otherwise, so callers never branch on configuration.
func NewService(cfg config.SMTPConfig) Service {
	if !cfg.Enabled() {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *smtpService) SendAppointmentConfirmation(to string, appointment *model.Appointment) error {
	body := fmt.Sprintf(
		"Your appointment with %s (%s) on %s at %s is %s.",
		appointment.DoctorName, appointment.Specialty,
		appointment.Date, appointment.Time, appointment.Status,
	)
	return s.send(to, "Appointment confirmed", body)
}

func (s *smtpService) SendEmergencyDispatch(to string, booking *model.EmergencyBooking) error {
	body := fmt.Sprintf(
		"Your %s booking %s was received at %s and is %s.",
		booking.Service, booking.Reference, booking.RequestedAt, booking.Status,
	)
	return s.send(to, "Booking received", body)
}

type noopService struct{}

func (n *noopService) SendAppointmentConfirmation(to string, appointment *model.Appointment) error {
	log.Debug().Str("to", to).Int64("appointment_id", appointment.ID).Msg("smtp disabled, skipping confirmation email")
	return nil
}

func (n *noopService) SendEmergencyDispatch(to string, booking *model.EmergencyBooking) error {
	log.Debug().Str("to", to).Str("reference", booking.Reference).Msg("smtp disabled, skipping dispatch email")
	return nil
}

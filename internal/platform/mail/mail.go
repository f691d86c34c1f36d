// Package mail sends appointment confirmation email over SMTP. Delivery is
// best-effort: callers log failures and never fail the operation that
// triggered the message.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gomail/gomail"
)

// Sender is the interface booking code depends on; tests provide a mock.
type Sender interface {
	SendAppointmentConfirmation(ctx context.Context, m Confirmation) error
}

// Confirmation carries everything the booking confirmation template needs.
type Confirmation struct {
	PatientEmail    string
	PatientName     string
	DoctorName      string
	Specialty       string
	AppointmentTime time.Time
}

// Config holds SMTP settings for the outbound mailer.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPSender delivers confirmations through an SMTP relay using gomail.
type SMTPSender struct {
	cfg Config

	// dial is swappable in tests so no SMTP connection is attempted.
	dial func(m *gomail.Message) error
}

func NewSMTPSender(cfg Config) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPSender{
		cfg:  cfg,
		dial: func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

func (s *SMTPSender) SendAppointmentConfirmation(ctx context.Context, conf Confirmation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", conf.PatientEmail)
	m.SetHeader("Subject", "Appointment Confirmed - MediHive")
	m.SetBody("text/html", confirmationBody(conf))

	if err := s.dial(m); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", conf.PatientEmail, err)
	}
	return nil
}

func confirmationBody(conf Confirmation) string {
	when := conf.AppointmentTime.Format("Monday, 2 January 2006 at 15:04 MST")
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #2dd4bf; margin-bottom: 8px;">MediHive</h1>
  <h2>Appointment Confirmed!</h2>
  <p>Hi %s,</p>
  <p>Your appointment has been successfully booked.</p>
  <div style="background: #f1f5f9; border-radius: 12px; padding: 20px; margin: 20px 0;">
    <p style="margin: 8px 0;"><strong>Doctor:</strong> Dr. %s</p>
    <p style="margin: 8px 0;"><strong>Specialty:</strong> %s</p>
    <p style="margin: 8px 0;"><strong>Date &amp; Time:</strong> %s</p>
  </div>
  <p>Please arrive 10 minutes early.</p>
  <p style="font-size: 12px; color: #64748b;">MediHive Medical Platform</p>
</div>`, conf.PatientName, conf.DoctorName, conf.Specialty, when)
}

// Noop is used when SMTP is not configured; it swallows every message.
type Noop struct{}

func (Noop) SendAppointmentConfirmation(context.Context, Confirmation) error { return nil }

// Package notifier sends the owner an email when a new booking is created.
// Sends are best-effort; callers log failures and move on.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

// Mailer delivers booking notifications through the MailerSend API.
type Mailer struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	toEmail   string
}

// Config holds the delivery settings for a Mailer.
type Config struct {
	APIKey    string
	FromName  string
	FromEmail string
	ToEmail   string
}

// ConfigFromEnv reads mailer settings from the environment. Settings
// stored in the database take precedence for the recipient and sender
// addresses; see NewFromSettings.
func ConfigFromEnv() Config {
	return Config{
		APIKey:    os.Getenv("MAILERSEND_API_KEY"),
		FromName:  constants.AppName,
		FromEmail: os.Getenv("MAILERSEND_FROM_EMAIL"),
		ToEmail:   os.Getenv("NOTIFICATION_EMAIL"),
	}
}

// New creates a Mailer. An empty API key is an error since every send
// would fail.
func New(cfg Config) (*Mailer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing MailerSend API key")
	}
	return &Mailer{
		client:    mailersend.NewMailersend(cfg.APIKey),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		toEmail:   cfg.ToEmail,
	}, nil
}

// NewFromSettings creates a Mailer from the environment, letting stored
// settings override the sender and recipient addresses.
func NewFromSettings(settings models.Settings) (*Mailer, error) {
	cfg := ConfigFromEnv()
	if settings.NotificationEmail != "" {
		cfg.ToEmail = settings.NotificationEmail
	}
	if settings.NotificationFrom != "" {
		cfg.FromEmail = settings.NotificationFrom
	}
	return New(cfg)
}

// NotifyNewBooking emails the booking summary to the configured
// recipient.
func (m *Mailer) NotifyNewBooking(res models.Reservation) error {
	if m.toEmail == "" {
		return errors.New("no notification recipient configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.NotifyTimeoutSec*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Email: m.toEmail}})
	message.SetSubject(Subject(res))
	message.SetText(Body(res))

	if _, err := m.client.Email.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// Subject builds the notification subject line.
func Subject(res models.Reservation) string {
	return fmt.Sprintf("%s: %s in %s", constants.NotifySubjectPrefix, res.GuestName, res.Room)
}

// Body builds the plain-text notification body with human-readable dates
// and the night count.
func Body(res models.Reservation) string {
	nights, err := utils.Nights(res.CheckIn, res.CheckOut)
	if err != nil {
		nights = 0
	}
	nightsLabel := "nights"
	if nights == 1 {
		nightsLabel = "night"
	}
	return fmt.Sprintf(
		"New booking for %s\n\nGuest: %s\nCheck-in: %s\nCheck-out: %s\nLength: %d %s\n",
		res.Room,
		res.GuestName,
		utils.FormatHuman(res.CheckIn),
		utils.FormatHuman(res.CheckOut),
		nights, nightsLabel,
	)
}

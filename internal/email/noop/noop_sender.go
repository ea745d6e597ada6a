package noop

import (
	"context"
	"log"

	"voyago/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendApplicationReceivedEmail(_ context.Context, toEmail, toName, countryName, applicationID string) error {
	log.Printf("[NOOP EMAIL] Application received email for %s (%s): %s application %s", toName, toEmail, countryName, applicationID)
	return nil
}

func (s *noopSender) SendBookingConfirmationEmail(_ context.Context, toEmail, toName, packageTitle string, totalPrice float64) error {
	log.Printf("[NOOP EMAIL] Booking confirmation for %s (%s): %s total %.2f", toName, toEmail, packageTitle, totalPrice)
	return nil
}

package port

import "context"

// EmailSender defines the contract for sending transactional emails.
type EmailSender interface {
	SendApplicationReceivedEmail(ctx context.Context, toEmail, toName, countryName, applicationID string) error
	SendBookingConfirmationEmail(ctx context.Context, toEmail, toName, packageTitle string, totalPrice float64) error
}

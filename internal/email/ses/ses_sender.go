package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"voyago/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendApplicationReceivedEmail(ctx context.Context, toEmail, toName, countryName, applicationID string) error {
	trackURL := fmt.Sprintf("%s/dashboard/applications/%s", s.frontendURL, applicationID)

	subject := fmt.Sprintf("We received your %s visa application", countryName)
	htmlBody := buildApplicationReceivedHTML(toName, countryName, trackURL)
	textBody := fmt.Sprintf("Hi %s,\n\nWe received your visa application for %s and our team has started reviewing it. You can follow its progress here:\n%s\n\nVoyago Team", toName, countryName, trackURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendBookingConfirmationEmail(ctx context.Context, toEmail, toName, packageTitle string, totalPrice float64) error {
	bookingsURL := fmt.Sprintf("%s/dashboard/bookings", s.frontendURL)

	subject := fmt.Sprintf("Booking request received: %s", packageTitle)
	htmlBody := buildBookingConfirmationHTML(toName, packageTitle, totalPrice, bookingsURL)
	textBody := fmt.Sprintf("Hi %s,\n\nYour booking request for %s has been received. Total price: %.2f. We will confirm availability shortly. Manage your bookings here:\n%s\n\nVoyago Team", toName, packageTitle, totalPrice, bookingsURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildApplicationReceivedHTML(name, countryName, trackURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Application received</h2>
  <p>Hi %s,</p>
  <p>We received your visa application for <strong>%s</strong> and our team has started reviewing it.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0EA5E9; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Track Application</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Voyago - Visa &amp; Travel Services</p>
</body>
</html>`, name, countryName, trackURL, trackURL)
}

func buildBookingConfirmationHTML(name, packageTitle string, totalPrice float64, bookingsURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Booking request received</h2>
  <p>Hi %s,</p>
  <p>Your booking request for <strong>%s</strong> has been received. Total price: <strong>%.2f</strong>.</p>
  <p>We will confirm availability and get back to you shortly.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0EA5E9; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">My Bookings</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Voyago - Visa &amp; Travel Services</p>
</body>
</html>`, name, packageTitle, totalPrice, bookingsURL)
}

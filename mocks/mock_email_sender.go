package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendApplicationReceivedEmail(ctx context.Context, toEmail, toName, countryName, applicationID string) error {
	args := m.Called(ctx, toEmail, toName, countryName, applicationID)
	return args.Error(0)
}

func (m *MockEmailSender) SendBookingConfirmationEmail(ctx context.Context, toEmail, toName, packageTitle string, totalPrice float64) error {
	args := m.Called(ctx, toEmail, toName, packageTitle, totalPrice)
	return args.Error(0)
}

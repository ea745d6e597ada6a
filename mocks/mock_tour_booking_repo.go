package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockTourBookingRepo is a mock implementation of port.TourBookingRepository.
type MockTourBookingRepo struct {
	mock.Mock
}

func (m *MockTourBookingRepo) Create(ctx context.Context, booking *domain.TourBooking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockTourBookingRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TourBooking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourBooking), args.Error(1)
}

func (m *MockTourBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.TourBooking, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TourBooking), args.Int(1), args.Error(2)
}

func (m *MockTourBookingRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.BookingStatus) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

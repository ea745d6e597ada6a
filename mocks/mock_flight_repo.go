package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockFlightRepo is a mock implementation of port.FlightRepository.
type MockFlightRepo struct {
	mock.Mock
}

func (m *MockFlightRepo) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepo) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

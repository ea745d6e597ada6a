package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockVisaTypeRepo is a mock implementation of port.VisaTypeRepository.
type MockVisaTypeRepo struct {
	mock.Mock
}

func (m *MockVisaTypeRepo) Create(ctx context.Context, vt *domain.VisaType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVisaTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VisaType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisaType), args.Error(1)
}

func (m *MockVisaTypeRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaType), args.Error(1)
}

func (m *MockVisaTypeRepo) ListActive(ctx context.Context) ([]domain.VisaType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaType), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockTourPackageRepo is a mock implementation of port.TourPackageRepository.
type MockTourPackageRepo struct {
	mock.Mock
}

func (m *MockTourPackageRepo) Create(ctx context.Context, pkg *domain.TourPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockTourPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepo) ListActive(ctx context.Context) ([]domain.TourPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.TourPackage, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockVisaRequirementRepo is a mock implementation of port.VisaRequirementRepository.
type MockVisaRequirementRepo struct {
	mock.Mock
}

func (m *MockVisaRequirementRepo) Create(ctx context.Context, req *domain.VisaRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVisaRequirementRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaRequirement, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaRequirement), args.Error(1)
}

func (m *MockVisaRequirementRepo) DeleteByCountry(ctx context.Context, countryID uuid.UUID) error {
	args := m.Called(ctx, countryID)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockApplicationRepo is a mock implementation of port.ApplicationRepository.
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.VisaApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisaApplication), args.Error(1)
}

func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VisaApplication), args.Int(1), args.Error(2)
}

func (m *MockApplicationRepo) ListAll(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VisaApplication), args.Int(1), args.Error(2)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepo) CountByUser(ctx context.Context, userID uuid.UUID) (map[domain.ApplicationStatus]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ApplicationStatus]int), args.Error(1)
}

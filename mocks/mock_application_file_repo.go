package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockApplicationFileRepo is a mock implementation of port.ApplicationFileRepository.
type MockApplicationFileRepo struct {
	mock.Mock
}

func (m *MockApplicationFileRepo) Create(ctx context.Context, file *domain.ApplicationFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockApplicationFileRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.ApplicationFile, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationFile), args.Error(1)
}

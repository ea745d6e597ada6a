package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
	"voyago/internal/service"
)

// MockApplicationService is a mock implementation of service.ApplicationService.
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, input service.SubmitApplicationInput) (*service.SubmissionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionResult), args.Error(1)
}

func (m *MockApplicationService) SubmitWizard(ctx context.Context, input service.SubmitWizardInput) (*service.SubmissionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionResult), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisaApplication), args.Error(1)
}

func (m *MockApplicationService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VisaApplication), args.Int(1), args.Error(2)
}

func (m *MockApplicationService) ListFiles(ctx context.Context, userID, applicationID uuid.UUID) ([]domain.ApplicationFile, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationFile), args.Error(1)
}

func (m *MockApplicationService) GetFileURL(ctx context.Context, userID, applicationID, fileID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID, applicationID, fileID)
	return args.String(0), args.Error(1)
}

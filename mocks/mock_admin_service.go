package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListApplications(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VisaApplication), args.Int(1), args.Error(2)
}

func (m *MockAdminService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAdminService) ExportApplicationsCSV(ctx context.Context, status domain.ApplicationStatus, w io.Writer) error {
	args := m.Called(ctx, status, w)
	return args.Error(0)
}

func (m *MockAdminService) SetCountryActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockAdminService) SetTourPackageActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

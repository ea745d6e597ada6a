package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
	"voyago/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCatalogService) GetCountry(ctx context.Context, id uuid.UUID) (*service.CountryDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CountryDetail), args.Error(1)
}

func (m *MockCatalogService) GetCountryByCode(ctx context.Context, code string) (*service.CountryDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CountryDetail), args.Error(1)
}

func (m *MockCatalogService) ListVisaTypes(ctx context.Context) ([]domain.VisaType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaType), args.Error(1)
}

func (m *MockCatalogService) ListVisaTypesByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaType), args.Error(1)
}

func (m *MockCatalogService) GetVisaType(ctx context.Context, id uuid.UUID) (*domain.VisaType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisaType), args.Error(1)
}

func (m *MockCatalogService) ListTourPackages(ctx context.Context) ([]domain.TourPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourPackage), args.Error(1)
}

func (m *MockCatalogService) GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourPackage), args.Error(1)
}

func (m *MockCatalogService) SearchFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

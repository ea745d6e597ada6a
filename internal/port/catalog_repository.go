package port

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain"
)

// CountryRepository defines the contract for the country catalog.
type CountryRepository interface {
	Create(ctx context.Context, country *domain.Country) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	GetByCode(ctx context.Context, code string) (*domain.Country, error)
	ListActive(ctx context.Context) ([]domain.Country, error)
	Update(ctx context.Context, country *domain.Country) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// VisaRequirementRepository defines the contract for per-country form schemas.
type VisaRequirementRepository interface {
	Create(ctx context.Context, req *domain.VisaRequirement) error
	ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaRequirement, error)
	DeleteByCountry(ctx context.Context, countryID uuid.UUID) error
}

// VisaTypeRepository defines the contract for the wizard visa catalog.
type VisaTypeRepository interface {
	Create(ctx context.Context, vt *domain.VisaType) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VisaType, error)
	ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error)
	ListActive(ctx context.Context) ([]domain.VisaType, error)
}

// FlightRepository defines the contract for the flight deal catalog. Empty
// filter fields match everything.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/form"
	"voyago/internal/port"
)

// CountryDetail bundles a country with its rendered application form schema.
type CountryDetail struct {
	Country domain.Country         `json:"country"`
	Form    []form.FieldDescriptor `json:"form"`
}

// CatalogService exposes the public browse surface: countries, their form
// schemas, visa types, tour packages, and flight deals.
type CatalogService interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*CountryDetail, error)
	GetCountryByCode(ctx context.Context, code string) (*CountryDetail, error)
	ListVisaTypes(ctx context.Context) ([]domain.VisaType, error)
	ListVisaTypesByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error)
	GetVisaType(ctx context.Context, id uuid.UUID) (*domain.VisaType, error)
	ListTourPackages(ctx context.Context) ([]domain.TourPackage, error)
	GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error)
	SearchFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type catalogService struct {
	countryRepo port.CountryRepository
	reqRepo     port.VisaRequirementRepository
	typeRepo    port.VisaTypeRepository
	pkgRepo     port.TourPackageRepository
	flightRepo  port.FlightRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(
	countryRepo port.CountryRepository,
	reqRepo port.VisaRequirementRepository,
	typeRepo port.VisaTypeRepository,
	pkgRepo port.TourPackageRepository,
	flightRepo port.FlightRepository,
) CatalogService {
	return &catalogService{
		countryRepo: countryRepo,
		reqRepo:     reqRepo,
		typeRepo:    typeRepo,
		pkgRepo:     pkgRepo,
		flightRepo:  flightRepo,
	}
}

func (s *catalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.countryRepo.ListActive(ctx)
}

func (s *catalogService) GetCountry(ctx context.Context, id uuid.UUID) (*CountryDetail, error) {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withForm(ctx, country)
}

func (s *catalogService) GetCountryByCode(ctx context.Context, code string) (*CountryDetail, error) {
	country, err := s.countryRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.withForm(ctx, country)
}

func (s *catalogService) withForm(ctx context.Context, country *domain.Country) (*CountryDetail, error) {
	reqs, err := s.reqRepo.ListByCountry(ctx, country.ID)
	if err != nil {
		return nil, fmt.Errorf("catalogService: loading form schema: %w", err)
	}
	return &CountryDetail{
		Country: *country,
		Form:    form.Descriptors(reqs),
	}, nil
}

func (s *catalogService) ListVisaTypes(ctx context.Context) ([]domain.VisaType, error) {
	return s.typeRepo.ListActive(ctx)
}

func (s *catalogService) ListVisaTypesByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error) {
	return s.typeRepo.ListByCountry(ctx, countryID)
}

func (s *catalogService) GetVisaType(ctx context.Context, id uuid.UUID) (*domain.VisaType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *catalogService) ListTourPackages(ctx context.Context) ([]domain.TourPackage, error) {
	return s.pkgRepo.ListActive(ctx)
}

func (s *catalogService) GetTourPackage(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	return s.pkgRepo.GetByID(ctx, id)
}

func (s *catalogService) SearchFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	return s.flightRepo.Search(ctx, filter)
}

package port

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain"
)

// TourPackageRepository defines the contract for the tour catalog.
type TourPackageRepository interface {
	Create(ctx context.Context, pkg *domain.TourPackage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error)
	ListActive(ctx context.Context) ([]domain.TourPackage, error)
	ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.TourPackage, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// TourBookingRepository defines the contract for tour reservations.
type TourBookingRepository interface {
	Create(ctx context.Context, booking *domain.TourBooking) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TourBooking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.TourBooking, int, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.BookingStatus) error
}

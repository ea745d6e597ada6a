package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/port"
)

// CreateBookingInput is the DTO for tour booking requests.
type CreateBookingInput struct {
	UserID          uuid.UUID
	PackageID       uuid.UUID `json:"package_id" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	NumberOfPeople  int       `json:"number_of_people" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

// BookingService defines the tour booking contract.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.TourBooking, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TourBooking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.TourBooking, int, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) error
}

type bookingService struct {
	bookingRepo port.TourBookingRepository
	pkgRepo     port.TourPackageRepository
	userRepo    port.UserRepository
	email       port.EmailSender
}

// NewBookingService creates a new BookingService implementation.
func NewBookingService(
	bookingRepo port.TourBookingRepository,
	pkgRepo port.TourPackageRepository,
	userRepo port.UserRepository,
	email port.EmailSender,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		pkgRepo:     pkgRepo,
		userRepo:    userRepo,
		email:       email,
	}
}

// Create books a tour package. The total price is always derived server-side
// from the package price and the head count.
func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.TourBooking, error) {
	pkg, err := s.pkgRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if pkg.MaxPeople > 0 && input.NumberOfPeople > pkg.MaxPeople {
		return nil, domain.ErrTooManyPeople
	}

	booking := &domain.TourBooking{
		UserID:          input.UserID,
		PackageID:       pkg.ID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		NumberOfPeople:  input.NumberOfPeople,
		Status:          domain.BookingStatusPending,
		SpecialRequests: input.SpecialRequests,
		TotalPrice:      pkg.Price * float64(input.NumberOfPeople),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Confirmation email is best effort.
	if user, err := s.userRepo.GetByID(ctx, input.UserID); err == nil {
		if err := s.email.SendBookingConfirmationEmail(ctx, user.Email, user.FullName, pkg.Title, booking.TotalPrice); err != nil {
			log.Printf("bookingService.Create: confirmation email to %s failed: %v", user.Email, err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TourBooking, error) {
	return s.bookingRepo.GetByID(ctx, userID, id)
}

func (s *bookingService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.TourBooking, int, error) {
	return s.bookingRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *bookingService) Cancel(ctx context.Context, userID, id uuid.UUID) error {
	return s.bookingRepo.UpdateStatus(ctx, userID, id, domain.BookingStatusCancelled)
}

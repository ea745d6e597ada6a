package service

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/port"
)

// UpdateProfileInput is the DTO for profile updates.
type UpdateProfileInput struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// DashboardSummary aggregates a user's activity for the dashboard page.
type DashboardSummary struct {
	ApplicationCounts map[domain.ApplicationStatus]int `json:"application_counts"`
	RecentApps        []domain.VisaApplication         `json:"recent_applications"`
	RecentBookings    []domain.TourBooking             `json:"recent_bookings"`
}

// UserService defines the profile and dashboard contract.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error)
}

type userService struct {
	userRepo    port.UserRepository
	appRepo     port.ApplicationRepository
	bookingRepo port.TourBookingRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(
	userRepo port.UserRepository,
	appRepo port.ApplicationRepository,
	bookingRepo port.TourBookingRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		appRepo:     appRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FullName = input.FullName
	user.Phone = input.Phone
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	counts, err := s.appRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	apps, _, err := s.appRepo.ListByUser(ctx, userID, 0, 5)
	if err != nil {
		return nil, err
	}
	bookings, _, err := s.bookingRepo.ListByUser(ctx, userID, 0, 5)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		ApplicationCounts: counts,
		RecentApps:        apps,
		RecentBookings:    bookings,
	}, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voyago/internal/domain"
	"voyago/internal/service"
	"voyago/mocks"
)

func newBookingService() (service.BookingService, *mocks.MockTourBookingRepo, *mocks.MockTourPackageRepo, *mocks.MockUserRepo, *mocks.MockEmailSender) {
	bookingRepo := new(mocks.MockTourBookingRepo)
	pkgRepo := new(mocks.MockTourPackageRepo)
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)
	svc := service.NewBookingService(bookingRepo, pkgRepo, userRepo, email)
	return svc, bookingRepo, pkgRepo, userRepo, email
}

func baliPackage() *domain.TourPackage {
	return &domain.TourPackage{
		ID:           uuid.New(),
		Title:        "Bali Escape 5 Days",
		DurationDays: 5,
		Price:        45000,
		MaxPeople:    8,
		IsActive:     true,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, pkgRepo, userRepo, email := newBookingService()

	pkg := baliPackage()
	userID := uuid.New()

	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TourBooking")).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Email: "jane@example.com", FullName: "Jane Rahman"}, nil)
	email.On("SendBookingConfirmationEmail", mock.Anything, "jane@example.com", "Jane Rahman",
		pkg.Title, float64(135000)).Return(nil)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.Create(context.Background(), service.CreateBookingInput{
		UserID:         userID,
		PackageID:      pkg.ID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 5),
		NumberOfPeople: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(135000), booking.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	bookingRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	svc, bookingRepo, pkgRepo, _, _ := newBookingService()

	pkg := baliPackage()
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		UserID:         uuid.New(),
		PackageID:      pkg.ID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, -1),
		NumberOfPeople: 2,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_TooManyPeople(t *testing.T) {
	svc, bookingRepo, pkgRepo, _, _ := newBookingService()

	pkg := baliPackage()
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		UserID:         uuid.New(),
		PackageID:      pkg.ID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 5),
		NumberOfPeople: 9,
	})

	assert.ErrorIs(t, err, domain.ErrTooManyPeople)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_UnknownPackage(t *testing.T) {
	svc, _, pkgRepo, _, _ := newBookingService()

	pkgID := uuid.New()
	pkgRepo.On("GetByID", mock.Anything, pkgID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		UserID:         uuid.New(),
		PackageID:      pkgID,
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 0, 5),
		NumberOfPeople: 2,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Create_EmailFailureDoesNotFailBooking(t *testing.T) {
	svc, bookingRepo, pkgRepo, userRepo, email := newBookingService()

	pkg := baliPackage()
	userID := uuid.New()

	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TourBooking")).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)
	email.On("SendBookingConfirmationEmail", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(errors.New("ses throttled"))

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.Create(context.Background(), service.CreateBookingInput{
		UserID:         userID,
		PackageID:      pkg.ID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 5),
		NumberOfPeople: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, pkg.Price, booking.TotalPrice)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService()

	userID := uuid.New()
	bookingID := uuid.New()
	bookingRepo.On("UpdateStatus", mock.Anything, userID, bookingID, domain.BookingStatusCancelled).Return(nil)

	err := svc.Cancel(context.Background(), userID, bookingID)
	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

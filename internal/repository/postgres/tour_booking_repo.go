package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"voyago/internal/domain"
	"voyago/internal/port"
)

type tourBookingRepo struct {
	db *sqlx.DB
}

// NewTourBookingRepo creates a new PostgreSQL-backed TourBookingRepository.
func NewTourBookingRepo(db *sqlx.DB) port.TourBookingRepository {
	return &tourBookingRepo{db: db}
}

func (r *tourBookingRepo) Create(ctx context.Context, booking *domain.TourBooking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.BookingDate = now
	if booking.Status == "" {
		booking.Status = domain.BookingStatusPending
	}

	query := `INSERT INTO tour_bookings (id, user_id, package_id, start_date, end_date,
		number_of_people, status, special_requests, total_price, booking_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.UserID, booking.PackageID, booking.StartDate, booking.EndDate,
		booking.NumberOfPeople, booking.Status, booking.SpecialRequests, booking.TotalPrice,
		booking.BookingDate, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tourBookingRepo.Create: %w", err)
	}
	return nil
}

func (r *tourBookingRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TourBooking, error) {
	var booking domain.TourBooking
	err := r.db.GetContext(ctx, &booking,
		"SELECT * FROM tour_bookings WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("tourBookingRepo.GetByID: %w", err)
	}
	return &booking, nil
}

func (r *tourBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.TourBooking, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM tour_bookings WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("tourBookingRepo.ListByUser count: %w", err)
	}

	var bookings []domain.TourBooking
	err = r.db.SelectContext(ctx, &bookings,
		"SELECT * FROM tour_bookings WHERE user_id = $1 ORDER BY booking_date DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("tourBookingRepo.ListByUser: %w", err)
	}
	return bookings, total, nil
}

func (r *tourBookingRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.BookingStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tour_bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3",
		status, id, userID)
	if err != nil {
		return fmt.Errorf("tourBookingRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

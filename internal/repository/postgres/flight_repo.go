package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"voyago/internal/domain"
	"voyago/internal/port"
)

type flightRepo struct {
	db *sqlx.DB
}

// NewFlightRepo creates a new PostgreSQL-backed FlightRepository.
func NewFlightRepo(db *sqlx.DB) port.FlightRepository {
	return &flightRepo{db: db}
}

func (r *flightRepo) Create(ctx context.Context, flight *domain.Flight) error {
	flight.ID = uuid.New()
	flight.CreatedAt = time.Now().UTC()

	query := `INSERT INTO flights (id, origin_code, destination_code, departure_date,
		return_date, price, airline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		flight.ID, flight.OriginCode, flight.DestinationCode, flight.DepartureDate,
		flight.ReturnDate, flight.Price, flight.Airline, flight.CreatedAt)
	if err != nil {
		return fmt.Errorf("flightRepo.Create: %w", err)
	}
	return nil
}

func (r *flightRepo) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	query := "SELECT * FROM flights WHERE 1=1"
	var args []interface{}

	if filter.OriginCode != "" {
		args = append(args, filter.OriginCode)
		query += fmt.Sprintf(" AND origin_code = $%d", len(args))
	}
	if filter.DestinationCode != "" {
		args = append(args, filter.DestinationCode)
		query += fmt.Sprintf(" AND destination_code = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND departure_date::date = $%d::date", len(args))
	}
	query += " ORDER BY price ASC"

	var flights []domain.Flight
	if err := r.db.SelectContext(ctx, &flights, query, args...); err != nil {
		return nil, fmt.Errorf("flightRepo.Search: %w", err)
	}
	return flights, nil
}

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

type tourPackageRepo struct {
	db *sqlx.DB
}

// NewTourPackageRepo creates a new PostgreSQL-backed TourPackageRepository.
func NewTourPackageRepo(db *sqlx.DB) port.TourPackageRepository {
	return &tourPackageRepo{db: db}
}

func (r *tourPackageRepo) Create(ctx context.Context, pkg *domain.TourPackage) error {
	pkg.ID = uuid.New()
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	query := `INSERT INTO tour_packages (id, country_id, title, description, duration_days,
		price, max_people, highlights, itinerary, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		pkg.ID, pkg.CountryID, pkg.Title, pkg.Description, pkg.DurationDays,
		pkg.Price, pkg.MaxPeople, pkg.Highlights, pkg.Itinerary, pkg.ImageURL,
		pkg.IsActive, pkg.CreatedAt, pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tourPackageRepo.Create: %w", err)
	}
	return nil
}

func (r *tourPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TourPackage, error) {
	var pkg domain.TourPackage
	err := r.db.GetContext(ctx, &pkg, "SELECT * FROM tour_packages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("tourPackageRepo.GetByID: %w", err)
	}
	return &pkg, nil
}

func (r *tourPackageRepo) ListActive(ctx context.Context) ([]domain.TourPackage, error) {
	var pkgs []domain.TourPackage
	err := r.db.SelectContext(ctx, &pkgs,
		"SELECT * FROM tour_packages WHERE is_active = true ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("tourPackageRepo.ListActive: %w", err)
	}
	return pkgs, nil
}

func (r *tourPackageRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.TourPackage, error) {
	var pkgs []domain.TourPackage
	err := r.db.SelectContext(ctx, &pkgs,
		"SELECT * FROM tour_packages WHERE country_id = $1 AND is_active = true ORDER BY price ASC",
		countryID)
	if err != nil {
		return nil, fmt.Errorf("tourPackageRepo.ListByCountry: %w", err)
	}
	return pkgs, nil
}

func (r *tourPackageRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tour_packages SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("tourPackageRepo.SetActive: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

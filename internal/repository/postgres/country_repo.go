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

type countryRepo struct {
	db *sqlx.DB
}

// NewCountryRepo creates a new PostgreSQL-backed CountryRepository.
func NewCountryRepo(db *sqlx.DB) port.CountryRepository {
	return &countryRepo{db: db}
}

func (r *countryRepo) Create(ctx context.Context, country *domain.Country) error {
	country.ID = uuid.New()
	now := time.Now().UTC()
	country.CreatedAt = now
	country.UpdatedAt = now

	query := `INSERT INTO countries (id, name, code, priority, description, flag_url,
		visa_processing_days, visa_fee, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		country.ID, country.Name, country.Code, country.Priority, country.Description,
		country.FlagURL, country.VisaProcessingDays, country.VisaFee, country.IsActive,
		country.CreatedAt, country.UpdatedAt)
	if err != nil {
		return fmt.Errorf("countryRepo.Create: %w", err)
	}
	return nil
}

func (r *countryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	var country domain.Country
	err := r.db.GetContext(ctx, &country, "SELECT * FROM countries WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("countryRepo.GetByID: %w", err)
	}
	return &country, nil
}

func (r *countryRepo) GetByCode(ctx context.Context, code string) (*domain.Country, error) {
	var country domain.Country
	err := r.db.GetContext(ctx, &country, "SELECT * FROM countries WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("countryRepo.GetByCode: %w", err)
	}
	return &country, nil
}

func (r *countryRepo) ListActive(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	err := r.db.SelectContext(ctx, &countries,
		"SELECT * FROM countries WHERE is_active = true ORDER BY priority ASC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("countryRepo.ListActive: %w", err)
	}
	return countries, nil
}

func (r *countryRepo) Update(ctx context.Context, country *domain.Country) error {
	country.UpdatedAt = time.Now().UTC()
	query := `UPDATE countries SET name = $1, code = $2, priority = $3, description = $4,
		flag_url = $5, visa_processing_days = $6, visa_fee = $7, is_active = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		country.Name, country.Code, country.Priority, country.Description, country.FlagURL,
		country.VisaProcessingDays, country.VisaFee, country.IsActive, country.UpdatedAt, country.ID)
	if err != nil {
		return fmt.Errorf("countryRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *countryRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE countries SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("countryRepo.SetActive: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

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

type visaTypeRepo struct {
	db *sqlx.DB
}

// NewVisaTypeRepo creates a new PostgreSQL-backed VisaTypeRepository.
func NewVisaTypeRepo(db *sqlx.DB) port.VisaTypeRepository {
	return &visaTypeRepo{db: db}
}

func (r *visaTypeRepo) Create(ctx context.Context, vt *domain.VisaType) error {
	vt.ID = uuid.New()
	now := time.Now().UTC()
	vt.CreatedAt = now
	vt.UpdatedAt = now

	query := `INSERT INTO visa_types (id, country_id, name, validity, max_stay, visa_category,
		processing_days, fee, country_overview, requirements, faqs, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		vt.ID, vt.CountryID, vt.Name, vt.Validity, vt.MaxStay, vt.VisaCategory,
		vt.ProcessingDays, vt.Fee, vt.CountryOverview, vt.Requirements, vt.FAQs,
		vt.IsActive, vt.CreatedAt, vt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("visaTypeRepo.Create: %w", err)
	}
	return nil
}

func (r *visaTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VisaType, error) {
	var vt domain.VisaType
	err := r.db.GetContext(ctx, &vt, "SELECT * FROM visa_types WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("visaTypeRepo.GetByID: %w", err)
	}
	return &vt, nil
}

func (r *visaTypeRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaType, error) {
	var types []domain.VisaType
	err := r.db.SelectContext(ctx, &types,
		"SELECT * FROM visa_types WHERE country_id = $1 AND is_active = true ORDER BY fee ASC", countryID)
	if err != nil {
		return nil, fmt.Errorf("visaTypeRepo.ListByCountry: %w", err)
	}
	return types, nil
}

func (r *visaTypeRepo) ListActive(ctx context.Context) ([]domain.VisaType, error) {
	var types []domain.VisaType
	err := r.db.SelectContext(ctx, &types,
		"SELECT * FROM visa_types WHERE is_active = true ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("visaTypeRepo.ListActive: %w", err)
	}
	return types, nil
}

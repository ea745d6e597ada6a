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

type visaRequirementRepo struct {
	db *sqlx.DB
}

// NewVisaRequirementRepo creates a new PostgreSQL-backed VisaRequirementRepository.
func NewVisaRequirementRepo(db *sqlx.DB) port.VisaRequirementRepository {
	return &visaRequirementRepo{db: db}
}

func (r *visaRequirementRepo) Create(ctx context.Context, req *domain.VisaRequirement) error {
	req.ID = uuid.New()
	req.CreatedAt = time.Now().UTC()

	query := `INSERT INTO visa_requirements (id, country_id, field_name, field_type, field_label,
		is_required, options, placeholder, order_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.CountryID, req.FieldName, req.FieldType, req.FieldLabel,
		req.IsRequired, req.Options, req.Placeholder, req.OrderIndex, req.CreatedAt)
	if err != nil {
		return fmt.Errorf("visaRequirementRepo.Create: %w", err)
	}
	return nil
}

func (r *visaRequirementRepo) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.VisaRequirement, error) {
	var reqs []domain.VisaRequirement
	err := r.db.SelectContext(ctx, &reqs,
		"SELECT * FROM visa_requirements WHERE country_id = $1 ORDER BY order_index ASC", countryID)
	if err != nil {
		return nil, fmt.Errorf("visaRequirementRepo.ListByCountry: %w", err)
	}
	return reqs, nil
}

func (r *visaRequirementRepo) DeleteByCountry(ctx context.Context, countryID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM visa_requirements WHERE country_id = $1", countryID)
	if err != nil {
		return fmt.Errorf("visaRequirementRepo.DeleteByCountry: %w", err)
	}
	return nil
}

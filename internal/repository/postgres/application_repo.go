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

type applicationRepo struct {
	db *sqlx.DB
}

// NewApplicationRepo creates a new PostgreSQL-backed ApplicationRepository.
func NewApplicationRepo(db *sqlx.DB) port.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.VisaApplication) error {
	app.ID = uuid.New()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	app.SubmittedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	query := `INSERT INTO visa_applications (id, user_id, country_id, visa_type_id, status,
		application_data, submitted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.UserID, app.CountryID, app.VisaTypeID, app.Status,
		app.ApplicationData, app.SubmittedAt, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("applicationRepo.Create: %w", err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error) {
	var app domain.VisaApplication
	err := r.db.GetContext(ctx, &app,
		"SELECT * FROM visa_applications WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("applicationRepo.GetByID: %w", err)
	}
	return &app, nil
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM visa_applications WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("applicationRepo.ListByUser count: %w", err)
	}

	var apps []domain.VisaApplication
	err = r.db.SelectContext(ctx, &apps,
		"SELECT * FROM visa_applications WHERE user_id = $1 ORDER BY submitted_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("applicationRepo.ListByUser: %w", err)
	}
	return apps, total, nil
}

func (r *applicationRepo) ListAll(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM visa_applications"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("applicationRepo.ListAll count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM visa_applications%s ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var apps []domain.VisaApplication
	err = r.db.SelectContext(ctx, &apps, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("applicationRepo.ListAll: %w", err)
	}
	return apps, total, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE visa_applications SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("applicationRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) CountByUser(ctx context.Context, userID uuid.UUID) (map[domain.ApplicationStatus]int, error) {
	rows := []struct {
		Status domain.ApplicationStatus `db:"status"`
		Count  int                      `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT status, COUNT(*) AS count FROM visa_applications WHERE user_id = $1 GROUP BY status", userID)
	if err != nil {
		return nil, fmt.Errorf("applicationRepo.CountByUser: %w", err)
	}

	counts := make(map[domain.ApplicationStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

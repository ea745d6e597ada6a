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

type applicationFileRepo struct {
	db *sqlx.DB
}

// NewApplicationFileRepo creates a new PostgreSQL-backed ApplicationFileRepository.
func NewApplicationFileRepo(db *sqlx.DB) port.ApplicationFileRepository {
	return &applicationFileRepo{db: db}
}

func (r *applicationFileRepo) Create(ctx context.Context, file *domain.ApplicationFile) error {
	file.ID = uuid.New()
	file.UploadedAt = time.Now().UTC()

	query := `INSERT INTO visa_application_files (id, application_id, field_name, file_path,
		file_name, file_size, file_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.ApplicationID, file.FieldName, file.FilePath,
		file.FileName, file.FileSize, file.FileType, file.UploadedAt)
	if err != nil {
		return fmt.Errorf("applicationFileRepo.Create: %w", err)
	}
	return nil
}

func (r *applicationFileRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.ApplicationFile, error) {
	var files []domain.ApplicationFile
	err := r.db.SelectContext(ctx, &files,
		"SELECT * FROM visa_application_files WHERE application_id = $1 ORDER BY uploaded_at ASC",
		applicationID)
	if err != nil {
		return nil, fmt.Errorf("applicationFileRepo.ListByApplication: %w", err)
	}
	return files, nil
}

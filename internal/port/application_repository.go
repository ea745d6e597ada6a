package port

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain"
)

// ApplicationRepository defines the contract for visa application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.VisaApplication) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error)
	ListAll(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	CountByUser(ctx context.Context, userID uuid.UUID) (map[domain.ApplicationStatus]int, error)
}

// ApplicationFileRepository defines the contract for uploaded document rows.
type ApplicationFileRepository interface {
	Create(ctx context.Context, file *domain.ApplicationFile) error
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.ApplicationFile, error)
}

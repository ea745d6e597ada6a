package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/export"
	"voyago/internal/port"
)

// AdminService defines the back-office contract: applications plus catalog
// visibility toggles.
type AdminService interface {
	ListApplications(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	ExportApplicationsCSV(ctx context.Context, status domain.ApplicationStatus, w io.Writer) error
	SetCountryActive(ctx context.Context, id uuid.UUID, active bool) error
	SetTourPackageActive(ctx context.Context, id uuid.UUID, active bool) error
}

type adminService struct {
	appRepo     port.ApplicationRepository
	countryRepo port.CountryRepository
	pkgRepo     port.TourPackageRepository
}

// NewAdminService creates a new AdminService implementation.
func NewAdminService(
	appRepo port.ApplicationRepository,
	countryRepo port.CountryRepository,
	pkgRepo port.TourPackageRepository,
) AdminService {
	return &adminService{appRepo: appRepo, countryRepo: countryRepo, pkgRepo: pkgRepo}
}

func (s *adminService) SetCountryActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.countryRepo.SetActive(ctx, id, active)
}

func (s *adminService) SetTourPackageActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.pkgRepo.SetActive(ctx, id, active)
}

func (s *adminService) ListApplications(ctx context.Context, status domain.ApplicationStatus, offset, limit int) ([]domain.VisaApplication, int, error) {
	if status != "" && !domain.ValidApplicationStatuses[status] {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.appRepo.ListAll(ctx, status, offset, limit)
}

func (s *adminService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	if !domain.ValidApplicationStatuses[status] {
		return domain.ErrInvalidStatus
	}
	return s.appRepo.UpdateStatus(ctx, id, status)
}

// ExportApplicationsCSV streams every matching application as CSV, paging
// through the repository in batches.
func (s *adminService) ExportApplicationsCSV(ctx context.Context, status domain.ApplicationStatus, w io.Writer) error {
	if status != "" && !domain.ValidApplicationStatuses[status] {
		return domain.ErrInvalidStatus
	}

	if _, err := w.Write(export.BOM); err != nil {
		return err
	}
	cw := export.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	const batchSize = 500
	for offset := 0; ; offset += batchSize {
		apps, total, err := s.appRepo.ListAll(ctx, status, offset, batchSize)
		if err != nil {
			return err
		}
		if err := cw.WriteApplications(apps); err != nil {
			return err
		}
		if offset+batchSize >= total || len(apps) == 0 {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

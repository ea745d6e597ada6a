package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voyago/internal/domain"
	"voyago/internal/export"
	"voyago/internal/service"
	"voyago/mocks"
)

func TestAdminService_ListApplications_InvalidStatus(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	_, _, err := svc.ListApplications(context.Background(), "shipped", 0, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	appRepo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_ListApplications_EmptyStatusListsAll(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	apps := []domain.VisaApplication{{ID: uuid.New()}, {ID: uuid.New()}}
	appRepo.On("ListAll", mock.Anything, domain.ApplicationStatus(""), 0, 20).Return(apps, 2, nil)

	got, total, err := svc.ListApplications(context.Background(), "", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
}

func TestAdminService_UpdateApplicationStatus(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	id := uuid.New()
	appRepo.On("UpdateStatus", mock.Anything, id, domain.ApplicationStatusApproved).Return(nil)

	err := svc.UpdateApplicationStatus(context.Background(), id, domain.ApplicationStatusApproved)
	require.NoError(t, err)
	appRepo.AssertExpectations(t)
}

func TestAdminService_UpdateApplicationStatus_Invalid(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	err := svc.UpdateApplicationStatus(context.Background(), uuid.New(), "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_ExportApplicationsCSV(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	apps := []domain.VisaApplication{
		{ID: uuid.New(), UserID: uuid.New(), Status: domain.ApplicationStatusPending,
			ApplicationData: []byte(`{"full_name":"Jane Rahman","email":"jane@example.com"}`)},
		{ID: uuid.New(), UserID: uuid.New(), Status: domain.ApplicationStatusApproved,
			ApplicationData: []byte(`{}`)},
	}
	appRepo.On("ListAll", mock.Anything, domain.ApplicationStatus(""), 0, 500).Return(apps, 2, nil)

	var buf bytes.Buffer
	err := svc.ExportApplicationsCSV(context.Background(), "", &buf)
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, export.BOM))

	records, err := csv.NewReader(bytes.NewReader(out[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, "Application ID", records[0][0])
	assert.Equal(t, "Jane Rahman", records[1][5])
	assert.Equal(t, "pending", records[1][4])
}

func TestAdminService_ExportApplicationsCSV_PagesThroughBatches(t *testing.T) {
	appRepo := new(mocks.MockApplicationRepo)
	svc := service.NewAdminService(appRepo, new(mocks.MockCountryRepo), new(mocks.MockTourPackageRepo))

	first := make([]domain.VisaApplication, 500)
	for i := range first {
		first[i] = domain.VisaApplication{ID: uuid.New(), ApplicationData: []byte(`{}`)}
	}
	second := []domain.VisaApplication{{ID: uuid.New(), ApplicationData: []byte(`{}`)}}

	appRepo.On("ListAll", mock.Anything, domain.ApplicationStatus(""), 0, 500).Return(first, 501, nil)
	appRepo.On("ListAll", mock.Anything, domain.ApplicationStatus(""), 500, 500).Return(second, 501, nil)

	var buf bytes.Buffer
	err := svc.ExportApplicationsCSV(context.Background(), "", &buf)
	require.NoError(t, err)

	records, rerr := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, rerr)
	assert.Len(t, records, 502)
	appRepo.AssertNumberOfCalls(t, "ListAll", 2)
}

func TestAdminService_SetCountryActive(t *testing.T) {
	countryRepo := new(mocks.MockCountryRepo)
	svc := service.NewAdminService(new(mocks.MockApplicationRepo), countryRepo, new(mocks.MockTourPackageRepo))

	id := uuid.New()
	countryRepo.On("SetActive", mock.Anything, id, false).Return(nil)

	err := svc.SetCountryActive(context.Background(), id, false)
	require.NoError(t, err)
	countryRepo.AssertExpectations(t)
}

func TestAdminService_SetTourPackageActive_Unknown(t *testing.T) {
	pkgRepo := new(mocks.MockTourPackageRepo)
	svc := service.NewAdminService(new(mocks.MockApplicationRepo), new(mocks.MockCountryRepo), pkgRepo)

	id := uuid.New()
	pkgRepo.On("SetActive", mock.Anything, id, true).Return(domain.ErrNotFound)

	err := svc.SetTourPackageActive(context.Background(), id, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

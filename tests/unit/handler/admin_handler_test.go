package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voyago/internal/domain"
	"voyago/internal/handler"
	"voyago/mocks"
)

func adminRouter(h *handler.AdminHandler) *gin.Engine {
	r := gin.New()
	r.GET("/admin/applications", h.ListApplications)
	r.PUT("/admin/applications/:id/status", h.UpdateApplicationStatus)
	r.PUT("/admin/countries/:id/active", h.SetCountryActive)
	r.PUT("/admin/tour-packages/:id/active", h.SetTourPackageActive)
	return r
}

func TestAdminHandler_ListApplications(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	apps := []domain.VisaApplication{{ID: uuid.New(), Status: domain.ApplicationStatusPending}}
	mockAdmin.On("ListApplications", mock.Anything, domain.ApplicationStatusPending, 0, 20).
		Return(apps, 1, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/applications?status=pending", http.NoBody)
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
}

func TestAdminHandler_ListApplications_InvalidStatus(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	mockAdmin.On("ListApplications", mock.Anything, domain.ApplicationStatus("shipped"), 0, 20).
		Return(nil, 0, domain.ErrInvalidStatus)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/applications?status=shipped", http.NoBody)
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_UpdateApplicationStatus(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	appID := uuid.New()
	mockAdmin.On("UpdateApplicationStatus", mock.Anything, appID, domain.ApplicationStatusApproved).
		Return(nil)

	body, _ := json.Marshal(map[string]string{"status": "approved"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/admin/applications/"+appID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAdmin.AssertExpectations(t)
}

func TestAdminHandler_UpdateApplicationStatus_BadID(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	body, _ := json.Marshal(map[string]string{"status": "approved"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/admin/applications/not-a-uuid/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAdmin.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminHandler_UpdateApplicationStatus_NotFound(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	appID := uuid.New()
	mockAdmin.On("UpdateApplicationStatus", mock.Anything, appID, domain.ApplicationStatusRejected).
		Return(domain.ErrNotFound)

	body, _ := json.Marshal(map[string]string{"status": "rejected"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/admin/applications/"+appID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_SetCountryActive(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	id := uuid.New()
	mockAdmin.On("SetCountryActive", mock.Anything, id, false).Return(nil)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"is_active":false}`)
	req, _ := http.NewRequest(http.MethodPut, "/admin/countries/"+id.String()+"/active", body)
	req.Header.Set("Content-Type", "application/json")
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAdmin.AssertExpectations(t)
}

func TestAdminHandler_SetTourPackageActive_MissingField(t *testing.T) {
	mockAdmin := new(mocks.MockAdminService)
	h := handler.NewAdminHandler(mockAdmin)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{}`)
	req, _ := http.NewRequest(http.MethodPut, "/admin/tour-packages/"+uuid.NewString()+"/active", body)
	req.Header.Set("Content-Type", "application/json")
	adminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAdmin.AssertNotCalled(t, "SetTourPackageActive", mock.Anything, mock.Anything, mock.Anything)
}

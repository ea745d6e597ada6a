package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/export"
	"voyago/internal/service"
)

// AdminHandler handles back-office endpoints over submitted applications.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListApplications handles GET /api/v1/admin/applications
// @Summary List all applications
// @Description List all submitted applications, optionally filtered by status (admin only)
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, under_review, approved, rejected)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.VisaApplication,meta=PagMeta} "Applications"
// @Failure 403 {object} APIResponse "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	status := domain.ApplicationStatus(c.Query("status"))
	offset, limit := pagination(c)

	apps, total, err := h.adminService.ListApplications(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, apps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UpdateStatusRequest is the body for application status updates.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus handles PUT /api/v1/admin/applications/:id/status
// @Summary Update an application's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} APIResponse "Status updated"
// @Failure 400 {object} APIResponse "Invalid status"
// @Failure 404 {object} APIResponse "Application not found"
// @Security BearerAuth
// @Router /admin/applications/{id}/status [put]
func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid application ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.adminService.UpdateApplicationStatus(c.Request.Context(), id, domain.ApplicationStatus(req.Status)); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "status updated"})
}

// ExportApplications handles GET /api/v1/admin/applications/export
// @Summary Export applications as CSV
// @Description Download all applications, optionally filtered by status, as a CSV file (admin only)
// @Tags admin
// @Produce text/csv
// @Param status query string false "Filter by status" Enums(pending, under_review, approved, rejected)
// @Success 200 {string} string "CSV file"
// @Failure 403 {object} APIResponse "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/applications/export [get]
func (h *AdminHandler) ExportApplications(c *gin.Context) {
	status := domain.ApplicationStatus(c.Query("status"))

	name := "applications"
	if status != "" {
		name = "applications_" + string(status)
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(name)+`"`)

	if err := h.adminService.ExportApplicationsCSV(c.Request.Context(), status, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}

// SetActiveRequest is the body for catalog visibility toggles. A pointer
// keeps explicit false distinguishable from an absent field.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetCountryActive handles PUT /api/v1/admin/countries/:id/active
// @Summary Show or hide a country
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Country ID (UUID)"
// @Param request body SetActiveRequest true "Visibility"
// @Success 200 {object} APIResponse "Visibility updated"
// @Failure 404 {object} APIResponse "Country not found"
// @Security BearerAuth
// @Router /admin/countries/{id}/active [put]
func (h *AdminHandler) SetCountryActive(c *gin.Context) {
	h.setActive(c, "invalid country ID", h.adminService.SetCountryActive)
}

// SetTourPackageActive handles PUT /api/v1/admin/tour-packages/:id/active
// @Summary Show or hide a tour package
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Param request body SetActiveRequest true "Visibility"
// @Success 200 {object} APIResponse "Visibility updated"
// @Failure 404 {object} APIResponse "Package not found"
// @Security BearerAuth
// @Router /admin/tour-packages/{id}/active [put]
func (h *AdminHandler) SetTourPackageActive(c *gin.Context) {
	h.setActive(c, "invalid package ID", h.adminService.SetTourPackageActive)
}

func (h *AdminHandler) setActive(c *gin.Context, idMsg string, toggle func(ctx context.Context, id uuid.UUID, active bool) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", idMsg)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := toggle(c.Request.Context(), id, *req.IsActive); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "visibility updated"})
}

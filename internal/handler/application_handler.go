package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/service"
)

// reservedFormFields are multipart value keys consumed by the handler itself
// rather than the application form.
var reservedFormFields = map[string]bool{
	"country_id":       true,
	"visa_type_id":     true,
	"application_data": true,
}

// ApplicationHandler handles visa application endpoints.
type ApplicationHandler struct {
	appService service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Submit handles POST /api/v1/applications
// @Summary Submit a visa application
// @Description Submit a country application form as multipart form data: country_id, one value per form field, and files under their field names
// @Tags applications
// @Accept mpfd
// @Produce json
// @Param country_id formData string true "Country ID (UUID)"
// @Success 201 {object} APIResponse{data=service.SubmissionResult} "Application created"
// @Failure 400 {object} APIResponse "Validation failed"
// @Failure 404 {object} APIResponse "Country not found"
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mpf, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "expected multipart form data")
		return
	}

	countryID, err := uuid.Parse(c.PostForm("country_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid country ID")
		return
	}

	values := make(map[string]string)
	for name, vals := range mpf.Value {
		if reservedFormFields[name] || len(vals) == 0 {
			continue
		}
		values[name] = vals[0]
	}

	files, err := collectFiles(mpf.File)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UPLOAD_ERROR", "could not read uploaded file")
		return
	}
	defer closeFiles(files)

	result, err := h.appService.Submit(c.Request.Context(), service.SubmitApplicationInput{
		UserID:    userID,
		CountryID: countryID,
		Values:    values,
		Files:     files,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// SubmitWizard handles POST /api/v1/applications/wizard
// @Summary Submit a wizard application
// @Description Submit a completed visa wizard as multipart form data: visa_type_id, application_data (JSON), and document files keyed by traveler index and document
// @Tags applications
// @Accept mpfd
// @Produce json
// @Param visa_type_id formData string true "Visa type ID (UUID)"
// @Param application_data formData string true "Wizard payload JSON"
// @Success 201 {object} APIResponse{data=service.SubmissionResult} "Application created"
// @Failure 400 {object} APIResponse "Validation failed"
// @Failure 404 {object} APIResponse "Visa type not found"
// @Security BearerAuth
// @Router /applications/wizard [post]
func (h *ApplicationHandler) SubmitWizard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mpf, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "expected multipart form data")
		return
	}

	visaTypeID, err := uuid.Parse(c.PostForm("visa_type_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid visa type ID")
		return
	}

	payload := c.PostForm("application_data")
	if payload == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "application_data is required")
		return
	}

	files, err := collectFiles(mpf.File)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UPLOAD_ERROR", "could not read uploaded file")
		return
	}
	defer closeFiles(files)

	result, err := h.appService.SubmitWizard(c.Request.Context(), service.SubmitWizardInput{
		UserID:     userID,
		VisaTypeID: visaTypeID,
		Payload:    json.RawMessage(payload),
		Files:      files,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/applications
// @Summary List my applications
// @Tags applications
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.VisaApplication,meta=PagMeta} "Applications"
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	apps, total, err := h.appService.ListByUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, apps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/applications/:id
// @Summary Get one of my applications
// @Tags applications
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.VisaApplication} "Application"
// @Failure 404 {object} APIResponse "Application not found"
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid application ID")
		return
	}

	app, err := h.appService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, app)
}

// ListFiles handles GET /api/v1/applications/:id/files
// @Summary List uploaded documents for an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Success 200 {object} APIResponse{data=[]domain.ApplicationFile} "Files"
// @Failure 404 {object} APIResponse "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/files [get]
func (h *ApplicationHandler) ListFiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid application ID")
		return
	}

	files, err := h.appService.ListFiles(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, files)
}

// GetFileURL handles GET /api/v1/applications/:id/files/:fileID/url
// @Summary Get a presigned download URL for a document
// @Tags applications
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Param fileID path string true "File ID (UUID)"
// @Success 200 {object} APIResponse "Presigned URL"
// @Failure 404 {object} APIResponse "File not found"
// @Security BearerAuth
// @Router /applications/{id}/files/{fileID}/url [get]
func (h *ApplicationHandler) GetFileURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid application ID")
		return
	}
	fileID, err := uuid.Parse(c.Param("fileID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
		return
	}

	url, err := h.appService.GetFileURL(c.Request.Context(), userID, id, fileID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// collectFiles opens every uploaded file, keyed by its multipart field name.
func collectFiles(fileFields map[string][]*multipart.FileHeader) ([]service.FileUpload, error) {
	var files []service.FileUpload
	for fieldName, headers := range fileFields {
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				closeFiles(files)
				return nil, err
			}
			files = append(files, service.FileUpload{
				FieldName: fieldName,
				File:      f,
				Header:    header,
			})
		}
	}
	return files, nil
}

func closeFiles(files []service.FileUpload) {
	for _, f := range files {
		_ = f.File.Close()
	}
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

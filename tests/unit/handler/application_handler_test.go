package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voyago/internal/domain"
	"voyago/internal/handler"
	"voyago/internal/middleware"
	"voyago/internal/service"
	"voyago/mocks"
)

func applicationRouter(h *handler.ApplicationHandler, userID uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
	})
	r.POST("/applications", h.Submit)
	r.GET("/applications", h.List)
	return r
}

func multipartBody(t *testing.T, values map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range values {
		require.NoError(t, writer.WriteField(name, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestApplicationHandler_Submit_Success(t *testing.T) {
	mockApp := new(mocks.MockApplicationService)
	h := handler.NewApplicationHandler(mockApp)

	userID := uuid.New()
	countryID := uuid.New()

	mockApp.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitApplicationInput) bool {
		// country_id is consumed by the handler, not forwarded as a form value.
		_, reserved := in.Values["country_id"]
		return in.UserID == userID &&
			in.CountryID == countryID &&
			in.Values["full_name"] == "Jane Rahman" &&
			!reserved &&
			len(in.Files) == 1 &&
			in.Files[0].FieldName == "passport"
	})).Return(&service.SubmissionResult{
		Application: &domain.VisaApplication{ID: uuid.New(), UserID: userID},
		Uploaded:    1,
	}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"country_id": countryID.String(),
		"full_name":  "Jane Rahman",
	}, "passport", "passport.pdf", []byte("%PDF-1.4 test"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	applicationRouter(h, userID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockApp.AssertExpectations(t)
}

func TestApplicationHandler_Submit_MissingCountryID(t *testing.T) {
	mockApp := new(mocks.MockApplicationService)
	h := handler.NewApplicationHandler(mockApp)

	body, contentType := multipartBody(t, map[string]string{
		"full_name": "Jane Rahman",
	}, "", "", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	applicationRouter(h, uuid.New()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockApp.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestApplicationHandler_Submit_NotMultipart(t *testing.T) {
	mockApp := new(mocks.MockApplicationService)
	h := handler.NewApplicationHandler(mockApp)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/applications", bytes.NewReader([]byte(`{"country_id":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	applicationRouter(h, uuid.New()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_List(t *testing.T) {
	mockApp := new(mocks.MockApplicationService)
	h := handler.NewApplicationHandler(mockApp)

	userID := uuid.New()
	apps := []domain.VisaApplication{{ID: uuid.New(), UserID: userID}}
	mockApp.On("ListByUser", mock.Anything, userID, 0, 20).Return(apps, 1, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/applications", http.NoBody)
	applicationRouter(h, userID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockApp.AssertExpectations(t)
}

func TestApplicationHandler_List_ResetsOversizedLimit(t *testing.T) {
	mockApp := new(mocks.MockApplicationService)
	h := handler.NewApplicationHandler(mockApp)

	userID := uuid.New()
	mockApp.On("ListByUser", mock.Anything, userID, 0, 20).Return([]domain.VisaApplication{}, 0, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/applications?limit=5000", http.NoBody)
	applicationRouter(h, userID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockApp.AssertExpectations(t)
}

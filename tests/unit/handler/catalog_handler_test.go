package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voyago/internal/domain"
	"voyago/internal/form"
	"voyago/internal/handler"
	"voyago/internal/service"
	"voyago/mocks"
)

func catalogRouter(h *handler.CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/countries", h.ListCountries)
	r.GET("/countries/:id", h.GetCountry)
	r.GET("/visa-types", h.ListVisaTypes)
	r.GET("/flights", h.SearchFlights)
	return r
}

func TestCatalogHandler_ListCountries(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	countries := []domain.Country{
		{ID: uuid.New(), Name: "United Arab Emirates", Code: "AE", VisaFee: 13500},
		{ID: uuid.New(), Name: "Thailand", Code: "TH", VisaFee: 8500},
	}
	mockCatalog.On("ListCountries", mock.Anything).Return(countries, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/countries", http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCatalogHandler_GetCountry_ByUUID(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	countryID := uuid.New()
	detail := &service.CountryDetail{
		Country: domain.Country{ID: countryID, Name: "United Arab Emirates", Code: "AE"},
		Form: []form.FieldDescriptor{
			{Name: "full_name", Type: form.FieldText, Required: true, Order: 1},
		},
	}
	mockCatalog.On("GetCountry", mock.Anything, countryID).Return(detail, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/countries/"+countryID.String(), http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertNotCalled(t, "GetCountryByCode", mock.Anything, mock.Anything)
}

func TestCatalogHandler_GetCountry_ByISOCode(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	detail := &service.CountryDetail{
		Country: domain.Country{ID: uuid.New(), Name: "United Arab Emirates", Code: "AE"},
	}
	mockCatalog.On("GetCountryByCode", mock.Anything, "AE").Return(detail, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/countries/AE", http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_GetCountry_NotFound(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	countryID := uuid.New()
	mockCatalog.On("GetCountry", mock.Anything, countryID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/countries/"+countryID.String(), http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_ListVisaTypes_FilteredByCountry(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	countryID := uuid.New()
	types := []domain.VisaType{{ID: uuid.New(), CountryID: countryID, Name: "Tourist Visa 30 Days"}}
	mockCatalog.On("ListVisaTypesByCountry", mock.Anything, countryID).Return(types, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/visa-types?country_id="+countryID.String(), http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertNotCalled(t, "ListVisaTypes", mock.Anything)
}

func TestCatalogHandler_ListVisaTypes_BadCountryID(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/visa-types?country_id=not-a-uuid", http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_SearchFlights_ParsesFilters(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	date := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	want := domain.FlightFilter{OriginCode: "DAC", DestinationCode: "DXB", Date: &date}
	mockCatalog.On("SearchFlights", mock.Anything, want).
		Return([]domain.Flight{{ID: uuid.New(), OriginCode: "DAC", DestinationCode: "DXB"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/flights?origin=dac&destination=dxb&date=2026-12-20", http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_SearchFlights_BadDate(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockCatalog)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/flights?date=next-friday", http.NoBody)
	catalogRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCatalog.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
}

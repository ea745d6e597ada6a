package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/domain"
	"voyago/internal/service"
)

// CatalogHandler handles the public browse endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCountries handles GET /api/v1/countries
// @Summary List countries
// @Description List active visa destinations ordered by priority
// @Tags catalog
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Country} "Countries"
// @Router /countries [get]
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, countries)
}

// GetCountry handles GET /api/v1/countries/:id
// @Summary Get country with form schema
// @Description Get a country and its application form fields
// @Tags catalog
// @Produce json
// @Param id path string true "Country ID (UUID)"
// @Success 200 {object} APIResponse{data=service.CountryDetail} "Country detail"
// @Failure 404 {object} APIResponse "Country not found"
// @Router /countries/{id} [get]
func (h *CatalogHandler) GetCountry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Fall back to ISO code lookup for friendly URLs like /countries/AE.
		detail, cerr := h.catalogService.GetCountryByCode(c.Request.Context(), c.Param("id"))
		if cerr != nil {
			HandleError(c, cerr)
			return
		}
		RespondOK(c, detail)
		return
	}

	detail, err := h.catalogService.GetCountry(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// ListVisaTypes handles GET /api/v1/visa-types
// @Summary List visa types
// @Description List active visa products, optionally filtered by country
// @Tags catalog
// @Produce json
// @Param country_id query string false "Country ID (UUID)"
// @Success 200 {object} APIResponse{data=[]domain.VisaType} "Visa types"
// @Router /visa-types [get]
func (h *CatalogHandler) ListVisaTypes(c *gin.Context) {
	if raw := c.Query("country_id"); raw != "" {
		countryID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid country ID")
			return
		}
		types, err := h.catalogService.ListVisaTypesByCountry(c.Request.Context(), countryID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, types)
		return
	}

	types, err := h.catalogService.ListVisaTypes(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, types)
}

// GetVisaType handles GET /api/v1/visa-types/:id
// @Summary Get visa type
// @Description Get one visa product with its requirements and FAQs
// @Tags catalog
// @Produce json
// @Param id path string true "Visa type ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.VisaType} "Visa type"
// @Failure 404 {object} APIResponse "Visa type not found"
// @Router /visa-types/{id} [get]
func (h *CatalogHandler) GetVisaType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid visa type ID")
		return
	}

	vt, err := h.catalogService.GetVisaType(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, vt)
}

// ListTourPackages handles GET /api/v1/tours
// @Summary List tour packages
// @Description List active tour packages
// @Tags catalog
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.TourPackage} "Tour packages"
// @Router /tours [get]
func (h *CatalogHandler) ListTourPackages(c *gin.Context) {
	pkgs, err := h.catalogService.ListTourPackages(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, pkgs)
}

// GetTourPackage handles GET /api/v1/tours/:id
// @Summary Get tour package
// @Tags catalog
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.TourPackage} "Tour package"
// @Failure 404 {object} APIResponse "Package not found"
// @Router /tours/{id} [get]
func (h *CatalogHandler) GetTourPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid package ID")
		return
	}

	pkg, err := h.catalogService.GetTourPackage(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, pkg)
}

// SearchFlights handles GET /api/v1/flights
// @Summary Search flight deals
// @Description Search flight deals by route and departure date; all filters are optional
// @Tags catalog
// @Produce json
// @Param origin query string false "Origin airport code"
// @Param destination query string false "Destination airport code"
// @Param date query string false "Departure date (YYYY-MM-DD)"
// @Success 200 {object} APIResponse{data=[]domain.Flight} "Flights"
// @Failure 400 {object} APIResponse "Invalid date"
// @Router /flights [get]
func (h *CatalogHandler) SearchFlights(c *gin.Context) {
	filter := domain.FlightFilter{
		OriginCode:      strings.ToUpper(c.Query("origin")),
		DestinationCode: strings.ToUpper(c.Query("destination")),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "date must be formatted as YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	flights, err := h.catalogService.SearchFlights(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, flights)
}

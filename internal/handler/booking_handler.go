package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/service"
)

// BookingHandler handles tour booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/v1/bookings
// @Summary Book a tour package
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body service.CreateBookingInput true "Booking details"
// @Success 201 {object} APIResponse{data=domain.TourBooking} "Booking created"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 404 {object} APIResponse "Package not found"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.UserID = userID

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, booking)
}

// List handles GET /api/v1/bookings
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.TourBooking,meta=PagMeta} "Bookings"
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	bookings, total, err := h.bookingService.ListByUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bookings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/bookings/:id
// @Summary Get one of my bookings
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.TourBooking} "Booking"
// @Failure 404 {object} APIResponse "Booking not found"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, booking)
}

// Cancel handles POST /api/v1/bookings/:id/cancel
// @Summary Cancel one of my bookings
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} APIResponse "Booking cancelled"
// @Failure 404 {object} APIResponse "Booking not found"
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking ID")
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "booking cancelled"})
}

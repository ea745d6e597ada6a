package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/service"
)

// ProfileHandler handles profile and dashboard endpoints.
type ProfileHandler struct {
	userService service.UserService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Get handles GET /api/v1/profile
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Success 200 {object} APIResponse{data=domain.User} "Profile"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}

// Update handles PUT /api/v1/profile
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileInput true "Profile fields"
// @Success 200 {object} APIResponse{data=domain.User} "Updated profile"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Get my dashboard summary
// @Description Application status counts plus recent applications and bookings
// @Tags profile
// @Produce json
// @Success 200 {object} APIResponse{data=service.DashboardSummary} "Dashboard summary"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.userService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

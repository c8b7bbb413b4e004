package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type ProfileHandler struct {
	svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.ProfileResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.svc.GetProfile(middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update username or avatar
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdateProfileInput true "Profile changes"
// @Success 200 {object} user.ProfileResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /profile/me [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID := middleware.UserID(c)
	if _, err := h.svc.UpdateProfile(userID, input); err != nil {
		writeServiceError(c, err)
		return
	}
	profile, err := h.svc.GetProfile(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Public godoc
// @Summary Get a user's public profile with their public collections
// @Tags profile
// @Produce json
// @Param handle path string true "Username or user id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} response.ErrorResponse
// @Router /profiles/{handle} [get]
func (h *ProfileHandler) Public(c *gin.Context) {
	profile, collections, err := h.svc.GetPublicProfile(c.Param("handle"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":     profile,
		"collections": collections,
	})
}

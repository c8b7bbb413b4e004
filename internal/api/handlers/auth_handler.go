package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	maxAge := config.RefreshTokenDays * 24 * 60 * 60
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token, maxAge, "/auth/refresh", "", false, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, "", -1, "/auth/refresh", "", false, true)
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.RegisterInput true "Registration payload"
// @Success 201 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.svc.Register(input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Registration successful, check your inbox to verify your email"})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	_, access, refresh, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresIn:   config.AccessTokenMinutes * 60,
	})
}

// Refresh godoc
// @Summary Exchange the refresh cookie for a new access token
// @Tags auth
// @Produce json
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshTokenCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Missing refresh token"})
		return
	}

	access, err := h.svc.Refresh(token)
	if err != nil {
		h.clearRefreshCookie(c)
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresIn:   config.AccessTokenMinutes * 60,
	})
}

// Logout godoc
// @Summary Clear the refresh cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

// Verify godoc
// @Summary Confirm an email address with a verification token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.VerifyInput true "Verification token"
// @Success 200 {object} response.MessageResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var input user.VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.VerifyEmail(input.Token); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Email verified"})
}

// ResendVerification godoc
// @Summary Resend the verification mail
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.ForgotPasswordInput true "Account email"
// @Success 200 {object} response.MessageResponse
// @Router /auth/verify/resend [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var input user.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.ResendVerification(input.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "If the address exists, a verification mail was sent"})
}

// Forgot godoc
// @Summary Request a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.ForgotPasswordInput true "Account email"
// @Success 200 {object} response.MessageResponse
// @Router /auth/forgot [post]
func (h *AuthHandler) Forgot(c *gin.Context) {
	var input user.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.ForgotPassword(input.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "If the address exists, a reset mail was sent"})
}

// Reset godoc
// @Summary Reset the password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.ResetPasswordInput true "Reset payload"
// @Success 200 {object} response.MessageResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/reset [post]
func (h *AuthHandler) Reset(c *gin.Context) {
	var input user.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.ResetPassword(input.Token, input.Password); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}

// DeleteMe godoc
// @Summary Delete the authenticated account
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [delete]
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.DeleteAccount(middleware.UserID(c), input.Password); err != nil {
		writeServiceError(c, err)
		return
	}
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Account deleted"})
}

package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "housnkuh/internal/handler/dto/request"
	resdto "housnkuh/internal/handler/dto/response"
	"housnkuh/internal/handler/middleware"
	"housnkuh/internal/pkg/config"
	"housnkuh/internal/pkg/cookie"
	"housnkuh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary Vendor login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, authedVendor, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials),
			errors.Is(err, usecase.ErrVendorNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, usecase.ErrVendorNotConfirmed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Email address is not confirmed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	duration, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	cookie.SetTokenCookie(c, h.cfg.Cookie, token, duration)

	response := resdto.LoginResponse{
		AccessToken: token,
		Vendor:      authedVendor,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Vendor logout
// @Description Logout current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current vendor
// @Description Get current authenticated vendor information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} usecase.AuthenticatedVendor
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	authedVendor, err := h.authUseCase.GetCurrentVendor(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVendorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, authedVendor)
}

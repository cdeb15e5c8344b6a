package api

import (
	"errors"
	"net/http"

	reqdto "housnkuh/internal/handler/dto/request"
	resdto "housnkuh/internal/handler/dto/response"
	"housnkuh/internal/handler/middleware"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"
	"housnkuh/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	registration  commands.RegistrationCommands
	vendorQueries queries.VendorQueries
}

func NewVendorHandler(registration commands.RegistrationCommands, vendorQueries queries.VendorQueries) *VendorHandler {
	return &VendorHandler{
		registration:  registration,
		vendorQueries: vendorQueries,
	}
}

// @Summary Register vendor
// @Description Register a vendor account with the selected package; a confirmation mail is sent
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterVendorRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendors/register [post]
func (h *VendorHandler) Register(c *gin.Context) {
	var req reqdto.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.registration.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email address already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary Confirm vendor email
// @Description Consume the single-use confirmation token from the registration mail
// @Tags vendors
// @Produce json
// @Param token query string true "Confirmation token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendors/confirm [post]
func (h *VendorHandler) Confirm(c *gin.Context) {
	token := c.Query("token")

	err := h.registration.Confirm(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrConfirmationToken):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown or missing confirmation token",
			})
		case errors.Is(err, errs.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email address already confirmed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "email address confirmed",
	})
}

// @Summary Get own vendor profile
// @Description Get the authenticated vendor's profile including the booking request
// @Tags vendors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.VendorView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vendors/me [get]
func (h *VendorHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.vendorQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVendorNotFound):
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

	c.JSON(http.StatusOK, view)
}

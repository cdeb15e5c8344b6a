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
	"github.com/google/uuid"
)

type AdminHandler struct {
	approval        commands.ApprovalCommands
	unitCommands    commands.UnitCommands
	settingsCmd     commands.SettingsCommands
	vendorQueries   queries.VendorQueries
	contractQueries queries.ContractQueries
	settingsQueries queries.SettingsQueries
}

func NewAdminHandler(
	approval commands.ApprovalCommands,
	unitCommands commands.UnitCommands,
	settingsCmd commands.SettingsCommands,
	vendorQueries queries.VendorQueries,
	contractQueries queries.ContractQueries,
	settingsQueries queries.SettingsQueries,
) *AdminHandler {
	return &AdminHandler{
		approval:        approval,
		unitCommands:    unitCommands,
		settingsCmd:     settingsCmd,
		vendorQueries:   vendorQueries,
		contractQueries: contractQueries,
		settingsQueries: settingsQueries,
	}
}

// @Summary List pending bookings
// @Description List booking requests awaiting approval, oldest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.PendingBookingView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListPendingBookings(c *gin.Context) {
	views, err := h.vendorQueries.ListPendingBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Approve booking
// @Description Assign concrete units to a pending booking, creating a scheduled contract atomically
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Param request body reqdto.ApproveBookingRequest true "Unit assignment"
// @Success 201 {object} resdto.ApproveResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{vendorId}/approve [post]
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vendor ID",
		})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.ApproveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.approval.Approve(c.Request.Context(), vendorID, req.UnitIDs, adminID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVendorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking request for this vendor",
			})
		case errors.Is(err, errs.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "One or more units not found",
			})
		case errors.Is(err, errs.ErrVendorNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Vendor has not confirmed their email address",
			})
		case errors.Is(err, errs.ErrBookingAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking request already processed",
			})
		case errors.Is(err, errs.ErrContractConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A unit is already booked for an overlapping period",
			})
		case errors.Is(err, errs.ErrUnitOccupied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A unit is already occupied",
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

	c.JSON(http.StatusCreated, resdto.FromApproveResult(result))
}

// @Summary List all contracts
// @Description List every contract regardless of vendor
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ContractListItem
// @Router /admin/contracts [get]
func (h *AdminHandler) ListContracts(c *gin.Context) {
	items, err := h.contractQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Create rental unit
// @Description Create a new rental unit
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUnitRequest true "Unit definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/units [post]
func (h *AdminHandler) CreateUnit(c *gin.Context) {
	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.unitCommands.Create(c.Request.Context(), commands.CreateUnitInput{
		Label:             req.Label,
		UnitType:          req.UnitType,
		MonthlyPriceCents: req.MonthlyPriceCents,
	})
	if err != nil {
		switch {
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

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update rental unit
// @Description Rename or reprice an existing rental unit
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Unit ID"
// @Param request body reqdto.UpdateUnitRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/units/{id} [patch]
func (h *AdminHandler) UpdateUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	var req reqdto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.unitCommands.Update(c.Request.Context(), id, commands.UpdateUnitInput{
		Label:             req.Label,
		MonthlyPriceCents: req.MonthlyPriceCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
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

	c.Status(http.StatusNoContent)
}

// @Summary Get store settings
// @Description Get the store-opening configuration
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.StoreOpeningView
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	view, err := h.settingsQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update store settings
// @Description Update the store-opening configuration; enabling gating requires an opening date
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.UpdateSettingsRequest true "Store opening settings"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.settingsCmd.Update(c.Request.Context(), adminID, commands.UpdateSettingsInput{
		Enabled:          req.Enabled,
		OpeningDate:      req.OpeningDate,
		ReminderLeadDays: req.ReminderLeadDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Opening date required when gating is enabled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"errors"
	"net/http"

	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/handler/middleware"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"
	"housnkuh/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContractHandler struct {
	contractCommands commands.ContractCommands
	contractQueries  queries.ContractQueries
}

func NewContractHandler(contractCommands commands.ContractCommands, contractQueries queries.ContractQueries) *ContractHandler {
	return &ContractHandler{
		contractCommands: contractCommands,
		contractQueries:  contractQueries,
	}
}

// @Summary List own contracts
// @Description List the authenticated vendor's contracts
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ContractListItem
// @Failure 401 {object} map[string]string
// @Router /contracts [get]
func (h *ContractHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	items, err := h.contractQueries.ListByVendor(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get contract
// @Description Get a contract with its services and derived effective status
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} queries.ContractView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contract ID",
		})
		return
	}

	view, err := h.contractQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Contract not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Vendors may only read their own contracts; admins read any.
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if role != vendor.RoleAdmin && view.VendorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Cancel contract
// @Description Cancel a contract; inside a trial month this truncates the availability impact immediately
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{id}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contract ID",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	err = h.contractCommands.Cancel(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Contract not found",
			})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Contract cannot be cancelled in its current state",
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

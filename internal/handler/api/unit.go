package api

import (
	"errors"
	"net/http"
	"time"

	resdto "housnkuh/internal/handler/dto/response"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnitHandler struct {
	unitQueries queries.UnitQueries
}

func NewUnitHandler(unitQueries queries.UnitQueries) *UnitHandler {
	return &UnitHandler{
		unitQueries: unitQueries,
	}
}

// @Summary List rental units
// @Description List all rental units with their current occupancy
// @Tags units
// @Produce json
// @Success 200 {array} queries.UnitView
// @Router /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	views, err := h.unitQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get rental unit
// @Description Get a single rental unit by ID
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} queries.UnitView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	view, err := h.unitQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
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

// @Summary Check unit availability
// @Description Check whether a unit is free of occupying contracts over [from, to)
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339, exclusive)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/availability [get]
func (h *UnitHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid unit ID",
		})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'from' timestamp",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'to' timestamp",
		})
		return
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "'to' must be after 'from'",
		})
		return
	}

	available, err := h.unitQueries.CheckAvailability(c.Request.Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		UnitID:    id.String(),
		From:      from,
		To:        to,
		Available: available,
	})
}

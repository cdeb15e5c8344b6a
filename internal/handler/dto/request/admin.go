package request

import (
	"time"

	"github.com/google/uuid"
)

type ApproveBookingRequest struct {
	UnitIDs []uuid.UUID `json:"unit_ids" binding:"required,min=1"`
}

type CreateUnitRequest struct {
	Label             string `json:"label" binding:"required"`
	UnitType          string `json:"unit_type" binding:"required"`
	MonthlyPriceCents int64  `json:"monthly_price_cents" binding:"min=0"`
}

type UpdateUnitRequest struct {
	Label             *string `json:"label"`
	MonthlyPriceCents *int64  `json:"monthly_price_cents"`
}

type UpdateSettingsRequest struct {
	Enabled          bool       `json:"enabled"`
	OpeningDate      *time.Time `json:"opening_date"`
	ReminderLeadDays int        `json:"reminder_lead_days" binding:"min=0"`
}

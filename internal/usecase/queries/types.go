package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UnitView struct {
	ID                uuid.UUID  `json:"id"`
	Label             string     `json:"label"`
	UnitType          string     `json:"unit_type"`
	MonthlyPriceCents int64      `json:"monthly_price_cents"`
	Available         bool       `json:"available"`
	OccupiedBy        *uuid.UUID `json:"occupied_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ServiceView struct {
	UnitID    uuid.UUID `json:"unit_id"`
	UnitLabel string    `json:"unit_label"`
	LeaseFrom time.Time `json:"lease_from"`
	LeaseTo   time.Time `json:"lease_to"`
}

type ContractView struct {
	ID                     uuid.UUID     `json:"id"`
	VendorID               uuid.UUID     `json:"vendor_id"`
	VendorName             string        `json:"vendor_name"`
	Status                 string        `json:"status"`
	EffectiveStatus        string        `json:"effective_status"`
	ScheduledStart         time.Time     `json:"scheduled_start"`
	DurationMonths         int           `json:"duration_months"`
	TotalMonthlyPriceCents int64         `json:"total_monthly_price_cents"`
	DiscountPercent        float64       `json:"discount_percent"`
	Trial                  bool          `json:"trial"`
	TrialCancelled         bool          `json:"trial_cancelled"`
	TrialCancelledAt       *time.Time    `json:"trial_cancelled_at,omitempty"`
	BillableFrom           time.Time     `json:"billable_from"`
	ImpactFrom             time.Time     `json:"impact_from"`
	ImpactTo               time.Time     `json:"impact_to"`
	Services               []ServiceView `json:"services"`
	CreatedAt              time.Time     `json:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at"`
}

type ContractListItem struct {
	ID                     uuid.UUID `json:"id"`
	VendorID               uuid.UUID `json:"vendor_id"`
	VendorName             string    `json:"vendor_name"`
	Status                 string    `json:"status"`
	EffectiveStatus        string    `json:"effective_status"`
	ScheduledStart         time.Time `json:"scheduled_start"`
	DurationMonths         int       `json:"duration_months"`
	TotalMonthlyPriceCents int64     `json:"total_monthly_price_cents"`
	Trial                  bool      `json:"trial"`
	ImpactFrom             time.Time `json:"impact_from"`
	ImpactTo               time.Time `json:"impact_to"`
	CreatedAt              time.Time `json:"created_at"`
}

type PendingBookingView struct {
	VendorID          uuid.UUID   `json:"vendor_id"`
	VendorName        string      `json:"vendor_name"`
	VendorEmail       string      `json:"vendor_email"`
	VendorConfirmed   bool        `json:"vendor_confirmed"`
	PackageName       string      `json:"package_name"`
	MonthlyPriceCents int64       `json:"monthly_price_cents"`
	SetupFeeCents     int64       `json:"setup_fee_cents"`
	UnitCounts        map[string]int `json:"unit_counts"`
	Addons            []string    `json:"addons"`
	RequestedStart    time.Time   `json:"requested_start"`
	DurationMonths    int         `json:"duration_months"`
	Trial             bool        `json:"trial"`
	Status            string      `json:"status"`
	RequestedAt       time.Time   `json:"requested_at"`
	ContractID        *uuid.UUID  `json:"contract_id,omitempty"`
	AssignedUnitIDs   []uuid.UUID `json:"assigned_unit_ids,omitempty"`
}

type VendorView struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Role      string              `json:"role"`
	Confirmed bool                `json:"confirmed"`
	Booking   *PendingBookingView `json:"booking,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type StoreOpeningView struct {
	Enabled          bool       `json:"enabled"`
	OpeningDate      *time.Time `json:"opening_date,omitempty"`
	ReminderLeadDays int        `json:"reminder_lead_days"`
	UpdatedBy        *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

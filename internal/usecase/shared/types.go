package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type UnitSnapshot struct {
	ID                uuid.UUID
	Label             string
	UnitType          string
	MonthlyPriceCents int64
	Available         bool
	OccupiedBy        *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type VendorSnapshot struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	Name              string
	Role              string
	Confirmed         bool
	ConfirmationToken *string
	Booking           *BookingSnapshot
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BookingSnapshot struct {
	PackageName       string
	MonthlyPriceCents int64
	SetupFeeCents     int64
	UnitCounts        map[string]int
	Addons            []string
	RequestedStart    time.Time
	DurationMonths    int
	Trial             bool
	Status            string
	RequestedAt       time.Time
	ContractID        *uuid.UUID
	AssignedUnitIDs   []uuid.UUID
}

type ContractSnapshot struct {
	ID                     uuid.UUID
	VendorID               uuid.UUID
	Status                 string
	ScheduledStart         time.Time
	DurationMonths         int
	TotalMonthlyPriceCents int64
	DiscountPercent        float64
	Trial                  bool
	TrialCancelled         bool
	TrialCancelledAt       *time.Time
	BillableFrom           time.Time
	ImpactFrom             time.Time
	ImpactTo               time.Time
	Services               []ServiceSnapshot
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type ServiceSnapshot struct {
	UnitID    uuid.UUID
	LeaseFrom time.Time
	LeaseTo   time.Time
}

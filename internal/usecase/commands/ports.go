package commands

import (
	"context"
	"time"
)

// ConfirmationMailer delivers the registration confirmation link.
// Fire-and-forget from the core's perspective: failures are logged by
// the caller, never retried and never surfaced to the vendor.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, recipient, name, confirmationToken string) error
}

type PackageInput struct {
	Name              string
	MonthlyPriceCents int64
	SetupFeeCents     int64
	UnitCounts        map[string]int
	Addons            []string
	RequestedStart    time.Time
	DurationMonths    int
	Trial             bool
}

type RegisterVendorInput struct {
	Email    string
	Password string
	Name     string
	Package  PackageInput
}

type CreateUnitInput struct {
	Label             string
	UnitType          string
	MonthlyPriceCents int64
}

type UpdateUnitInput struct {
	Label             *string
	MonthlyPriceCents *int64
}

type UpdateSettingsInput struct {
	Enabled          bool
	OpeningDate      *time.Time
	ReminderLeadDays int
}

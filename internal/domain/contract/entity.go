package contract

import (
	"errors"
	"time"

	"housnkuh/internal/domain/settings"

	"github.com/google/uuid"
)

var (
	ErrNoServices         = errors.New("contract needs at least one service")
	ErrNotPending         = errors.New("contract is not pending")
	ErrAlreadyCancelled   = errors.New("contract is already cancelled")
	ErrTransitionNotAllow = errors.New("status transition not allowed")
)

// Service is one rented unit within a contract, with its lease period.
type Service struct {
	unitID uuid.UUID
	period DateRange
}

func NewService(unitID uuid.UUID, period DateRange) Service {
	return Service{unitID: unitID, period: period}
}

func (s Service) UnitID() uuid.UUID {
	return s.unitID
}

func (s Service) Period() DateRange {
	return s.period
}

// Contract is a vendor's rental agreement (Vertrag) for one or more
// units over a date range. Created pending from a booking request and
// scheduled once an administrator assigns concrete units; the active
// state is derived, cancellation is terminal.
type Contract struct {
	id                uuid.UUID
	vendorID          uuid.UUID
	services          []Service
	status            Status
	scheduledStart    time.Time
	durationMonths    int
	totalMonthlyPrice Money
	discount          Discount
	trial             bool
	trialCancelled    bool
	trialCancelledAt  *time.Time
	billableFrom      time.Time
	impact            DateRange
	createdAt         time.Time
	updatedAt         time.Time
}

// NewContract builds a pending contract from a booking request. The
// availability-impact window and the billing start are derived here and
// never mutated outside of cancellation.
func NewContract(
	vendorID uuid.UUID,
	scheduledStart time.Time,
	durationMonths int,
	totalMonthlyPrice Money,
	discount Discount,
	trial bool,
	store settings.StoreOpening,
) (*Contract, error) {
	impact, err := ImpactWindow(scheduledStart, durationMonths, trial)
	if err != nil {
		return nil, err
	}

	return &Contract{
		id:                uuid.New(),
		vendorID:          vendorID,
		status:            StatusPending,
		scheduledStart:    scheduledStart,
		durationMonths:    durationMonths,
		totalMonthlyPrice: totalMonthlyPrice,
		discount:          discount,
		trial:             trial,
		billableFrom:      BillableFrom(scheduledStart, store),
		impact:            impact,
	}, nil
}

func ReconstructContract(
	id, vendorID uuid.UUID,
	services []Service,
	status Status,
	scheduledStart time.Time,
	durationMonths int,
	totalMonthlyPrice Money,
	discount Discount,
	trial, trialCancelled bool,
	trialCancelledAt *time.Time,
	billableFrom time.Time,
	impact DateRange,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:                id,
		vendorID:          vendorID,
		services:          services,
		status:            status,
		scheduledStart:    scheduledStart,
		durationMonths:    durationMonths,
		totalMonthlyPrice: totalMonthlyPrice,
		discount:          discount,
		trial:             trial,
		trialCancelled:    trialCancelled,
		trialCancelledAt:  trialCancelledAt,
		billableFrom:      billableFrom,
		impact:            impact,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Schedule assigns concrete units to a pending contract. The caller must
// have verified availability of every unit for this contract's impact
// window inside the same transaction that persists the result.
func (c *Contract) Schedule(services []Service) error {
	if c.status != StatusPending {
		return ErrNotPending
	}
	if len(services) == 0 {
		return ErrNoServices
	}
	if !c.status.CanTransitionTo(StatusScheduled) {
		return ErrTransitionNotAllow
	}
	c.services = services
	c.status = StatusScheduled
	return nil
}

// Cancel terminates the contract. A cancellation inside a flagged trial
// month records the trial cancellation; in every case the impact window
// is truncated at the cancellation date so the units free up.
func (c *Contract) Cancel(at time.Time) error {
	if c.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !c.status.CanTransitionTo(StatusCancelled) {
		return ErrTransitionNotAllow
	}

	if c.trial && !c.trialCancelled && at.Before(TrialEnd(c.scheduledStart)) {
		c.trialCancelled = true
		cancelledAt := at
		c.trialCancelledAt = &cancelledAt
	}
	c.impact = c.impact.TruncateAt(at)
	c.status = StatusCancelled
	return nil
}

// EffectiveStatus derives the read-time status: a scheduled contract
// whose start has been reached counts as active without a stored
// transition event.
func (c *Contract) EffectiveStatus(now time.Time) Status {
	if c.status == StatusScheduled && !now.Before(c.scheduledStart) {
		return StatusActive
	}
	return c.status
}

func (c *Contract) IsCancelled() bool {
	return c.status == StatusCancelled
}

func (c *Contract) ID() uuid.UUID               { return c.id }
func (c *Contract) VendorID() uuid.UUID         { return c.vendorID }
func (c *Contract) Services() []Service         { return c.services }
func (c *Contract) Status() Status              { return c.status }
func (c *Contract) ScheduledStart() time.Time   { return c.scheduledStart }
func (c *Contract) DurationMonths() int         { return c.durationMonths }
func (c *Contract) TotalMonthlyPrice() Money    { return c.totalMonthlyPrice }
func (c *Contract) Discount() Discount          { return c.discount }
func (c *Contract) IsTrial() bool               { return c.trial }
func (c *Contract) TrialCancelled() bool        { return c.trialCancelled }
func (c *Contract) TrialCancelledAt() *time.Time { return c.trialCancelledAt }
func (c *Contract) BillableFrom() time.Time     { return c.billableFrom }
func (c *Contract) Impact() DateRange           { return c.impact }
func (c *Contract) CreatedAt() time.Time        { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time        { return c.updatedAt }

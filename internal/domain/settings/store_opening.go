package settings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOpeningDateRequired = errors.New("opening date required when gating is enabled")

// StoreOpening is the store-opening configuration. It is loaded from the
// store and passed explicitly into billing computations instead of living
// behind a process-wide singleton, so those computations stay pure.
type StoreOpening struct {
	Enabled          bool
	OpeningDate      *time.Time
	ReminderLeadDays int
	UpdatedBy        *uuid.UUID
	UpdatedAt        time.Time
}

func NewStoreOpening(enabled bool, openingDate *time.Time, reminderLeadDays int) (StoreOpening, error) {
	if enabled && openingDate == nil {
		return StoreOpening{}, ErrOpeningDateRequired
	}
	if reminderLeadDays < 0 {
		reminderLeadDays = 0
	}
	return StoreOpening{
		Enabled:          enabled,
		OpeningDate:      openingDate,
		ReminderLeadDays: reminderLeadDays,
	}, nil
}

// EffectiveOpening returns the opening date when gating is enabled, nil otherwise.
func (s StoreOpening) EffectiveOpening() *time.Time {
	if !s.Enabled {
		return nil
	}
	return s.OpeningDate
}

func (s StoreOpening) Stamp(adminID uuid.UUID, now time.Time) StoreOpening {
	id := adminID
	s.UpdatedBy = &id
	s.UpdatedAt = now
	return s
}

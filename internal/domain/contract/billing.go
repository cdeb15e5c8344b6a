package contract

import (
	"errors"
	"time"

	"housnkuh/internal/domain/settings"
)

var ErrInvalidDuration = errors.New("contract duration must be at least one month")

// ImpactWindow derives the availability-impact window of a contract from
// its scheduled start. The end is calendar-month arithmetic: start plus
// the contracted months, plus one further month when the first month is a
// non-billed trial. A 30-day approximation is deliberately not used; for
// months shorter or longer than 30 days the two disagree.
func ImpactWindow(start time.Time, durationMonths int, trial bool) (DateRange, error) {
	if durationMonths < 1 {
		return DateRange{}, ErrInvalidDuration
	}
	end := start.AddDate(0, durationMonths, 0)
	if trial {
		end = end.AddDate(0, 1, 0)
	}
	return NewDateRange(start, end)
}

// BillableFrom computes the date billing begins: the later of the
// scheduled start and the store's effective opening date. Pure function
// of its inputs; recomputing with the same inputs yields the same date.
func BillableFrom(scheduledStart time.Time, store settings.StoreOpening) time.Time {
	opening := store.EffectiveOpening()
	if opening != nil && opening.After(scheduledStart) {
		return *opening
	}
	return scheduledStart
}

// TrialEnd is the exclusive end of the trial month.
func TrialEnd(scheduledStart time.Time) time.Time {
	return scheduledStart.AddDate(0, 1, 0)
}

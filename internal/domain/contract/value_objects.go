package contract

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("range end must be after range start")
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100 percent")
)

// DateRange is a half-open interval [from, to). Two ranges sharing a
// boundary (a.to == b.from) do not overlap, so adjacent leases on the
// same unit are allowed.
type DateRange struct {
	from time.Time
	to   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	if !to.After(from) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{from: from, to: to}, nil
}

func (r DateRange) From() time.Time {
	return r.from
}

func (r DateRange) To() time.Time {
	return r.to
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.from.Before(other.to) && other.from.Before(r.to)
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.from) && t.Before(r.to)
}

// TruncateAt shortens the range to end at t. Truncation points at or
// before the start leave the range unchanged since a half-open range
// must stay non-empty.
func (r DateRange) TruncateAt(t time.Time) DateRange {
	if !t.After(r.from) || !t.Before(r.to) {
		return r
	}
	return DateRange{from: r.from, to: t}
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.from.Format(time.RFC3339), r.to.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

type Discount struct {
	percent float64
}

func NewDiscount(percent float64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{percent: percent}, nil
}

func (d Discount) Percent() float64 {
	return d.percent
}

func (d Discount) ApplyTo(m Money) Money {
	discounted := float64(m.cents) * (100.0 - d.percent) / 100.0
	return Money{cents: int64(discounted)}
}

package unit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel      = errors.New("unit label must not be empty")
	ErrNegativePrice   = errors.New("monthly price cannot be negative")
	ErrAlreadyOccupied = errors.New("unit is already occupied")
	ErrNotOccupied     = errors.New("unit is not occupied")
)

// Unit is a physical Mietfach: a shelf, cooler or table space that a
// vendor rents. The available flag mirrors whether a contract currently
// occupies the unit and is only mutated together with the occupying
// contract inside one transaction.
type Unit struct {
	id                uuid.UUID
	label             string
	unitType          Type
	monthlyPriceCents int64
	available         bool
	occupiedBy        *uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUnit(label string, unitType Type, monthlyPriceCents int64) (*Unit, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if !unitType.IsValid() {
		return nil, ErrInvalidType
	}
	if monthlyPriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Unit{
		id:                uuid.New(),
		label:             label,
		unitType:          unitType,
		monthlyPriceCents: monthlyPriceCents,
		available:         true,
	}, nil
}

func ReconstructUnit(
	id uuid.UUID,
	label string,
	unitType Type,
	monthlyPriceCents int64,
	available bool,
	occupiedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:                id,
		label:             label,
		unitType:          unitType,
		monthlyPriceCents: monthlyPriceCents,
		available:         available,
		occupiedBy:        occupiedBy,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Assign marks the unit as occupied by the given contract.
func (u *Unit) Assign(contractID uuid.UUID) error {
	if !u.available {
		return ErrAlreadyOccupied
	}
	u.available = false
	id := contractID
	u.occupiedBy = &id
	return nil
}

// Release frees the unit after its occupying contract ends or is cancelled.
func (u *Unit) Release() error {
	if u.available {
		return ErrNotOccupied
	}
	u.available = true
	u.occupiedBy = nil
	return nil
}

func (u *Unit) Rename(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	u.label = label
	return nil
}

func (u *Unit) Reprice(monthlyPriceCents int64) error {
	if monthlyPriceCents < 0 {
		return ErrNegativePrice
	}
	u.monthlyPriceCents = monthlyPriceCents
	return nil
}

func (u *Unit) ID() uuid.UUID            { return u.id }
func (u *Unit) Label() string            { return u.label }
func (u *Unit) UnitType() Type           { return u.unitType }
func (u *Unit) MonthlyPriceCents() int64 { return u.monthlyPriceCents }
func (u *Unit) IsAvailable() bool        { return u.available }
func (u *Unit) OccupiedBy() *uuid.UUID   { return u.occupiedBy }
func (u *Unit) CreatedAt() time.Time     { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time     { return u.updatedAt }

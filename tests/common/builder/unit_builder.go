//go:build unit || e2e

package builder

import (
	"time"

	domunit "housnkuh/internal/domain/unit"
	"housnkuh/internal/usecase/queries"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitBuilder struct {
	ID                uuid.UUID
	Label             string
	UnitType          string
	MonthlyPriceCents int64
	Available         bool
	OccupiedBy        *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewUnitBuilder() *UnitBuilder {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	return &UnitBuilder{
		ID:                uuid.New(),
		Label:             "R-01",
		UnitType:          string(domunit.TypeStandard),
		MonthlyPriceCents: 3500,
		Available:         true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (u *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(u)
	return u
}

func (u *UnitBuilder) BuildDomain() (*domunit.Unit, error) {
	return domunit.NewUnit(u.Label, domunit.Type(u.UnitType), u.MonthlyPriceCents)
}

func (u *UnitBuilder) BuildSnapshot() *shared.UnitSnapshot {
	return &shared.UnitSnapshot{
		ID:                u.ID,
		Label:             u.Label,
		UnitType:          u.UnitType,
		MonthlyPriceCents: u.MonthlyPriceCents,
		Available:         u.Available,
		OccupiedBy:        u.OccupiedBy,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (u *UnitBuilder) BuildView() *queries.UnitView {
	return &queries.UnitView{
		ID:                u.ID,
		Label:             u.Label,
		UnitType:          u.UnitType,
		MonthlyPriceCents: u.MonthlyPriceCents,
		Available:         u.Available,
		OccupiedBy:        u.OccupiedBy,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

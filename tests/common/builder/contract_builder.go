//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	domcontract "housnkuh/internal/domain/contract"
	"housnkuh/internal/usecase/queries"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContractBuilder struct {
	ID                     uuid.UUID
	VendorID               uuid.UUID
	VendorName             string
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
	UnitIDs                []uuid.UUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func NewContractBuilder() *ContractBuilder {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	return &ContractBuilder{
		ID:                     uuid.New(),
		VendorID:               uuid.New(),
		VendorName:             "Hofladen Huber",
		Status:                 string(domcontract.StatusScheduled),
		ScheduledStart:         start,
		DurationMonths:         12,
		TotalMonthlyPriceCents: 4500,
		Trial:                  true,
		BillableFrom:           start,
		// 12 contracted months plus the trial month
		ImpactFrom: start,
		ImpactTo:   start.AddDate(0, 13, 0),
		UnitIDs:    []uuid.UUID{uuid.New(), uuid.New()},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (c *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(c)
	return c
}

func (c *ContractBuilder) BuildSnapshot() *shared.ContractSnapshot {
	services := make([]shared.ServiceSnapshot, 0, len(c.UnitIDs))
	for _, id := range c.UnitIDs {
		services = append(services, shared.ServiceSnapshot{
			UnitID:    id,
			LeaseFrom: c.ImpactFrom,
			LeaseTo:   c.ImpactTo,
		})
	}
	return &shared.ContractSnapshot{
		ID:                     c.ID,
		VendorID:               c.VendorID,
		Status:                 c.Status,
		ScheduledStart:         c.ScheduledStart,
		DurationMonths:         c.DurationMonths,
		TotalMonthlyPriceCents: c.TotalMonthlyPriceCents,
		DiscountPercent:        c.DiscountPercent,
		Trial:                  c.Trial,
		TrialCancelled:         c.TrialCancelled,
		TrialCancelledAt:       c.TrialCancelledAt,
		BillableFrom:           c.BillableFrom,
		ImpactFrom:             c.ImpactFrom,
		ImpactTo:               c.ImpactTo,
		Services:               services,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (c *ContractBuilder) BuildView() *queries.ContractView {
	services := make([]queries.ServiceView, 0, len(c.UnitIDs))
	for i, id := range c.UnitIDs {
		services = append(services, queries.ServiceView{
			UnitID:    id,
			UnitLabel: fmt.Sprintf("R-%02d", i+1),
			LeaseFrom: c.ImpactFrom,
			LeaseTo:   c.ImpactTo,
		})
	}
	return &queries.ContractView{
		ID:                     c.ID,
		VendorID:               c.VendorID,
		VendorName:             c.VendorName,
		Status:                 c.Status,
		EffectiveStatus:        c.Status,
		ScheduledStart:         c.ScheduledStart,
		DurationMonths:         c.DurationMonths,
		TotalMonthlyPriceCents: c.TotalMonthlyPriceCents,
		DiscountPercent:        c.DiscountPercent,
		Trial:                  c.Trial,
		TrialCancelled:         c.TrialCancelled,
		TrialCancelledAt:       c.TrialCancelledAt,
		BillableFrom:           c.BillableFrom,
		ImpactFrom:             c.ImpactFrom,
		ImpactTo:               c.ImpactTo,
		Services:               services,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (c *ContractBuilder) BuildListItem() *queries.ContractListItem {
	return &queries.ContractListItem{
		ID:                     c.ID,
		VendorID:               c.VendorID,
		VendorName:             c.VendorName,
		Status:                 c.Status,
		EffectiveStatus:        c.Status,
		ScheduledStart:         c.ScheduledStart,
		DurationMonths:         c.DurationMonths,
		TotalMonthlyPriceCents: c.TotalMonthlyPriceCents,
		Trial:                  c.Trial,
		ImpactFrom:             c.ImpactFrom,
		ImpactTo:               c.ImpactTo,
		CreatedAt:              c.CreatedAt,
	}
}

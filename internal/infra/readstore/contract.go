package readstore

import (
	"context"

	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ContractReadStore struct {
	db db.DBTX
}

func NewContractReadStore(dbtx db.DBTX) *ContractReadStore {
	return &ContractReadStore{db: dbtx}
}

func (s *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	const query = `
		SELECT c.id, c.vendor_id, v.name, c.status, c.scheduled_start, c.duration_months,
		       c.total_monthly_price_cents, c.discount_percent, c.trial, c.trial_cancelled,
		       c.trial_cancelled_at, c.billable_from, c.impact_from, c.impact_to,
		       c.created_at, c.updated_at
		FROM contracts c
		JOIN vendors v ON v.id = c.vendor_id
		WHERE c.id = $1`

	var view queries.ContractView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.VendorID,
		&view.VendorName,
		&view.Status,
		&view.ScheduledStart,
		&view.DurationMonths,
		&view.TotalMonthlyPriceCents,
		&view.DiscountPercent,
		&view.Trial,
		&view.TrialCancelled,
		&view.TrialCancelledAt,
		&view.BillableFrom,
		&view.ImpactFrom,
		&view.ImpactTo,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract by ID", err)
	}

	services, err := s.findServices(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Services = services
	return &view, nil
}

func (s *ContractReadStore) findServices(ctx context.Context, contractID uuid.UUID) ([]queries.ServiceView, error) {
	const query = `
		SELECT cs.unit_id, u.label, cs.lease_from, cs.lease_to
		FROM contract_services cs
		JOIN units u ON u.id = cs.unit_id
		WHERE cs.contract_id = $1
		ORDER BY u.label`

	rows, err := s.db.Query(ctx, query, contractID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contract services", err)
	}
	defer rows.Close()

	var services []queries.ServiceView
	for rows.Next() {
		var svc queries.ServiceView
		if err := rows.Scan(&svc.UnitID, &svc.UnitLabel, &svc.LeaseFrom, &svc.LeaseTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract service", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contract services", err)
	}
	return services, nil
}

const contractListQuery = `
	SELECT c.id, c.vendor_id, v.name, c.status, c.scheduled_start, c.duration_months,
	       c.total_monthly_price_cents, c.trial, c.impact_from, c.impact_to, c.created_at
	FROM contracts c
	JOIN vendors v ON v.id = c.vendor_id`

func (s *ContractReadStore) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*queries.ContractListItem, error) {
	query := contractListQuery + ` WHERE c.vendor_id = $1 ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, query, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contracts by vendor", err)
	}
	return scanContractList(rows)
}

func (s *ContractReadStore) FindAll(ctx context.Context) ([]*queries.ContractListItem, error) {
	query := contractListQuery + ` ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all contracts", err)
	}
	return scanContractList(rows)
}

func scanContractList(rows pgx.Rows) ([]*queries.ContractListItem, error) {
	defer rows.Close()

	var items []*queries.ContractListItem
	for rows.Next() {
		var item queries.ContractListItem
		err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.VendorName,
			&item.Status,
			&item.ScheduledStart,
			&item.DurationMonths,
			&item.TotalMonthlyPriceCents,
			&item.Trial,
			&item.ImpactFrom,
			&item.ImpactTo,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contracts", err)
	}
	return items, nil
}

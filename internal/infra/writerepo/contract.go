package writerepo

import (
	"context"
	"time"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContractRepository struct {
	db db.DBTX
}

func NewContractRepository(dbtx db.DBTX) *ContractRepository {
	return &ContractRepository{db: dbtx}
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	const query = `
		INSERT INTO contracts (
			id, vendor_id, status, scheduled_start, duration_months,
			total_monthly_price_cents, discount_percent, trial, trial_cancelled,
			trial_cancelled_at, billable_from, impact_from, impact_to, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())`

	_, err := r.db.Exec(ctx, query,
		c.ID(),
		c.VendorID(),
		c.Status().String(),
		c.ScheduledStart(),
		c.DurationMonths(),
		c.TotalMonthlyPrice().Cents(),
		c.Discount().Percent(),
		c.IsTrial(),
		c.TrialCancelled(),
		pgconv.TimePtrToPgtype(c.TrialCancelledAt()),
		c.BillableFrom(),
		c.Impact().From(),
		c.Impact().To(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create contract", err)
	}

	const serviceQuery = `
		INSERT INTO contract_services (contract_id, unit_id, lease_from, lease_to)
		VALUES ($1, $2, $3, $4)`

	for _, svc := range c.Services() {
		_, err := r.db.Exec(ctx, serviceQuery,
			c.ID(),
			svc.UnitID(),
			svc.Period().From(),
			svc.Period().To(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create contract service", err)
		}
	}
	return nil
}

// SaveCancellation persists the terminal state of a cancelled contract:
// status, trial flags and the truncated impact window.
func (r *ContractRepository) SaveCancellation(ctx context.Context, c *contract.Contract) error {
	const query = `
		UPDATE contracts
		SET status = $2, trial_cancelled = $3, trial_cancelled_at = $4, impact_to = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Status().String(),
		c.TrialCancelled(),
		pgconv.TimePtrToPgtype(c.TrialCancelledAt()),
		c.Impact().To(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save contract cancellation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}
	return nil
}

// HasOverlap checks the half-open impact windows of every occupying
// contract on the unit. Adjacent windows sharing a boundary do not count.
func (r *ContractRepository) HasOverlap(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM contracts c
			JOIN contract_services s ON s.contract_id = c.id
			WHERE s.unit_id = $1
			  AND c.status IN ('pending', 'scheduled', 'active')
			  AND c.impact_from < $3
			  AND c.impact_to > $2
		)`

	var overlap bool
	if err := r.db.QueryRow(ctx, query, unitID, from, to).Scan(&overlap); err != nil {
		return false, infra.WrapRepoErr("failed to check contract overlap", err)
	}
	return overlap, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	const query = `
		SELECT id, vendor_id, status, scheduled_start, duration_months,
		       total_monthly_price_cents, discount_percent, trial, trial_cancelled,
		       trial_cancelled_at, billable_from, impact_from, impact_to, created_at, updated_at
		FROM contracts
		WHERE id = $1`

	var snap shared.ContractSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.VendorID,
		&snap.Status,
		&snap.ScheduledStart,
		&snap.DurationMonths,
		&snap.TotalMonthlyPriceCents,
		&snap.DiscountPercent,
		&snap.Trial,
		&snap.TrialCancelled,
		&snap.TrialCancelledAt,
		&snap.BillableFrom,
		&snap.ImpactFrom,
		&snap.ImpactTo,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract by ID", err)
	}

	services, err := r.findServices(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.Services = services
	return &snap, nil
}

func (r *ContractRepository) findServices(ctx context.Context, contractID uuid.UUID) ([]shared.ServiceSnapshot, error) {
	const query = `
		SELECT unit_id, lease_from, lease_to
		FROM contract_services
		WHERE contract_id = $1
		ORDER BY unit_id`

	rows, err := r.db.Query(ctx, query, contractID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contract services", err)
	}
	defer rows.Close()

	var services []shared.ServiceSnapshot
	for rows.Next() {
		var svc shared.ServiceSnapshot
		if err := rows.Scan(&svc.UnitID, &svc.LeaseFrom, &svc.LeaseTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract service", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contract services", err)
	}
	return services, nil
}

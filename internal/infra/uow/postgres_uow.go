package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"housnkuh/internal/domain/settings"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/infra/writerepo"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	unitRepo     *writerepo.UnitRepository
	contractRepo *writerepo.ContractRepository
	vendorRepo   *writerepo.VendorRepository
	settingsRepo *writerepo.SettingsRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Units() shared.UnitRepository {
	if t.unitRepo == nil {
		t.unitRepo = writerepo.NewUnitRepository(t.dbtx)
	}
	return t.unitRepo
}

func (t *pgTx) Contracts() shared.ContractRepository {
	if t.contractRepo == nil {
		t.contractRepo = writerepo.NewContractRepository(t.dbtx)
	}
	return t.contractRepo
}

func (t *pgTx) Vendors() shared.VendorRepository {
	if t.vendorRepo == nil {
		t.vendorRepo = writerepo.NewVendorRepository(t.dbtx)
	}
	return t.vendorRepo
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settingsRepo == nil {
		t.settingsRepo = writerepo.NewSettingsRepository(t.dbtx)
	}
	return t.settingsRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized repositories shared with the write side
	unitRepo     *writerepo.UnitRepository
	contractRepo *writerepo.ContractRepository
	vendorRepo   *writerepo.VendorRepository
	settingsRepo *writerepo.SettingsRepository
}

func (r *commandReads) units() *writerepo.UnitRepository {
	if r.unitRepo == nil {
		r.unitRepo = writerepo.NewUnitRepository(r.dbtx)
	}
	return r.unitRepo
}

func (r *commandReads) contracts() *writerepo.ContractRepository {
	if r.contractRepo == nil {
		r.contractRepo = writerepo.NewContractRepository(r.dbtx)
	}
	return r.contractRepo
}

func (r *commandReads) vendors() *writerepo.VendorRepository {
	if r.vendorRepo == nil {
		r.vendorRepo = writerepo.NewVendorRepository(r.dbtx)
	}
	return r.vendorRepo
}

func (r *commandReads) settings() *writerepo.SettingsRepository {
	if r.settingsRepo == nil {
		r.settingsRepo = writerepo.NewSettingsRepository(r.dbtx)
	}
	return r.settingsRepo
}

func (r *commandReads) VendorByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	return r.vendors().FindByID(ctx, id)
}

func (r *commandReads) VendorByEmail(ctx context.Context, email string) (*shared.VendorSnapshot, error) {
	return r.vendors().FindByEmail(ctx, email)
}

func (r *commandReads) VendorByToken(ctx context.Context, token string) (*shared.VendorSnapshot, error) {
	return r.vendors().FindByToken(ctx, token)
}

func (r *commandReads) UnitByID(ctx context.Context, id uuid.UUID) (*shared.UnitSnapshot, error) {
	return r.units().FindByID(ctx, id)
}

func (r *commandReads) ContractByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	return r.contracts().FindByID(ctx, id)
}

func (r *commandReads) StoreOpening(ctx context.Context) (settings.StoreOpening, error) {
	return r.settings().Get(ctx)
}

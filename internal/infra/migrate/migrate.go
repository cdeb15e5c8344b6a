package migrate

import (
	"context"
	"fmt"
	"time"

	"housnkuh/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migration is one versioned schema change, applied in version order.
type Migration struct {
	Version string
	Name    string
	UpSQL   string
	DownSQL string
}

// Migrator applies registered migrations against a schema_migrations
// version table.
type Migrator struct {
	pool       *pgxpool.Pool
	migrations []Migration
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{
		pool:       pool,
		migrations: All(),
	}
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    text PRIMARY KEY,
			name       text NOT NULL,
			applied_at timestamptz NOT NULL
		)`
	if _, err := m.pool.Exec(ctx, query); err != nil {
		return errs.Wrap(err, "failed to ensure version table")
	}
	return nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	rows, err := m.pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read applied versions")
	}
	defer rows.Close()

	versions := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errs.Wrap(err, "failed to scan version")
		}
		versions[v] = true
	}
	return versions, rows.Err()
}

// Up applies all pending migrations, each inside its own transaction.
func (m *Migrator) Up(ctx context.Context) error {
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if applied[mig.Version] {
			continue
		}

		tx, err := m.pool.Begin(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to begin migration transaction")
		}

		if _, err := tx.Exec(ctx, mig.UpSQL); err != nil {
			_ = tx.Rollback(ctx)
			return errs.Wrap(err, fmt.Sprintf("migration %s (%s) failed", mig.Version, mig.Name))
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name, applied_at) VALUES ($1, $2, $3)`,
			mig.Version, mig.Name, time.Now(),
		)
		if err != nil {
			_ = tx.Rollback(ctx)
			return errs.Wrap(err, "failed to record migration")
		}
		if err := tx.Commit(ctx); err != nil {
			return errs.Wrap(err, "failed to commit migration")
		}
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	var version string
	err := m.pool.QueryRow(ctx,
		`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`,
	).Scan(&version)
	if err != nil {
		return errs.Wrap(err, "no applied migration to roll back")
	}

	var target *Migration
	for i := range m.migrations {
		if m.migrations[i].Version == version {
			target = &m.migrations[i]
			break
		}
	}
	if target == nil {
		return errs.New("migration " + version + " is applied but not registered")
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin rollback transaction")
	}
	if _, err := tx.Exec(ctx, target.DownSQL); err != nil {
		_ = tx.Rollback(ctx)
		return errs.Wrap(err, fmt.Sprintf("rollback of %s (%s) failed", target.Version, target.Name))
	}
	if _, err := tx.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version); err != nil {
		_ = tx.Rollback(ctx)
		return errs.Wrap(err, "failed to remove migration record")
	}
	return tx.Commit(ctx)
}

// Status returns each registered migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) (map[string]bool, error) {
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	status := make(map[string]bool, len(m.migrations))
	for _, mig := range m.migrations {
		status[mig.Version] = applied[mig.Version]
	}
	return status, nil
}

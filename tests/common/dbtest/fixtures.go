//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestVendor(t *testing.T, db DBLike, email, role string, confirmed bool) uuid.UUID {
	t.Helper()

	vendorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO vendors (id, email, password_hash, name, role, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING`,
		vendorID, email, testPasswordHash, "Test Vendor", role, confirmed)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM vendors WHERE email = $1", email).Scan(&vendorID)
	}

	return vendorID
}

func CreateTestUnit(t *testing.T, db DBLike, label, unitType string, priceCents int64) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO units (id, label, unit_type, monthly_price_cents, available)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (label) DO NOTHING`,
		unitID, label, unitType, priceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM units WHERE label = $1", label).Scan(&unitID)
	}

	return unitID
}

// ConfirmationToken reads the stored single-use token for a vendor.
func ConfirmationToken(t *testing.T, db DBLike, vendorID uuid.UUID) string {
	t.Helper()

	var token *string
	err := db.QueryRow(context.Background(),
		"SELECT confirmation_token FROM vendors WHERE id = $1", vendorID).Scan(&token)
	require.NoError(t, err)
	require.NotNil(t, token, "vendor has no confirmation token")
	return *token
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Default store settings row (gating disabled)
	_, err := pool.Exec(ctx, `
		INSERT INTO store_settings (id, opening_enabled, reminder_lead_days)
		VALUES (1, false, 14)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

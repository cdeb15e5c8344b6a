//go:build unit

package settings_test

import (
	"testing"
	"time"

	"housnkuh/internal/domain/settings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOpening(t *testing.T) {
	opening := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("enabled gating requires a date", func(t *testing.T) {
		_, err := settings.NewStoreOpening(true, nil, 7)
		assert.ErrorIs(t, err, settings.ErrOpeningDateRequired)

		s, err := settings.NewStoreOpening(true, &opening, 7)
		require.NoError(t, err)
		require.NotNil(t, s.EffectiveOpening())
		assert.Equal(t, opening, *s.EffectiveOpening())
	})

	t.Run("disabled gating has no effective opening", func(t *testing.T) {
		s, err := settings.NewStoreOpening(false, &opening, 7)
		require.NoError(t, err)
		assert.Nil(t, s.EffectiveOpening())

		s, err = settings.NewStoreOpening(false, nil, 0)
		require.NoError(t, err)
		assert.Nil(t, s.EffectiveOpening())
	})

	t.Run("negative lead days clamp to zero", func(t *testing.T) {
		s, err := settings.NewStoreOpening(false, nil, -3)
		require.NoError(t, err)
		assert.Equal(t, 0, s.ReminderLeadDays)
	})

	t.Run("stamp records the acting admin", func(t *testing.T) {
		s, err := settings.NewStoreOpening(true, &opening, 7)
		require.NoError(t, err)

		adminID := uuid.New()
		now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
		stamped := s.Stamp(adminID, now)

		require.NotNil(t, stamped.UpdatedBy)
		assert.Equal(t, adminID, *stamped.UpdatedBy)
		assert.Equal(t, now, stamped.UpdatedAt)
		// Stamp returns a copy; the original stays untouched.
		assert.Nil(t, s.UpdatedBy)
	})
}

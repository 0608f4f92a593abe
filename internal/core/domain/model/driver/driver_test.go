package driver_test

import (
	"testing"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("valid driver starts available", func(t *testing.T) {
		id := kernel.NewUUID()
		d, err := driver.NewDriver(id, "B. Smith", false)
		require.NoError(t, err)

		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "B. Smith", d.Name())
		assert.Equal(t, driver.Available, d.Status())
		assert.False(t, d.IsContractor())
		require.NoError(t, d.Validate())
	})

	t.Run("contractor flag is preserved", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "J. Carter", true)
		require.NoError(t, err)
		assert.True(t, d.IsContractor())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "B. Smith", false)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_ClaimLifecycle(t *testing.T) {
	t.Run("claim then release", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "B. Smith", false)

		require.NoError(t, d.Claim())
		assert.Equal(t, driver.OnTrip, d.Status())

		require.NoError(t, d.Release())
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("double claim fails", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "B. Smith", false)
		require.NoError(t, d.Claim())
		require.Error(t, d.Claim())
	})

	t.Run("release without claim fails", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "B. Smith", false)
		require.Error(t, d.Release())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), "B. Smith", driver.OnTrip, true)
		require.NoError(t, err)
		assert.Equal(t, driver.OnTrip, d.Status())
		assert.True(t, d.IsContractor())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "B. Smith", driver.Unknown, false)
		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Available", driver.Available.String())
	assert.Equal(t, "OnTrip", driver.OnTrip.String())
	assert.Equal(t, "Unknown", driver.Status(42).String())

	require.NoError(t, driver.Available.Validate())
	require.Error(t, driver.Unknown.Validate())

	next, err := driver.Available.Claim()
	require.NoError(t, err)
	assert.Equal(t, driver.OnTrip, next)

	next, err = driver.OnTrip.Release()
	require.NoError(t, err)
	assert.Equal(t, driver.Available, next)

	_, err = driver.OnTrip.Claim()
	require.Error(t, err)
}

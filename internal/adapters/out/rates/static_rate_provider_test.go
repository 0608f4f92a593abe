package rates_test

import (
	"context"
	"testing"

	"swapdispatch/internal/adapters/out/rates"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRateProvider_ReturnsConfiguredTariff(t *testing.T) {
	provider, err := rates.NewStaticRateProvider(
		decimal.RequireFromString("2.10"),
		decimal.RequireFromString("6"),
	)
	require.NoError(t, err)

	tariff, err := provider.CurrentTariff(context.Background())

	require.NoError(t, err)
	assert.True(t, tariff.RatePerUnit.Equal(decimal.RequireFromString("2.10")))
	assert.True(t, tariff.ServiceFee.Equal(decimal.RequireFromString("6")))
}

func TestNewStaticRateProvider_RejectsInvalidAmounts(t *testing.T) {
	_, err := rates.NewStaticRateProvider(decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = rates.NewStaticRateProvider(
		decimal.RequireFromString("2.10"),
		decimal.RequireFromString("-1"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

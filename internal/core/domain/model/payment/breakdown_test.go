package payment_test

import (
	"testing"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewBreakdown(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("valid single-driver breakdown", func(t *testing.T) {
		b, err := payment.NewBreakdown(
			dec("588.00"), dec("17.64"), dec("6.00"), dec("564.36"),
			[]payment.DriverShare{{DriverID: driverID, Net: dec("564.36"), ServiceFee: dec("6.00")}},
		)
		require.NoError(t, err)
		require.NoError(t, b.Validate())

		assert.True(t, b.Gross().Equal(dec("588.00")))
		assert.True(t, b.FactoringFee().Equal(dec("17.64")))
		assert.True(t, b.ServiceFee().Equal(dec("6.00")))
		assert.True(t, b.Net().Equal(dec("564.36")))
		require.Len(t, b.Shares(), 1)
	})

	t.Run("net must reconcile exactly", func(t *testing.T) {
		_, err := payment.NewBreakdown(
			dec("588.00"), dec("17.64"), dec("6.00"), dec("564.37"),
			[]payment.DriverShare{{DriverID: driverID, Net: dec("564.37")}},
		)
		require.Error(t, err)
	})

	t.Run("shares must sum to net exactly", func(t *testing.T) {
		_, err := payment.NewBreakdown(
			dec("588.00"), dec("17.64"), dec("6.00"), dec("564.36"),
			[]payment.DriverShare{
				{DriverID: kernel.NewUUID(), Net: dec("282.18")},
				{DriverID: kernel.NewUUID(), Net: dec("282.17")},
			},
		)
		require.Error(t, err)
	})

	t.Run("empty shares rejected", func(t *testing.T) {
		_, err := payment.NewBreakdown(
			dec("588.00"), dec("17.64"), dec("6.00"), dec("564.36"), nil,
		)
		require.Error(t, err)
	})

	t.Run("invalid driver id rejected", func(t *testing.T) {
		_, err := payment.NewBreakdown(
			dec("588.00"), dec("17.64"), dec("6.00"), dec("564.36"),
			[]payment.DriverShare{{DriverID: kernel.UUID{}, Net: dec("564.36")}},
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b payment.Breakdown
		require.ErrorIs(t, b.Validate(), payment.ErrBreakdownIsNotConstructed)
	})

	t.Run("shares accessor returns a copy", func(t *testing.T) {
		b, err := payment.NewBreakdown(
			dec("100.00"), dec("3.00"), dec("6.00"), dec("91.00"),
			[]payment.DriverShare{{DriverID: driverID, Net: dec("91.00"), ServiceFee: dec("6.00")}},
		)
		require.NoError(t, err)

		shares := b.Shares()
		shares[0].Net = dec("0.00")
		assert.True(t, b.Shares()[0].Net.Equal(dec("91.00")))
	})
}

func TestMode(t *testing.T) {
	require.NoError(t, payment.ShareOfGross.Validate())
	require.NoError(t, payment.FullNet.Validate())
	require.Error(t, payment.ModeUnknown.Validate())
	require.Error(t, payment.Mode(42).Validate())

	assert.Equal(t, "ShareOfGross", payment.ShareOfGross.String())
	assert.Equal(t, "FullNet", payment.FullNet.String())
	assert.Equal(t, "Unknown", payment.ModeUnknown.String())
}

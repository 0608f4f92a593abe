package rateconf_test

import (
	"testing"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/rateconf"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newUnmatched(t *testing.T) *rateconf.RateConfirmation {
	t.Helper()
	rc, err := rateconf.NewRateConfirmation(
		kernel.NewUUID(), "MLBL-20250610-01",
		dec("300"), dec("2.10"), dec("630.00"),
		"client faxed it twice",
	)
	require.NoError(t, err)
	return rc
}

func TestNewRateConfirmation(t *testing.T) {
	t.Run("starts unmatched", func(t *testing.T) {
		rc := newUnmatched(t)

		assert.Equal(t, rateconf.Unmatched, rc.Status())
		assert.Equal(t, "MLBL-20250610-01", rc.Reference())
		assert.True(t, rc.ReportedDistance().Equal(dec("300")))
		assert.Nil(t, rc.MatchedTo())
		assert.Empty(t, rc.MatchedBy())
		assert.Nil(t, rc.MatchedAt())
		require.NoError(t, rc.Validate())
	})

	t.Run("empty reference is rejected", func(t *testing.T) {
		_, err := rateconf.NewRateConfirmation(
			kernel.NewUUID(), "", dec("300"), dec("2.10"), dec("630.00"), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive reported distance is rejected", func(t *testing.T) {
		_, err := rateconf.NewRateConfirmation(
			kernel.NewUUID(), "MLBL-1", dec("0"), dec("2.10"), dec("0"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative reported total is rejected", func(t *testing.T) {
		_, err := rateconf.NewRateConfirmation(
			kernel.NewUUID(), "MLBL-1", dec("300"), dec("2.10"), dec("-1"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rc rateconf.RateConfirmation
		require.ErrorIs(t, rc.Validate(), rateconf.ErrRateConfirmationIsNotConstructed)
	})
}

func TestRateConfirmation_Match(t *testing.T) {
	matchedAt := time.Date(2025, 6, 11, 9, 30, 0, 0, time.UTC)

	t.Run("links the confirmation to a move", func(t *testing.T) {
		rc := newUnmatched(t)
		moveID := kernel.NewUUID()

		require.NoError(t, rc.Match(moveID, "dispatcher", matchedAt))

		assert.Equal(t, rateconf.Matched, rc.Status())
		require.NotNil(t, rc.MatchedTo())
		assert.True(t, rc.MatchedTo().IsEqual(moveID))
		assert.Equal(t, "dispatcher", rc.MatchedBy())
		require.NotNil(t, rc.MatchedAt())
		assert.Equal(t, matchedAt, *rc.MatchedAt())
	})

	t.Run("second match fails even against another move", func(t *testing.T) {
		rc := newUnmatched(t)
		firstMoveID := kernel.NewUUID()
		require.NoError(t, rc.Match(firstMoveID, "dispatcher", matchedAt))

		err := rc.Match(kernel.NewUUID(), "dispatcher", matchedAt)
		require.ErrorIs(t, err, errs.ErrAlreadyMatched)
		assert.True(t, rc.MatchedTo().IsEqual(firstMoveID))
	})

	t.Run("empty matchedBy is rejected", func(t *testing.T) {
		rc := newUnmatched(t)
		err := rc.Match(kernel.NewUUID(), "", matchedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, rateconf.Unmatched, rc.Status())
	})
}

func TestRestoreRateConfirmation(t *testing.T) {
	t.Run("restores a matched confirmation", func(t *testing.T) {
		moveID := kernel.NewUUID()
		matchedAt := time.Date(2025, 6, 11, 9, 30, 0, 0, time.UTC)

		rc, err := rateconf.RestoreRateConfirmation(
			kernel.NewUUID(), "MLBL-20250610-01",
			dec("300"), dec("2.10"), dec("630.00"), "",
			rateconf.Matched, &moveID, "dispatcher", &matchedAt,
		)
		require.NoError(t, err)
		assert.Equal(t, rateconf.Matched, rc.Status())
		assert.True(t, rc.MatchedTo().IsEqual(moveID))
	})

	t.Run("matched status without a move is rejected", func(t *testing.T) {
		_, err := rateconf.RestoreRateConfirmation(
			kernel.NewUUID(), "MLBL-20250610-01",
			dec("300"), dec("2.10"), dec("630.00"), "",
			rateconf.Matched, nil, "dispatcher", nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Unmatched", rateconf.Unmatched.String())
		assert.Equal(t, "Matched", rateconf.Matched.String())
		assert.Equal(t, "Unknown", rateconf.Status(42).String())
	})

	t.Run("validation", func(t *testing.T) {
		require.NoError(t, rateconf.Unmatched.Validate())
		require.NoError(t, rateconf.Matched.Validate())
		require.ErrorIs(t, rateconf.Unknown.Validate(), errs.ErrValueIsInvalid)
	})
}

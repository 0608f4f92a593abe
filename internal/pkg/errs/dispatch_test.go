package errs_test

import (
	"errors"
	"testing"

	"swapdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceUnavailableError(t *testing.T) {
	t.Run("NewResourceUnavailableError", func(t *testing.T) {
		err := errs.NewResourceUnavailableError("trailer", []string{"TR-100", "TR-200"})

		assert.Equal(t, "trailer", err.Kind)
		assert.Equal(t, []string{"TR-100", "TR-200"}, err.IDs)
		require.NoError(t, err.Cause)
		assert.Equal(t, "resource unavailable: trailer [TR-100, TR-200]", err.Error())
		assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
	})

	t.Run("NewResourceUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 of 2 rows updated")
		err := errs.NewResourceUnavailableErrorWithCause("driver", []string{"D1"}, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "resource unavailable: driver [D1] (cause: 0 of 2 rows updated)", err.Error())
		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("move-1", "Completed", "Cancelled")

	assert.Equal(t, "move-1", err.MoveID)
	assert.Equal(t, "invalid status transition: move move-1 cannot go from Completed to Cancelled", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAlreadyMatchedError(t *testing.T) {
	t.Run("NewAlreadyMatchedError", func(t *testing.T) {
		err := errs.NewAlreadyMatchedError("rc-1", "move-1")

		assert.Equal(t, "rate confirmation already matched: rate confirmation rc-1, move move-1", err.Error())
		require.ErrorIs(t, err, errs.ErrAlreadyMatched)
	})

	t.Run("NewAlreadyMatchedErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewAlreadyMatchedErrorWithCause("rc-1", "move-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: duplicate key value violates unique constraint)")
		require.ErrorIs(t, err, errs.ErrAlreadyMatched)
	})
}

func TestProviderUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewProviderUnavailableError("distance", cause)

	assert.Equal(t, "distance", err.Provider)
	assert.Equal(t, "provider unavailable: distance (cause: connection refused)", err.Error())
	require.ErrorIs(t, err, errs.ErrProviderUnavailable)
}

func TestDispatchSentinelErrors(t *testing.T) {
	assert.Equal(t, "resource unavailable", errs.ErrResourceUnavailable.Error())
	assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "rate confirmation already matched", errs.ErrAlreadyMatched.Error())
	assert.Equal(t, "provider unavailable", errs.ErrProviderUnavailable.Error())
}

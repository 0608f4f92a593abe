package queries_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnmatchedRateConfirmationsQuery_Valid(t *testing.T) {
	query := queries.NewGetUnmatchedRateConfirmationsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnmatchedRateConfirmationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnmatchedRateConfirmationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnmatchedRateConfirmationsQueryIsNotConstructed)
}

package queries_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableTrailersQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableTrailersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAvailableTrailersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableTrailersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableTrailersQueryIsNotConstructed)
}

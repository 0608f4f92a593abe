package queries_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableDriversQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableDriversQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAvailableDriversQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableDriversQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableDriversQueryIsNotConstructed)
}

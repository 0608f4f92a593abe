package queries_test

import (
	"testing"
	"time"

	"swapdispatch/internal/core/application/usecases/queries"
	"swapdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueMovesQuery_ValidInput(t *testing.T) {
	asOf := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetOverdueMovesQuery(asOf)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, asOf, query.AsOf())
}

func TestNewGetOverdueMovesQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewGetOverdueMovesQuery(time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOverdueMovesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOverdueMovesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueMovesQueryIsNotConstructed)
}

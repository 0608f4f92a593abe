package queries

import (
	"errors"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"
)

var ErrGetOverdueMovesQueryIsNotConstructed = errors.New(
	"GetOverdueMovesQuery must be created via NewGetOverdueMovesQuery constructor",
)

// GetOverdueMovesQuery retrieves moves that were scheduled before a cutoff
// date but have not reached a terminal state. The overdue sweep job uses this
// to surface loads that slipped through dispatch.
type GetOverdueMovesQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueMovesQuery creates a query for moves scheduled before asOf
// that are still open.
//
// Returns:
//   - GetOverdueMovesQuery: A valid query instance
//   - error: Validation error if asOf is the zero time
func NewGetOverdueMovesQuery(asOf time.Time) (GetOverdueMovesQuery, error) {
	query := GetOverdueMovesQuery{guard: guard.NewConstructorGuard()}

	if err := query.setAsOf(asOf); err != nil {
		return GetOverdueMovesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueMovesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueMovesQueryIsNotConstructed)
}

// AsOf returns the cutoff date of the query.
func (q GetOverdueMovesQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetOverdueMovesQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}
	q.asOf = asOf
	return nil
}

// GetOverdueMovesQueryResponse represents one open move scheduled in the past.
type GetOverdueMovesQueryResponse struct {
	ID            kernel.UUID
	Origin        kernel.Location
	Destination   kernel.Location
	ScheduledDate time.Time
	Status        string
}

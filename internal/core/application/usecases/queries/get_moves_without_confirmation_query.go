package queries

import (
	"errors"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMovesWithoutConfirmationQueryIsNotConstructed = errors.New(
	"GetMovesWithoutConfirmationQuery must be created via NewGetMovesWithoutConfirmationQuery constructor",
)

// GetMovesWithoutConfirmationQuery retrieves completed moves that no broker
// paperwork has been matched against. These are the loads the operation has
// hauled but not yet verified payment for.
type GetMovesWithoutConfirmationQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMovesWithoutConfirmationQuery creates a query for unverified completed moves.
// This is a parameterless query.
func NewGetMovesWithoutConfirmationQuery() GetMovesWithoutConfirmationQuery {
	return GetMovesWithoutConfirmationQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMovesWithoutConfirmationQuery) Validate() error {
	return q.guard.Validate(ErrGetMovesWithoutConfirmationQueryIsNotConstructed)
}

// GetMovesWithoutConfirmationQueryResponse represents one completed move that
// is still waiting on broker paperwork.
type GetMovesWithoutConfirmationQueryResponse struct {
	ID            kernel.UUID
	Origin        kernel.Location
	Destination   kernel.Location
	ScheduledDate time.Time
	Distance      decimal.Decimal
}

package queries

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMovePaymentQueryIsNotConstructed = errors.New(
	"GetMovePaymentQuery must be created via NewGetMovePaymentQuery constructor",
)

// GetMovePaymentQuery retrieves the full payment breakdown of a completed
// move, including the per-driver split. Settlement sheets are produced from
// this read model.
type GetMovePaymentQuery struct {
	moveID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMovePaymentQuery creates a query for the payment breakdown of a move.
//
// Returns:
//   - GetMovePaymentQuery: A valid query instance
//   - error: Validation error if the move ID is invalid
func NewGetMovePaymentQuery(moveID kernel.UUID) (GetMovePaymentQuery, error) {
	query := GetMovePaymentQuery{guard: guard.NewConstructorGuard()}

	if err := query.setMoveID(moveID); err != nil {
		return GetMovePaymentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMovePaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetMovePaymentQueryIsNotConstructed)
}

// MoveID returns the identifier of the move being queried.
func (q GetMovePaymentQuery) MoveID() kernel.UUID {
	return q.moveID
}

func (q *GetMovePaymentQuery) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}
	q.moveID = moveID
	return nil
}

// GetMovePaymentQueryResponse represents the payment breakdown of one
// completed move.
type GetMovePaymentQueryResponse struct {
	MoveID       kernel.UUID
	Distance     decimal.Decimal
	Gross        decimal.Decimal
	FactoringFee decimal.Decimal
	ServiceFee   decimal.Decimal
	Net          decimal.Decimal
	// ReportedDelta and ReportedDeltaPct are set once broker paperwork has
	// been reconciled against the move, nil before that.
	ReportedDelta    *decimal.Decimal
	ReportedDeltaPct *decimal.Decimal
	Shares           []GetMovePaymentQueryShare
}

// GetMovePaymentQueryShare represents one driver's cut of a move payout.
type GetMovePaymentQueryShare struct {
	DriverID   kernel.UUID
	DriverName string
	Net        decimal.Decimal
	ServiceFee decimal.Decimal
}

package queries

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnmatchedRateConfirmationsQueryIsNotConstructed = errors.New(
	"GetUnmatchedRateConfirmationsQuery must be created via NewGetUnmatchedRateConfirmationsQuery constructor",
)

// GetUnmatchedRateConfirmationsQuery retrieves broker paperwork that has not
// been tied to a move yet. This is the back office worklist for reconciliation.
type GetUnmatchedRateConfirmationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnmatchedRateConfirmationsQuery creates a query for the reconciliation worklist.
// This is a parameterless query.
func NewGetUnmatchedRateConfirmationsQuery() GetUnmatchedRateConfirmationsQuery {
	return GetUnmatchedRateConfirmationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnmatchedRateConfirmationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnmatchedRateConfirmationsQueryIsNotConstructed)
}

// GetUnmatchedRateConfirmationsQueryResponse represents one piece of
// unprocessed broker paperwork in the read model.
type GetUnmatchedRateConfirmationsQueryResponse struct {
	ID               kernel.UUID
	Reference        string
	ReportedDistance decimal.Decimal
	ReportedRate     decimal.Decimal
	ReportedTotal    decimal.Decimal
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var ErrGetAvailableTrailersQueryIsNotConstructed = errors.New(
	"GetAvailableTrailersQuery must be created via NewGetAvailableTrailersQuery constructor",
)

// GetAvailableTrailersQuery retrieves every in-service trailer currently free
// to be claimed by a move. The dispatch board uses this to show what can be
// hauled today.
//
// Example:
//
//	query := NewGetAvailableTrailersQuery()
//	handler := NewGetAvailableTrailersQueryHandler(db)
//
//	trailers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve trailers: %w", err)
//	}
//
//	for _, t := range trailers {
//	    fmt.Printf("Trailer %s parked at %s\n", t.Number, t.Location.Name())
//	}
type GetAvailableTrailersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableTrailersQuery creates a query to retrieve the available pool.
// This is a parameterless query.
func NewGetAvailableTrailersQuery() GetAvailableTrailersQuery {
	return GetAvailableTrailersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTrailersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTrailersQueryIsNotConstructed)
}

// GetAvailableTrailersQueryResponse represents one free trailer in the read model.
type GetAvailableTrailersQueryResponse struct {
	ID       kernel.UUID
	Number   string
	Location kernel.Location
}

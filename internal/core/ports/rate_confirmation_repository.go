package ports

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/rateconf"
)

// RateConfirmationRepository defines the persistence contract for rate
// confirmation aggregates. Storage enforces at most one confirmation per
// move; Update surfaces a violation as AlreadyMatched.
type RateConfirmationRepository interface {
	// Add persists a newly ingested confirmation.
	Add(ctx context.Context, aggregate *rateconf.RateConfirmation) error

	// Update persists changes to an existing confirmation. Matching a
	// confirmation to a move that already has one returns AlreadyMatched.
	Update(ctx context.Context, aggregate *rateconf.RateConfirmation) error

	// Get retrieves a confirmation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rateconf.RateConfirmation, error)

	// GetAllUnmatched retrieves every confirmation not yet linked to a move.
	GetAllUnmatched(ctx context.Context) ([]*rateconf.RateConfirmation, error)
}

package ports

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"
)

// TrailerRepository defines the persistence contract for trailer aggregates.
// Besides single-aggregate CRUD it exposes set-wise Claim and Release so the
// registry can flip a whole resource set atomically under contention.
type TrailerRepository interface {
	// Add persists a new trailer aggregate to storage.
	// The trailer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *trailer.Trailer) error

	// Update persists changes to an existing trailer aggregate.
	// The trailer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *trailer.Trailer) error

	// Get retrieves a trailer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error)

	// GetByNumber retrieves a trailer aggregate by its unit number.
	GetByNumber(ctx context.Context, number string) (*trailer.Trailer, error)

	// GetAllAvailable retrieves every in-service trailer currently free to be
	// claimed by a move.
	GetAllAvailable(ctx context.Context) ([]*trailer.Trailer, error)

	// Claim flips every listed trailer from Available to Claimed in a single
	// guarded statement. If any trailer is not Available the whole claim
	// fails with ResourceUnavailable and no row is changed once the caller
	// rolls back; the caller runs this inside a unit of work.
	Claim(ctx context.Context, ids []kernel.UUID) error

	// Release flips every listed trailer back to Available. A non-nil
	// location relocates the trailers (move completion drops them at the
	// destination); nil leaves locations untouched (cancellation).
	Release(ctx context.Context, ids []kernel.UUID, at *kernel.Location) error
}

package ports

import (
	"context"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Like TrailerRepository it exposes set-wise Claim and Release for atomic
// resource flips under contention.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves every driver currently free to take a move.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// Claim flips every listed driver from Available to OnTrip in a single
	// guarded statement. If any driver is not Available the whole claim
	// fails with ResourceUnavailable; the caller runs this inside a unit of
	// work and rolls back on failure.
	Claim(ctx context.Context, ids []kernel.UUID) error

	// Release flips every listed driver back to Available.
	Release(ctx context.Context, ids []kernel.UUID) error
}

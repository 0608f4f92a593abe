package ports

import (
	"context"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
)

// MoveRepository defines the persistence contract for move aggregates.
// Terminal moves are retained for audit; there is no delete.
type MoveRepository interface {
	// Add persists a new move aggregate to storage.
	Add(ctx context.Context, aggregate *move.Move) error

	// Update persists changes to an existing move aggregate.
	Update(ctx context.Context, aggregate *move.Move) error

	// Get retrieves a move aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*move.Move, error)

	// GetAllActive retrieves every move in a non-terminal status.
	GetAllActive(ctx context.Context) ([]*move.Move, error)

	// GetAllOverdue retrieves every active move whose scheduled date is
	// before the given moment.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*move.Move, error)
}

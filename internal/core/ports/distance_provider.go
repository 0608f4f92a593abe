package ports

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DistanceProvider resolves the distance between two named locations.
// Implementations may hit an external routing service; failures surface as
// ProviderUnavailable so the caller can decide whether the operation can
// proceed without a distance.
type DistanceProvider interface {
	// Distance returns the distance between from and to in the operation's
	// distance unit. The value is positive; a lane the provider does not
	// know returns ObjectNotFound.
	Distance(ctx context.Context, from, to kernel.Location) (decimal.Decimal, error)
}

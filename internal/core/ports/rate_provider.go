package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Tariff is the client's published pricing for swap runs.
type Tariff struct {
	// RatePerUnit is the pay per distance unit.
	RatePerUnit decimal.Decimal
	// ServiceFee is the flat per-move fee.
	ServiceFee decimal.Decimal
}

// RateProvider resolves the tariff in force for a move. Implementations may
// be a static configuration or an external rating service; failures surface
// as ProviderUnavailable.
type RateProvider interface {
	// CurrentTariff returns the tariff to price a move against.
	CurrentTariff(ctx context.Context) (Tariff, error)
}

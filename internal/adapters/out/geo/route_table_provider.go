// Package geo provides distance resolution between named locations.
// RouteTableProvider serves distances from a static lane table and
// CachedDistanceProvider adds a database-backed cache in front of any
// other provider, so a lane is resolved at most once.
package geo

import (
	"context"
	"strings"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/ports"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Lane is one known origin-destination pair with its distance.
type Lane struct {
	From     string
	To       string
	Distance decimal.Decimal
}

// RouteTableProvider resolves distances from a fixed table of lanes.
// Lanes are symmetric: a table entry for A->B also answers B->A.
// Useful standalone in development and as the backing provider behind
// CachedDistanceProvider in production setups without a routing service.
type RouteTableProvider struct {
	distances map[string]decimal.Decimal
}

// NewRouteTableProvider creates a provider from the given lanes.
// Lane endpoints are matched case-insensitively.
func NewRouteTableProvider(lanes []Lane) (*RouteTableProvider, error) {
	distances := make(map[string]decimal.Decimal, len(lanes))
	for _, lane := range lanes {
		if lane.From == "" || lane.To == "" {
			return nil, errs.NewValueIsRequiredError("lane endpoints")
		}
		if !lane.Distance.IsPositive() {
			return nil, errs.NewValueIsOutOfRangeError("lane distance", lane.Distance, 0, "unbounded")
		}
		distances[laneKey(lane.From, lane.To)] = lane.Distance
	}

	return &RouteTableProvider{distances: distances}, nil
}

// Distance returns the tabled distance for the lane, in either direction.
// An unknown lane returns ObjectNotFound.
func (p *RouteTableProvider) Distance(_ context.Context, from, to kernel.Location) (decimal.Decimal, error) {
	if err := from.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := to.Validate(); err != nil {
		return decimal.Zero, err
	}

	if d, ok := p.distances[laneKey(from.Name(), to.Name())]; ok {
		return d, nil
	}
	if d, ok := p.distances[laneKey(to.Name(), from.Name())]; ok {
		return d, nil
	}

	return decimal.Zero, errs.NewObjectNotFoundError("lane", from.Name()+" -> "+to.Name())
}

func laneKey(from, to string) string {
	return strings.ToLower(from) + "|" + strings.ToLower(to)
}

var _ ports.DistanceProvider = (*RouteTableProvider)(nil)

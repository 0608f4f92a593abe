// Package rates provides tariff resolution for pricing moves.
package rates

import (
	"context"

	"swapdispatch/internal/core/ports"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// StaticRateProvider serves one configured tariff for every move. This is the
// published-tariff setup most client contracts run on: a fixed per-mile rate
// and a flat service fee, renegotiated out of band.
type StaticRateProvider struct {
	tariff ports.Tariff
}

// NewStaticRateProvider creates a provider carrying the given tariff.
// The rate must be positive; the service fee may be zero but not negative.
func NewStaticRateProvider(ratePerUnit, serviceFee decimal.Decimal) (*StaticRateProvider, error) {
	if !ratePerUnit.IsPositive() {
		return nil, errs.NewValueIsOutOfRangeError("rate per unit", ratePerUnit, 0, "unbounded")
	}
	if serviceFee.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("service fee", serviceFee, 0, "unbounded")
	}

	return &StaticRateProvider{
		tariff: ports.Tariff{RatePerUnit: ratePerUnit, ServiceFee: serviceFee},
	}, nil
}

// CurrentTariff returns the configured tariff.
func (p *StaticRateProvider) CurrentTariff(_ context.Context) (ports.Tariff, error) {
	return p.tariff, nil
}

var _ ports.RateProvider = (*StaticRateProvider)(nil)

package services

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/payment"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Calculator validation errors.
var (
	// ErrFactoringRateIsOutOfRange is returned when the configured factoring
	// rate is not within [0, 1).
	ErrFactoringRateIsOutOfRange = errs.NewValueIsOutOfRangeError(
		"factoring rate", "rate", 0, 1)
	// ErrDriverShareIsOutOfRange is returned when the configured driver share
	// percent is not within (0, 1].
	ErrDriverShareIsOutOfRange = errs.NewValueIsOutOfRangeError(
		"driver share percent", "percent", 0, 1)
)

// CalculatorConfig carries the contractual percentages of the payment
// calculation. The defaults mirror the operation's standing factoring
// agreement (3%) and company-driver pay plan (30% of gross).
type CalculatorConfig struct {
	// FactoringRate is the fraction of the payout pool the factoring company
	// keeps, in [0, 1).
	FactoringRate decimal.Decimal
	// DriverSharePercent is the fraction of the billed gross that forms the
	// driver pool in ShareOfGross mode, in (0, 1].
	DriverSharePercent decimal.Decimal
}

// DefaultCalculatorConfig returns the standing contractual percentages.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		FactoringRate:      decimal.RequireFromString("0.03"),
		DriverSharePercent: decimal.RequireFromString("0.30"),
	}
}

// Validate checks the configured percentages are within their legal ranges.
func (c CalculatorConfig) Validate() error {
	var err error
	if c.FactoringRate.IsNegative() || c.FactoringRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		err = errors.Join(err, ErrFactoringRateIsOutOfRange)
	}
	if !c.DriverSharePercent.IsPositive() || c.DriverSharePercent.GreaterThan(decimal.NewFromInt(1)) {
		err = errors.Join(err, ErrDriverShareIsOutOfRange)
	}
	return err
}

// Calculator is a pure domain service that turns a move's distance and the
// client's tariff into the payment breakdown. It performs no I/O; the caller
// supplies the distance, the rate and the payout mode.
//
// Calculation rules:
//   - Billed gross = distance × rate per unit, rounded half-even to cents
//   - The payout pool is the billed gross in FullNet mode, or billed gross ×
//     driver share percent in ShareOfGross mode
//   - The factoring fee and the flat service fee come out of the pool
//   - All per-driver splits round half-even to cents with the remainder
//     going to the first driver in caller order, so sums reconcile exactly
type Calculator struct {
	config CalculatorConfig
}

// NewCalculator creates a Calculator with the given contractual percentages.
func NewCalculator(config CalculatorConfig) (Calculator, error) {
	if err := config.Validate(); err != nil {
		return Calculator{}, err
	}
	return Calculator{config: config}, nil
}

// Estimate computes the payment breakdown for one move.
//
// Parameters:
//   - distance: the computed distance of the run (must be positive)
//   - ratePerUnit: the client's per-distance-unit rate (must be positive)
//   - serviceFee: the flat per-move service fee (must not be negative)
//   - driverIDs: the drivers to split the payout between, in payout order
//   - mode: the payout mode (explicit, never inferred)
//
// The returned Breakdown's gross is the payout pool, not necessarily the
// billed amount: in ShareOfGross mode the pool is billed gross × driver
// share percent and the factoring deduction is proportional to the pool.
func (c Calculator) Estimate(
	distance decimal.Decimal,
	ratePerUnit decimal.Decimal,
	serviceFee decimal.Decimal,
	driverIDs []kernel.UUID,
	mode payment.Mode,
) (payment.Breakdown, error) {
	if err := c.validateEstimateInput(distance, ratePerUnit, serviceFee, driverIDs, mode); err != nil {
		return payment.Breakdown{}, err
	}

	pool := distance.Mul(ratePerUnit)
	if mode == payment.ShareOfGross {
		pool = pool.Mul(c.config.DriverSharePercent)
	}
	pool = pool.RoundBank(2)

	factoringFee := pool.Mul(c.config.FactoringRate).RoundBank(2)
	net := pool.Sub(factoringFee).Sub(serviceFee)

	shares := c.splitBetweenDrivers(net, serviceFee, driverIDs)

	return payment.NewBreakdown(pool, factoringFee, serviceFee, net, shares)
}

// ReverseFromNet back-fills the client's billed amount from a known driver
// net, for auditing payouts recorded before the tariff was known:
// billed = (net + serviceFee) / (1 − factoringRate), rounded half-even to
// cents.
func (c Calculator) ReverseFromNet(net, serviceFee decimal.Decimal) (decimal.Decimal, error) {
	if net.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidError("net must not be negative")
	}
	if serviceFee.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidError("service fee must not be negative")
	}

	divisor := decimal.NewFromInt(1).Sub(c.config.FactoringRate)
	return net.Add(serviceFee).Div(divisor).RoundBank(2), nil
}

// splitBetweenDrivers divides the net and the service fee equally between
// the drivers. Both splits round half-even to cents and the first driver
// absorbs the remainder, so each sum reconciles exactly.
func (c Calculator) splitBetweenDrivers(
	net decimal.Decimal,
	serviceFee decimal.Decimal,
	driverIDs []kernel.UUID,
) []payment.DriverShare {
	count := decimal.NewFromInt(int64(len(driverIDs)))
	perNet := net.Div(count).RoundBank(2)
	perFee := serviceFee.Div(count).RoundBank(2)

	shares := make([]payment.DriverShare, len(driverIDs))
	for i, driverID := range driverIDs {
		shares[i] = payment.DriverShare{
			DriverID:   driverID,
			Net:        perNet,
			ServiceFee: perFee,
		}
	}

	shares[0].Net = shares[0].Net.Add(net.Sub(perNet.Mul(count)))
	shares[0].ServiceFee = shares[0].ServiceFee.Add(serviceFee.Sub(perFee.Mul(count)))

	return shares
}

// validateEstimateInput aggregates every invalid estimate parameter.
func (c Calculator) validateEstimateInput(
	distance decimal.Decimal,
	ratePerUnit decimal.Decimal,
	serviceFee decimal.Decimal,
	driverIDs []kernel.UUID,
	mode payment.Mode,
) error {
	var err error
	if !distance.IsPositive() {
		err = errors.Join(err, errs.NewValueIsInvalidError("distance must be greater than 0"))
	}
	if !ratePerUnit.IsPositive() {
		err = errors.Join(err, errs.NewValueIsInvalidError("rate per unit must be greater than 0"))
	}
	if serviceFee.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidError("service fee must not be negative"))
	}
	if len(driverIDs) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("drivers"))
	}
	if modeErr := mode.Validate(); modeErr != nil {
		err = errors.Join(err, modeErr)
	}
	return err
}

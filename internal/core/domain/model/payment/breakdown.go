package payment

import (
	"errors"
	"fmt"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrBreakdownIsNotConstructed is returned when using an improperly initialized Breakdown.
var ErrBreakdownIsNotConstructed = errors.New("Breakdown must be created via NewBreakdown constructor")

// Mode selects how the driver payout pool is derived from the billed gross.
// The mode is always an explicit input to the calculator; it is never
// inferred from the amounts.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// ShareOfGross pays company drivers a configured percentage of the
	// billed gross (default 30%), with their proportional slice of the
	// factoring fee and the full flat service fee deducted from that pool.
	ShareOfGross

	// FullNet pays owner-operators the entire billed gross net of the
	// factoring fee and the flat service fee.
	FullNet
)

// Validate checks if the Mode value is valid.
func (m Mode) Validate() error {
	if m != ShareOfGross && m != FullNet {
		return errs.NewValueIsInvalidErrorWithCause("payout mode is invalid",
			fmt.Errorf("%d is not a valid payout mode", m))
	}
	return nil
}

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ShareOfGross:
		return "ShareOfGross"
	case FullNet:
		return "FullNet"
	default:
		return "Unknown"
	}
}

// DriverShare is one driver's slice of a completed move's payout.
// Shares are ordered: the first driver in the caller-supplied ordering
// absorbs any rounding remainder so the totals always reconcile exactly.
type DriverShare struct {
	// DriverID identifies the driver receiving this share.
	DriverID kernel.UUID
	// Net is the driver's take-home amount for the move.
	Net decimal.Decimal
	// ServiceFee is the driver's equal slice of the flat service fee.
	ServiceFee decimal.Decimal
}

// Breakdown is the immutable payment record attached one-to-one to a
// completed move.
//
// Invariants enforced at construction:
//   - Net = Gross − FactoringFee − ServiceFee, exactly
//   - The sum of the per-driver net shares equals Net, exactly
//   - At least one driver share is present
//
// Gross here is the payout basis: the full billed amount in FullNet mode, or
// the driver pool (billed gross × share percent) in ShareOfGross mode.
type Breakdown struct {
	gross        decimal.Decimal
	factoringFee decimal.Decimal
	serviceFee   decimal.Decimal
	net          decimal.Decimal
	shares       []DriverShare
	guard        guard.ConstructorGuard
}

// NewBreakdown creates a validated Breakdown.
// Returns a validation error if the amounts do not reconcile exactly or the
// share list is empty.
func NewBreakdown(
	gross, factoringFee, serviceFee, net decimal.Decimal,
	shares []DriverShare,
) (Breakdown, error) {
	if len(shares) == 0 {
		return Breakdown{}, errs.NewValueIsRequiredError("driver shares")
	}

	if !gross.Sub(factoringFee).Sub(serviceFee).Equal(net) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("net amount",
			fmt.Errorf("%s - %s - %s does not equal %s", gross, factoringFee, serviceFee, net))
	}

	total := decimal.Zero
	for _, share := range shares {
		if err := share.DriverID.Validate(); err != nil {
			return Breakdown{}, err
		}
		total = total.Add(share.Net)
	}
	if !total.Equal(net) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("driver shares",
			fmt.Errorf("shares sum to %s, net is %s", total, net))
	}

	copied := make([]DriverShare, len(shares))
	copy(copied, shares)

	return Breakdown{
		gross:        gross,
		factoringFee: factoringFee,
		serviceFee:   serviceFee,
		net:          net,
		shares:       copied,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Breakdown was created through the constructor.
func (b Breakdown) Validate() error {
	return b.guard.Validate(ErrBreakdownIsNotConstructed)
}

// Gross returns the payout-basis gross amount.
func (b Breakdown) Gross() decimal.Decimal {
	return b.gross
}

// FactoringFee returns the factoring fee deducted from the gross.
func (b Breakdown) FactoringFee() decimal.Decimal {
	return b.factoringFee
}

// ServiceFee returns the flat service fee for the move.
func (b Breakdown) ServiceFee() decimal.Decimal {
	return b.serviceFee
}

// Net returns the amount owed to the drivers after all fees.
func (b Breakdown) Net() decimal.Decimal {
	return b.net
}

// Shares returns the per-driver shares in their stable ordering.
// The returned slice is a copy; mutating it does not affect the breakdown.
func (b Breakdown) Shares() []DriverShare {
	copied := make([]DriverShare, len(b.shares))
	copy(copied, b.shares)
	return copied
}

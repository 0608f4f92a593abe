package services

import (
	"fmt"

	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Classification buckets a mileage disagreement between the client's rate
// confirmation and the system's computed distance.
type Classification int

const (
	// ClassificationUnknown represents an invalid or undefined classification.
	ClassificationUnknown Classification = iota

	// ClassificationOK means the disagreement is within normal routing noise.
	ClassificationOK

	// ClassificationReview means the disagreement is notable and a dispatcher
	// should look at the paperwork.
	ClassificationReview

	// ClassificationFlagged means the disagreement is large enough to hold
	// the payout until resolved.
	ClassificationFlagged
)

// String returns the human-readable name of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationOK:
		return "OK"
	case ClassificationReview:
		return "Review"
	case ClassificationFlagged:
		return "Flagged"
	default:
		return "Unknown"
	}
}

// ClassifierConfig carries the percentage thresholds between classification
// buckets. Both are absolute percentages; the sign of the delta never
// matters.
type ClassifierConfig struct {
	// ReviewThresholdPct is the largest absolute delta percentage still
	// considered OK.
	ReviewThresholdPct decimal.Decimal
	// FlagThresholdPct is the largest absolute delta percentage still only
	// requiring review.
	FlagThresholdPct decimal.Decimal
}

// DefaultClassifierConfig returns the operation's standing thresholds:
// up to 2% is OK, up to 5% needs review, anything above is flagged.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ReviewThresholdPct: decimal.NewFromInt(2),
		FlagThresholdPct:   decimal.NewFromInt(5),
	}
}

// Validate checks the thresholds are positive and correctly ordered.
func (c ClassifierConfig) Validate() error {
	if !c.ReviewThresholdPct.IsPositive() || !c.FlagThresholdPct.IsPositive() {
		return errs.NewValueIsInvalidError("classifier thresholds must be greater than 0")
	}
	if c.ReviewThresholdPct.GreaterThanOrEqual(c.FlagThresholdPct) {
		return errs.NewValueIsInvalidErrorWithCause("classifier thresholds",
			fmt.Errorf("review threshold %s must be below flag threshold %s",
				c.ReviewThresholdPct, c.FlagThresholdPct))
	}
	return nil
}

// Classifier is a pure domain service that buckets reconciliation deltas.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(config ClassifierConfig) (Classifier, error) {
	if err := config.Validate(); err != nil {
		return Classifier{}, err
	}
	return Classifier{config: config}, nil
}

// Classify buckets the given delta percentage by its absolute value.
func (c Classifier) Classify(deltaPct decimal.Decimal) Classification {
	abs := deltaPct.Abs()
	switch {
	case abs.LessThanOrEqual(c.config.ReviewThresholdPct):
		return ClassificationOK
	case abs.LessThanOrEqual(c.config.FlagThresholdPct):
		return ClassificationReview
	default:
		return ClassificationFlagged
	}
}

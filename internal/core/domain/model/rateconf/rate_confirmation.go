package rateconf

import (
	"errors"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for rate confirmation operations.
var (
	// ErrRateConfirmationIsNotConstructed is returned when using an improperly
	// initialized RateConfirmation.
	ErrRateConfirmationIsNotConstructed = errors.New(
		"RateConfirmation must be created via NewRateConfirmation constructor")
	// ErrReferenceIsRequired is returned when ingesting a confirmation without
	// the client load number.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")
	// ErrReportedDistanceIsInvalid is returned when the reported distance is
	// not positive.
	ErrReportedDistanceIsInvalid = errs.NewValueIsInvalidError("reported distance must be greater than 0")
	// ErrReportedTotalIsInvalid is returned when the reported total payout is
	// negative.
	ErrReportedTotalIsInvalid = errs.NewValueIsInvalidError("reported total must not be negative")
	// ErrMatchedByIsRequired is returned when matching without recording who
	// performed the match.
	ErrMatchedByIsRequired = errs.NewValueIsRequiredError("matched by")
)

// RateConfirmation is the client's paperwork for one load: the load number,
// the distance the client billed for, and the agreed rate. It exists so the
// client's figures can be reconciled against the dispatch system's own
// computed distance for the same move.
//
// Business rules:
//   - Reference and a positive reported distance are mandatory at ingest
//   - A confirmation matches at most one move, and matching is irreversible
//   - The reported figures are never edited after ingest; they are the
//     client's claim, not the system's truth
type RateConfirmation struct {
	// id uniquely identifies the confirmation
	id kernel.UUID
	// reference is the client's load number printed on the paperwork
	reference string
	// reportedDistance is the distance the client billed for
	reportedDistance decimal.Decimal
	// reportedRate is the per-distance-unit rate on the paperwork
	reportedRate decimal.Decimal
	// reportedTotal is the payout figure on the paperwork
	reportedTotal decimal.Decimal
	// notes carries free-form remarks from the person who ingested it
	notes string
	// status is Unmatched until the confirmation is linked to a move
	status Status
	// matchedTo references the move this confirmation was matched against
	matchedTo *kernel.UUID
	// matchedBy records who performed the match
	matchedBy string
	// matchedAt records when the match happened
	matchedAt *time.Time
	// guard ensures the confirmation was properly constructed
	guard guard.ConstructorGuard
}

// NewRateConfirmation ingests a confirmation from client paperwork.
// It always starts Unmatched.
func NewRateConfirmation(
	id kernel.UUID,
	reference string,
	reportedDistance decimal.Decimal,
	reportedRate decimal.Decimal,
	reportedTotal decimal.Decimal,
	notes string,
) (*RateConfirmation, error) {
	rc := &RateConfirmation{
		notes:  notes,
		status: Unmatched,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rc.setID(id),
		rc.setReference(reference),
		rc.setReportedFigures(reportedDistance, reportedRate, reportedTotal),
	); err != nil {
		return nil, err
	}

	return rc, nil
}

// RestoreRateConfirmation reconstructs a RateConfirmation aggregate from
// persistent storage, including its match record.
func RestoreRateConfirmation(
	id kernel.UUID,
	reference string,
	reportedDistance decimal.Decimal,
	reportedRate decimal.Decimal,
	reportedTotal decimal.Decimal,
	notes string,
	status Status,
	matchedTo *kernel.UUID,
	matchedBy string,
	matchedAt *time.Time,
) (*RateConfirmation, error) {
	rc := &RateConfirmation{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rc.setID(id),
		rc.setReference(reference),
		rc.setReportedFigures(reportedDistance, reportedRate, reportedTotal),
		rc.setStatus(status),
	); err != nil {
		return nil, err
	}

	if status == Matched && matchedTo == nil {
		return nil, errs.NewValueIsRequiredError("matched move for a matched confirmation")
	}

	rc.matchedTo = matchedTo
	rc.matchedBy = matchedBy
	rc.matchedAt = matchedAt

	return rc, nil
}

// Validate ensures the RateConfirmation instance was properly constructed
// through a constructor.
func (rc *RateConfirmation) Validate() error {
	if rc == nil {
		return ErrRateConfirmationIsNotConstructed
	}
	return rc.guard.Validate(ErrRateConfirmationIsNotConstructed)
}

// IsEqual compares two confirmations by their unique identifiers.
func (rc *RateConfirmation) IsEqual(other *RateConfirmation) bool {
	return other != nil && rc.id.IsEqual(other.id)
}

// ID returns the confirmation's unique identifier.
func (rc *RateConfirmation) ID() kernel.UUID {
	return rc.id
}

// Reference returns the client's load number.
func (rc *RateConfirmation) Reference() string {
	return rc.reference
}

// ReportedDistance returns the distance the client billed for.
func (rc *RateConfirmation) ReportedDistance() decimal.Decimal {
	return rc.reportedDistance
}

// ReportedRate returns the per-distance-unit rate on the paperwork.
func (rc *RateConfirmation) ReportedRate() decimal.Decimal {
	return rc.reportedRate
}

// ReportedTotal returns the payout figure on the paperwork.
func (rc *RateConfirmation) ReportedTotal() decimal.Decimal {
	return rc.reportedTotal
}

// Notes returns the free-form remarks recorded at ingest.
func (rc *RateConfirmation) Notes() string {
	return rc.notes
}

// Status returns the current matching state.
func (rc *RateConfirmation) Status() Status {
	return rc.status
}

// MatchedTo returns the matched move's identifier, or nil while Unmatched.
func (rc *RateConfirmation) MatchedTo() *kernel.UUID {
	return rc.matchedTo
}

// MatchedBy returns who performed the match, or "" while Unmatched.
func (rc *RateConfirmation) MatchedBy() string {
	return rc.matchedBy
}

// MatchedAt returns when the match happened, or nil while Unmatched.
func (rc *RateConfirmation) MatchedAt() *time.Time {
	return rc.matchedAt
}

// Match links the confirmation to a move. Matching is one-shot: a second
// call returns AlreadyMatched regardless of the target move.
func (rc *RateConfirmation) Match(moveID kernel.UUID, matchedBy string, at time.Time) error {
	if rc.status == Matched {
		return errs.NewAlreadyMatchedError(rc.id.String(), rc.matchedTo.String())
	}

	if err := moveID.Validate(); err != nil {
		return err
	}
	if matchedBy == "" {
		return ErrMatchedByIsRequired
	}

	rc.status = Matched
	rc.matchedTo = &moveID
	rc.matchedBy = matchedBy
	rc.matchedAt = &at
	return nil
}

// setID validates and sets the confirmation's unique identifier.
func (rc *RateConfirmation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	rc.id = id
	return nil
}

// setReference validates and sets the client load number.
func (rc *RateConfirmation) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	rc.reference = reference
	return nil
}

// setReportedFigures validates and sets the client's reported figures.
func (rc *RateConfirmation) setReportedFigures(distance, rate, total decimal.Decimal) error {
	if !distance.IsPositive() {
		return ErrReportedDistanceIsInvalid
	}
	if total.IsNegative() {
		return ErrReportedTotalIsInvalid
	}
	rc.reportedDistance = distance
	rc.reportedRate = rate
	rc.reportedTotal = total
	return nil
}

// setStatus validates and sets the matching status during restoration.
func (rc *RateConfirmation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	rc.status = status
	return nil
}

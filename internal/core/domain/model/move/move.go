package move

import (
	"errors"
	"fmt"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/payment"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for move operations.
var (
	// ErrMoveIsNotConstructed is returned when a Move instance was not created
	// through one of the constructor functions.
	ErrMoveIsNotConstructed = errors.New("Move must be created via NewMove or NewAssignedMove constructor")
	// ErrTrailersMustDiffer is returned when the new and old trailer are the same unit.
	ErrTrailersMustDiffer = errors.New("new and old trailer must be different units")
	// ErrDriversAreRequired is returned when assigning a move without drivers.
	ErrDriversAreRequired = errs.NewValueIsRequiredError("drivers")
	// ErrScheduledDateIsRequired is returned when creating a move without a scheduled date.
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduled date")
	// ErrDistanceIsInvalid is returned when completing a move with a non-positive distance.
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distance must be greater than 0")
)

// Move is the central aggregate of the dispatch domain: one trailer-swap job.
// It references exactly one "new" trailer (hauled out from the yard), one
// "old" trailer (picked up at the swap point), and one or more drivers, and
// progresses through the Pending/Assigned/InProgress/Completed/Cancelled
// state machine.
//
// Move follows these invariants:
//   - A Pending move holds no resources; an Assigned or later move holds
//     both trailers and at least one driver
//   - The two trailer references are always distinct
//   - Status transitions only through the methods on this type
//   - Distance and the payment breakdown exist exactly when the move is
//     Completed
//   - At most one rate confirmation is ever reconciled against a move
//
// Terminal moves are retained for audit and never physically deleted.
type Move struct {
	// id is the unique identifier for the move
	id kernel.UUID

	// newTrailerID references the trailer hauled out to the swap point
	// (nil while the move is Pending)
	newTrailerID *kernel.UUID

	// oldTrailerID references the trailer brought back from the swap point
	// (nil while the move is Pending)
	oldTrailerID *kernel.UUID

	// driverIDs are the assigned drivers in the stable payout ordering
	driverIDs []kernel.UUID

	// origin is where the swap run starts
	origin kernel.Location

	// destination is the swap point where the trailers change places
	destination kernel.Location

	// scheduledDate is the date the move is planned to run
	scheduledDate time.Time

	// distance is the computed distance of the run, set on completion
	distance *decimal.Decimal

	// breakdown is the payment record, set on completion
	breakdown *payment.Breakdown

	// reportedDelta is reported minus computed distance, set when a rate
	// confirmation is matched
	reportedDelta *decimal.Decimal

	// reportedDeltaPct is the delta as a percentage of the computed distance
	reportedDeltaPct *decimal.Decimal

	// cancelReason records why a cancelled move was abandoned
	cancelReason string

	// status is the current state in the move lifecycle
	status Status

	// guard ensures the move was created via a constructor
	guard guard.ConstructorGuard
}

// NewMove creates a move with no resources attached, in Pending status.
// This is the degenerate creation used when a run is posted for driver
// self-assignment: trailers and drivers are claimed later via AssignResources.
func NewMove(
	id kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	scheduledDate time.Time,
) (*Move, error) {
	m := &Move{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRoute(origin, destination),
		m.setScheduledDate(scheduledDate),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// NewAssignedMove creates a move with its full resource set, directly in
// Assigned status. The caller must have claimed the trailers and drivers in
// the same transaction; a claim failure means this constructor is never
// reached and no move exists.
func NewAssignedMove(
	id kernel.UUID,
	newTrailerID kernel.UUID,
	oldTrailerID kernel.UUID,
	driverIDs []kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	scheduledDate time.Time,
) (*Move, error) {
	m := &Move{
		status: Assigned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRoute(origin, destination),
		m.setScheduledDate(scheduledDate),
		m.setResources(newTrailerID, oldTrailerID, driverIDs),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMove reconstructs a Move aggregate from persistent storage,
// including terminal state, payment and reconciliation data. The restored
// move behaves identically to one built through normal domain operations.
func RestoreMove(
	id kernel.UUID,
	newTrailerID *kernel.UUID,
	oldTrailerID *kernel.UUID,
	driverIDs []kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	scheduledDate time.Time,
	status Status,
	distance *decimal.Decimal,
	breakdown *payment.Breakdown,
	reportedDelta *decimal.Decimal,
	reportedDeltaPct *decimal.Decimal,
	cancelReason string,
) (*Move, error) {
	m := &Move{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRoute(origin, destination),
		m.setScheduledDate(scheduledDate),
		m.setStatus(status),
	); err != nil {
		return nil, err
	}

	if newTrailerID != nil && oldTrailerID != nil {
		if err := m.setResources(*newTrailerID, *oldTrailerID, driverIDs); err != nil {
			return nil, err
		}
	} else if err := status.validateCanHaveResources(false); err != nil {
		return nil, err
	}

	m.distance = distance
	m.breakdown = breakdown
	m.reportedDelta = reportedDelta
	m.reportedDeltaPct = reportedDeltaPct
	m.cancelReason = cancelReason

	return m, nil
}

// validateCanHaveResources enforces consistency between status and resource
// presence: only a Pending or Cancelled move may be without resources.
func (s Status) validateCanHaveResources(hasResources bool) error {
	if !hasResources && s != Pending && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status for a move without resources", s.String()))
	}
	return nil
}

// Validate ensures the Move instance was properly constructed through a constructor.
func (m *Move) Validate() error {
	if m == nil {
		return ErrMoveIsNotConstructed
	}
	return m.guard.Validate(ErrMoveIsNotConstructed)
}

// IsEqual compares two moves by their unique identifiers.
func (m *Move) IsEqual(other *Move) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the move's unique identifier.
func (m *Move) ID() kernel.UUID {
	return m.id
}

// NewTrailerID returns the outbound trailer reference, or nil while Pending.
func (m *Move) NewTrailerID() *kernel.UUID {
	return m.newTrailerID
}

// OldTrailerID returns the inbound trailer reference, or nil while Pending.
func (m *Move) OldTrailerID() *kernel.UUID {
	return m.oldTrailerID
}

// DriverIDs returns the assigned drivers in the stable payout ordering.
// The returned slice is a copy.
func (m *Move) DriverIDs() []kernel.UUID {
	copied := make([]kernel.UUID, len(m.driverIDs))
	copy(copied, m.driverIDs)
	return copied
}

// Origin returns where the swap run starts.
func (m *Move) Origin() kernel.Location {
	return m.origin
}

// Destination returns the swap point of the run.
func (m *Move) Destination() kernel.Location {
	return m.destination
}

// ScheduledDate returns the date the move is planned to run.
func (m *Move) ScheduledDate() time.Time {
	return m.scheduledDate
}

// Status returns the current status of the move.
func (m *Move) Status() Status {
	return m.status
}

// Distance returns the computed distance, or nil before completion.
func (m *Move) Distance() *decimal.Decimal {
	return m.distance
}

// Breakdown returns the payment record, or nil before completion.
func (m *Move) Breakdown() *payment.Breakdown {
	return m.breakdown
}

// ReportedDelta returns reported minus computed distance, or nil while the
// move has no matched rate confirmation.
func (m *Move) ReportedDelta() *decimal.Decimal {
	return m.reportedDelta
}

// ReportedDeltaPct returns the delta as a percentage of the computed
// distance, or nil while the move has no matched rate confirmation.
func (m *Move) ReportedDeltaPct() *decimal.Decimal {
	return m.reportedDeltaPct
}

// CancelReason returns why a cancelled move was abandoned.
func (m *Move) CancelReason() string {
	return m.cancelReason
}

// HasReconciliation reports whether a rate confirmation has been matched
// against this move.
func (m *Move) HasReconciliation() bool {
	return m.reportedDelta != nil
}

// AssignResources attaches the claimed resource set to a Pending move and
// transitions it to Assigned. The caller claims the trailers and drivers in
// the same transaction.
func (m *Move) AssignResources(newTrailerID, oldTrailerID kernel.UUID, driverIDs []kernel.UUID) error {
	newStatus, ok := m.status.Assign()
	if !ok {
		return errs.NewInvalidTransitionError(m.id.String(), m.status.String(), Assigned.String())
	}

	if err := m.setResources(newTrailerID, oldTrailerID, driverIDs); err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// Start marks the move as under way. Only an Assigned move can start.
func (m *Move) Start() error {
	newStatus, ok := m.status.Start()
	if !ok {
		return errs.NewInvalidTransitionError(m.id.String(), m.status.String(), InProgress.String())
	}

	m.status = newStatus
	return nil
}

// Complete finishes the move with its computed distance and payment record.
// Only an InProgress move can complete; the distance must be positive and
// the breakdown must be a constructed value.
//
// Releasing the claimed resources is the caller's job and happens in the
// same transaction so a failure leaves the move InProgress with everything
// still held.
func (m *Move) Complete(distance decimal.Decimal, breakdown payment.Breakdown) error {
	if _, ok := m.status.Complete(); !ok {
		return errs.NewInvalidTransitionError(m.id.String(), m.status.String(), Completed.String())
	}

	if !distance.IsPositive() {
		return ErrDistanceIsInvalid
	}
	if err := breakdown.Validate(); err != nil {
		return err
	}

	m.status = Completed
	m.distance = &distance
	m.breakdown = &breakdown
	return nil
}

// Cancel abandons the move with the given reason. Legal from any
// non-terminal state; a second cancel returns InvalidTransition.
func (m *Move) Cancel(reason string) error {
	newStatus, ok := m.status.Cancel()
	if !ok {
		return errs.NewInvalidTransitionError(m.id.String(), m.status.String(), Cancelled.String())
	}

	m.status = newStatus
	m.cancelReason = reason
	return nil
}

// RecordReconciliation stores the mileage disagreement computed when a rate
// confirmation is matched against this move. A move accepts at most one
// reconciliation; a second call returns AlreadyMatched.
func (m *Move) RecordReconciliation(delta, deltaPct decimal.Decimal) error {
	if m.HasReconciliation() {
		return errs.NewAlreadyMatchedError("", m.id.String())
	}

	m.reportedDelta = &delta
	m.reportedDeltaPct = &deltaPct
	return nil
}

// setID validates and sets the move's unique identifier.
func (m *Move) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setRoute validates and sets the origin and destination.
func (m *Move) setRoute(origin, destination kernel.Location) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	m.origin = origin
	m.destination = destination
	return nil
}

// setStatus validates and sets the lifecycle status.
func (m *Move) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

// setScheduledDate validates and sets the planned run date.
func (m *Move) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}
	m.scheduledDate = scheduledDate
	return nil
}

// setResources validates and sets the full resource set.
func (m *Move) setResources(newTrailerID, oldTrailerID kernel.UUID, driverIDs []kernel.UUID) error {
	if err := errors.Join(newTrailerID.Validate(), oldTrailerID.Validate()); err != nil {
		return err
	}
	if newTrailerID.IsEqual(oldTrailerID) {
		return ErrTrailersMustDiffer
	}
	if len(driverIDs) == 0 {
		return ErrDriversAreRequired
	}
	for _, driverID := range driverIDs {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	m.newTrailerID = &newTrailerID
	m.oldTrailerID = &oldTrailerID
	m.driverIDs = make([]kernel.UUID, len(driverIDs))
	copy(m.driverIDs, driverIDs)
	return nil
}

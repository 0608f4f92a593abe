package move

import (
	"fmt"

	"swapdispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a move.
// It implements a state machine with defined transitions to ensure moves
// follow the correct dispatch workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a move created without resources,
	// waiting for a driver to self-assign.
	Pending

	// Assigned means the move has claimed both trailers and its drivers.
	Assigned

	// InProgress means the driver has departed and the swap is under way.
	InProgress

	// Completed means the swap finished: resources released, payment computed.
	// This is a terminal state.
	Completed

	// Cancelled means the move was abandoned and any claimed resources were
	// released. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Assigned, InProgress, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state.
// Resources referenced by a move in a terminal state are no longer held.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
func (s Status) Assign() (Status, bool) {
	if s != Pending {
		return 0, false
	}
	return Assigned, true
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, bool) {
	if s != Assigned {
		return 0, false
	}
	return InProgress, true
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
func (s Status) Complete() (Status, bool) {
	if s != InProgress {
		return 0, false
	}
	return Completed, true
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, bool) {
	if s != Pending && s != Assigned && s != InProgress {
		return 0, false
	}
	return Cancelled, true
}

package trailer

import (
	"fmt"

	"swapdispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a trailer on the yard network.
// It implements a state machine with defined transitions so that a trailer
// can never be handed to two moves at once.
//
// State transitions:
//
//	Available ──> Claimed ──> InTransit
//	    ^            │            │
//	    └────────────┴────────────┘
//	         (release on move completion or cancellation)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the trailer is parked and free to be claimed by a move.
	Available

	// Claimed means the trailer is reserved by an active move but has not
	// left its current location yet.
	Claimed

	// InTransit means the trailer is being hauled by a move in progress.
	InTransit
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Claimed:   "Claimed",
		InTransit: "InTransit",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Claimed:   "Claimed",
		InTransit: "InTransit",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, Claimed, InTransit.
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

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - Available -> Claimed
//
// Returns (0, error) if the trailer is already claimed, in transit, or the
// status is invalid.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}

	return Claimed, nil
}

// Start transitions the status to InTransit.
//
// Valid transitions:
//   - Claimed -> InTransit
//
// Returns (0, error) if the trailer was not claimed first.
func (s Status) Start() (Status, error) {
	if s != Claimed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return InTransit, nil
}

// Release transitions the status back to Available.
//
// Valid transitions:
//   - Claimed -> Available (move cancelled before departure)
//   - InTransit -> Available (move completed or cancelled en route)
//
// Returns (0, error) if the trailer was not held by a move.
func (s Status) Release() (Status, error) {
	if s != Claimed && s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Available, nil
}

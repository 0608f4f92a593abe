package rateconf

import (
	"fmt"

	"swapdispatch/internal/pkg/errs"
)

// Status represents the matching state of a rate confirmation.
//
// State transitions:
//
//	Unmatched ──> Matched
//
// Matched is terminal; a confirmation is never unlinked from its move.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unmatched means the confirmation has been ingested but not yet linked
	// to a move.
	Unmatched

	// Matched means the confirmation is linked to exactly one move.
	// This is a terminal state.
	Matched
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Unmatched: "Unmatched",
		Matched:   "Matched",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unmatched: "Unmatched",
		Matched:   "Matched",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Unmatched, Matched.
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

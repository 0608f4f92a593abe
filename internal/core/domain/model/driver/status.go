package driver

import (
	"fmt"

	"swapdispatch/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// State transitions:
//
//	Available ──> OnTrip ──> Available
//
// A driver is claimed by at most one active move at a time; the claim flips
// the driver to OnTrip and the terminal move transition flips them back.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the driver can be assigned to a move.
	Available

	// OnTrip means the driver is claimed by an active move.
	OnTrip
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		OnTrip:    "OnTrip",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		OnTrip:    "OnTrip",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Claim transitions the status to OnTrip. Only an Available driver can be claimed.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}

	return OnTrip, nil
}

// Release transitions the status back to Available when the driver's move
// reaches a terminal state.
func (s Status) Release() (Status, error) {
	if s != OnTrip {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Available, nil
}

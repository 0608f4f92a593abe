package kernel

import (
	"fmt"
	"strings"

	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"
)

// locationMaxLength bounds the stored place name; anything longer is almost
// certainly a paste error, not a facility name.
const locationMaxLength = 120

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using the NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a named place in the dispatch network, such as a yard,
// a client facility, or a swap point ("Fleet Memphis", "FedEx Indy").
// It is an immutable value object: the name is trimmed on construction and
// must be non-empty. The zero value of Location is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Fleet Memphis")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: Fleet Memphis
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location from a place name.
// The name is trimmed of surrounding whitespace and must be non-empty and at
// most 120 characters after trimming.
//
// Returns:
//   - Location: A valid location instance
//   - error: Validation error if the name is empty or too long
func NewLocation(name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setName(name); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Name returns the place name of the location.
func (l Location) Name() string {
	return l.name
}

// String returns the place name. Implements fmt.Stringer.
func (l Location) String() string {
	return l.name
}

// IsEqual compares two locations for equality.
// Two locations are considered equal if they carry the same name, compared
// case-insensitively ("fleet memphis" and "Fleet Memphis" are the same yard).
// Both locations must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if locations are equal, false otherwise
//   - error: Validation error if either location is improperly constructed
func (l Location) IsEqual(other Location) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return strings.EqualFold(l.name, other.name), nil
}

// setName sets the place name with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	if len(name) > locationMaxLength {
		return errs.NewValueIsInvalidErrorWithCause("location name",
			fmt.Errorf("%d characters exceeds the maximum of %d", len(name), locationMaxLength))
	}

	l.name = name
	return nil
}

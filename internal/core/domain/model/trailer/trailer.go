package trailer

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"
)

// Domain errors for trailer operations.
var (
	// ErrNumberIsRequired is returned when attempting to create a trailer without a unit number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("trailer number")
	// ErrTrailerIsNotConstructed is returned when using an improperly initialized Trailer.
	ErrTrailerIsNotConstructed = errors.New("Trailer must be created via NewTrailer constructor")
	// ErrTrailerIsRetired is returned when a retired trailer is claimed or moved.
	ErrTrailerIsRetired = errors.New("trailer is retired")
)

// Trailer represents one physical trailer in the fleet.
// It is an aggregate root owned by the resource registry: intake creates it,
// the move lifecycle engine is the only writer of its status and location,
// and it is never physically deleted (retirement is a soft flag).
//
// Business rules:
//   - Must have a valid UUID, a non-empty unit number, and a valid location
//   - Status transitions follow the Available/Claimed/InTransit machine
//   - A retired trailer can never be claimed again
//   - The "new" vs "old" role in a swap is contextual to the move, not a
//     property of the trailer itself
type Trailer struct {
	// id uniquely identifies the trailer
	id kernel.UUID
	// number is the human-readable unit number painted on the trailer, e.g. "TR-100"
	number string
	// location is the place where the trailer currently sits (or last departed)
	location kernel.Location
	// status is the current state in the claim lifecycle
	status Status
	// retired marks the trailer as removed from service without deleting it
	retired bool
	// guard ensures the trailer was properly constructed
	guard guard.ConstructorGuard
}

// NewTrailer creates a new Trailer entering service at the given location.
// This is the only way to create a valid Trailer for intake; it always starts
// Available and in service.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - number: Unit number (must be non-empty)
//   - location: Where the trailer currently sits (must be valid location)
//
// Returns the created trailer, or a validation error aggregating every
// invalid parameter.
func NewTrailer(id kernel.UUID, number string, location kernel.Location) (*Trailer, error) {
	trailer := &Trailer{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trailer.setID(id),
		trailer.setNumber(number),
		trailer.setLocation(location),
	); err != nil {
		return nil, err
	}

	return trailer, nil
}

// RestoreTrailer reconstructs a Trailer aggregate from persistent storage,
// including its persisted status and retirement flag. The restored trailer
// behaves identically to one created through normal domain operations.
func RestoreTrailer(
	id kernel.UUID,
	number string,
	location kernel.Location,
	status Status,
	retired bool,
) (*Trailer, error) {
	trailer := &Trailer{
		retired: retired,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trailer.setID(id),
		trailer.setNumber(number),
		trailer.setLocation(location),
		trailer.setStatus(status),
	); err != nil {
		return nil, err
	}

	return trailer, nil
}

// Validate ensures the Trailer instance was properly constructed through a constructor.
func (t *Trailer) Validate() error {
	if t == nil {
		return ErrTrailerIsNotConstructed
	}
	return t.guard.Validate(ErrTrailerIsNotConstructed)
}

// IsEqual compares two trailers by their unique identifiers.
func (t *Trailer) IsEqual(other *Trailer) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trailer's unique identifier.
func (t *Trailer) ID() kernel.UUID {
	return t.id
}

// Number returns the trailer's unit number.
func (t *Trailer) Number() string {
	return t.number
}

// Location returns the trailer's current location.
func (t *Trailer) Location() kernel.Location {
	return t.location
}

// Status returns the current status of the trailer.
func (t *Trailer) Status() Status {
	return t.status
}

// IsRetired reports whether the trailer has been soft-retired from service.
func (t *Trailer) IsRetired() bool {
	return t.retired
}

// Claim reserves the trailer for a move.
// Fails if the trailer is retired or not currently Available.
func (t *Trailer) Claim() error {
	if t.retired {
		return ErrTrailerIsRetired
	}

	newStatus, err := t.status.Claim()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Start marks the trailer as in transit. Only a Claimed trailer can depart.
func (t *Trailer) Start() error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Release returns the trailer to the Available pool at the given location.
// A completed swap drops the trailer at the move's destination; a cancelled
// move releases it where it already sits (pass the current location).
func (t *Trailer) Release(at kernel.Location) error {
	if err := at.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.Release()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.location = at
	return nil
}

// Retire removes the trailer from service without deleting it.
// Only an Available trailer can be retired; a trailer held by an active move
// must be released first.
func (t *Trailer) Retire() error {
	if t.status != Available {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New(t.status.String()+" trailer cannot be retired"))
	}

	t.retired = true
	return nil
}

// setID validates and sets the trailer's unique identifier.
func (t *Trailer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setNumber validates and sets the trailer's unit number.
func (t *Trailer) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	t.number = number
	return nil
}

// setLocation validates and sets the trailer's current location.
func (t *Trailer) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.location = location
	return nil
}

// setStatus validates and sets the trailer's status during restoration.
func (t *Trailer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

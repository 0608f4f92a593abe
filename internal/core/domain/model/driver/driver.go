package driver

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a driver who performs trailer swaps.
// It is an aggregate root owned by the resource registry; the move lifecycle
// engine is the only writer of its availability status.
//
// The contractor flag distinguishes owner-operators from company drivers:
// contractors are paid the full net of the billed amount, company drivers a
// configured share of gross. The flag selects the default payout mode when a
// move completes; the calculator itself takes the mode as an explicit input.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's display name
	name string
	// status is the current availability state
	status Status
	// contractor marks owner-operators paid on the full-net mode
	contractor bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver entering the pool as Available.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - contractor: Whether the driver is an owner-operator
//
// Returns the created driver, or a validation error aggregating every
// invalid parameter.
func NewDriver(id kernel.UUID, name string, contractor bool) (*Driver, error) {
	driver := &Driver{
		status:     Available,
		contractor: contractor,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage with
// its persisted availability status.
func RestoreDriver(id kernel.UUID, name string, status Status, contractor bool) (*Driver, error) {
	driver := &Driver{
		contractor: contractor,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setStatus(status),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the driver's current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// IsContractor reports whether the driver is an owner-operator.
func (d *Driver) IsContractor() bool {
	return d.contractor
}

// Claim reserves the driver for a move. Fails unless the driver is Available.
func (d *Driver) Claim() error {
	newStatus, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Release returns the driver to the Available pool.
func (d *Driver) Release() error {
	newStatus, err := d.status.Release()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// setID validates and sets the driver's unique identifier.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setName validates and sets the driver's display name.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

// setStatus validates and sets the driver's status during restoration.
func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

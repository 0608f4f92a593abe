package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// RegisterDriverCommand represents a request to add a driver to the roster.
// The contractor flag decides the driver's default payout mode: contractors
// are paid full net, company drivers a share of gross.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	name       string
	contractor bool

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Validates that the driver ID is valid and the name is not empty.
func NewRegisterDriverCommand(driverID kernel.UUID, name string, contractor bool) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		contractor: contractor,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// IsContractor reports whether the driver is an owner-operator.
func (c RegisterDriverCommand) IsContractor() bool {
	return c.contractor
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrRegisterTrailerCommandIsNotConstructed = errors.New(
		"RegisterTrailerCommand must be created via NewRegisterTrailerCommand constructor",
	)
	ErrTrailerNumberIsRequired   = errors.New("trailer number is required")
	ErrTrailerLocationIsRequired = errors.New("trailer location is required")
)

// RegisterTrailerCommand represents a request to bring a trailer into the
// fleet. The trailer enters service Available at the given location.
type RegisterTrailerCommand struct { //nolint:recvcheck //using for validation
	trailerID kernel.UUID
	number    string
	location  string

	guard guard.ConstructorGuard
}

// NewRegisterTrailerCommand creates a command to register a new trailer.
// Validates that the trailer ID is valid and the unit number and location
// are not empty.
func NewRegisterTrailerCommand(trailerID kernel.UUID, number, location string) (RegisterTrailerCommand, error) {
	command := RegisterTrailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrailerID(trailerID),
		command.setNumber(number),
		command.setLocation(location),
	); err != nil {
		return RegisterTrailerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTrailerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTrailerCommandIsNotConstructed)
}

// TrailerID returns the unique identifier for the trailer.
func (c RegisterTrailerCommand) TrailerID() kernel.UUID {
	return c.trailerID
}

// Number returns the trailer's unit number.
func (c RegisterTrailerCommand) Number() string {
	return c.number
}

// Location returns the name of the place where the trailer enters service.
func (c RegisterTrailerCommand) Location() string {
	return c.location
}

func (c *RegisterTrailerCommand) setTrailerID(trailerID kernel.UUID) error {
	if err := trailerID.Validate(); err != nil {
		return err
	}

	c.trailerID = trailerID
	return nil
}

func (c *RegisterTrailerCommand) setNumber(number string) error {
	if number == "" {
		return ErrTrailerNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *RegisterTrailerCommand) setLocation(location string) error {
	if location == "" {
		return ErrTrailerLocationIsRequired
	}

	c.location = location
	return nil
}

package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var ErrStartMoveCommandIsNotConstructed = errors.New(
	"StartMoveCommand must be created via NewStartMoveCommand constructor",
)

// StartMoveCommand represents a request to mark an Assigned move as under
// way: the driver has departed and both trailers go InTransit.
type StartMoveCommand struct { //nolint:recvcheck //using for validation
	moveID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartMoveCommand creates a command to start a move.
func NewStartMoveCommand(moveID kernel.UUID) (StartMoveCommand, error) {
	command := StartMoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMoveID(moveID); err != nil {
		return StartMoveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartMoveCommand) Validate() error {
	return c.guard.Validate(ErrStartMoveCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c StartMoveCommand) MoveID() kernel.UUID {
	return c.moveID
}

func (c *StartMoveCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

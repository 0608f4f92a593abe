package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrCancelMoveCommandIsNotConstructed = errors.New(
		"CancelMoveCommand must be created via NewCancelMoveCommand constructor",
	)
	ErrCancelReasonIsRequired = errors.New("cancel reason is required")
)

// CancelMoveCommand represents a request to abandon a move. Legal from any
// non-terminal state; claimed resources are released where they sit.
type CancelMoveCommand struct { //nolint:recvcheck //using for validation
	moveID kernel.UUID
	reason string

	guard guard.ConstructorGuard
}

// NewCancelMoveCommand creates a command to cancel a move with the given reason.
func NewCancelMoveCommand(moveID kernel.UUID, reason string) (CancelMoveCommand, error) {
	command := CancelMoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoveID(moveID),
		command.setReason(reason),
	); err != nil {
		return CancelMoveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelMoveCommand) Validate() error {
	return c.guard.Validate(ErrCancelMoveCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c CancelMoveCommand) MoveID() kernel.UUID {
	return c.moveID
}

// Reason returns why the move is being abandoned.
func (c CancelMoveCommand) Reason() string {
	return c.reason
}

func (c *CancelMoveCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *CancelMoveCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	c.reason = reason
	return nil
}

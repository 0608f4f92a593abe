package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/payment"
	"swapdispatch/internal/pkg/errs"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCompleteMoveCommandIsNotConstructed = errors.New(
	"CompleteMoveCommand must be created via NewCompleteMoveCommand constructor",
)

// CompleteMoveCommand represents a request to finish an InProgress move.
// Completion computes the distance and the payment breakdown and releases
// every claimed resource; the payout mode is an explicit input, never
// inferred from the amounts. An optional actual-distance override skips the
// distance provider, for runs where the odometer disagrees with the lane.
type CompleteMoveCommand struct { //nolint:recvcheck //using for validation
	moveID           kernel.UUID
	mode             payment.Mode
	distanceOverride *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCompleteMoveCommand creates a command to complete a move with the given
// payout mode. distanceOverride may be nil; when set it must be positive and
// is used in place of the provider's lane distance.
func NewCompleteMoveCommand(
	moveID kernel.UUID,
	mode payment.Mode,
	distanceOverride *decimal.Decimal,
) (CompleteMoveCommand, error) {
	command := CompleteMoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoveID(moveID),
		command.setMode(mode),
		command.setDistanceOverride(distanceOverride),
	); err != nil {
		return CompleteMoveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteMoveCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMoveCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c CompleteMoveCommand) MoveID() kernel.UUID {
	return c.moveID
}

// Mode returns the payout mode to price the move with.
func (c CompleteMoveCommand) Mode() payment.Mode {
	return c.mode
}

// DistanceOverride returns the caller-supplied actual distance, or nil when
// the distance provider should resolve it.
func (c CompleteMoveCommand) DistanceOverride() *decimal.Decimal {
	if c.distanceOverride == nil {
		return nil
	}
	override := *c.distanceOverride
	return &override
}

func (c *CompleteMoveCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *CompleteMoveCommand) setMode(mode payment.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CompleteMoveCommand) setDistanceOverride(override *decimal.Decimal) error {
	if override == nil {
		return nil
	}
	if !override.IsPositive() {
		return errs.NewValueIsInvalidError("distance override must be greater than 0")
	}

	value := *override
	c.distanceOverride = &value
	return nil
}

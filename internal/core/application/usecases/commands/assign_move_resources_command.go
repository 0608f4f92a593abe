package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrAssignMoveResourcesCommandIsNotConstructed = errors.New(
		"AssignMoveResourcesCommand must be created via NewAssignMoveResourcesCommand constructor",
	)
	ErrDriversAreRequired = errors.New("at least one driver is required")
	ErrTrailersMustDiffer = errors.New("new and old trailer must be different units")
)

// AssignMoveResourcesCommand represents a request to claim a full resource
// set for a Pending move: both trailers and at least one driver. Claiming is
// all-or-nothing; a single held resource fails the whole command.
type AssignMoveResourcesCommand struct { //nolint:recvcheck //using for validation
	moveID       kernel.UUID
	newTrailerID kernel.UUID
	oldTrailerID kernel.UUID
	driverIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignMoveResourcesCommand creates a command to claim resources for a move.
// Validates that every identifier is valid, the trailers are distinct and at
// least one driver is listed.
func NewAssignMoveResourcesCommand(
	moveID kernel.UUID,
	newTrailerID kernel.UUID,
	oldTrailerID kernel.UUID,
	driverIDs []kernel.UUID,
) (AssignMoveResourcesCommand, error) {
	command := AssignMoveResourcesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoveID(moveID),
		command.setTrailerIDs(newTrailerID, oldTrailerID),
		command.setDriverIDs(driverIDs),
	); err != nil {
		return AssignMoveResourcesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignMoveResourcesCommand) Validate() error {
	return c.guard.Validate(ErrAssignMoveResourcesCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c AssignMoveResourcesCommand) MoveID() kernel.UUID {
	return c.moveID
}

// NewTrailerID returns the trailer to haul out to the swap point.
func (c AssignMoveResourcesCommand) NewTrailerID() kernel.UUID {
	return c.newTrailerID
}

// OldTrailerID returns the trailer to bring back from the swap point.
func (c AssignMoveResourcesCommand) OldTrailerID() kernel.UUID {
	return c.oldTrailerID
}

// DriverIDs returns the drivers to claim, in payout order.
func (c AssignMoveResourcesCommand) DriverIDs() []kernel.UUID {
	copied := make([]kernel.UUID, len(c.driverIDs))
	copy(copied, c.driverIDs)
	return copied
}

func (c *AssignMoveResourcesCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *AssignMoveResourcesCommand) setTrailerIDs(newTrailerID, oldTrailerID kernel.UUID) error {
	if err := errors.Join(newTrailerID.Validate(), oldTrailerID.Validate()); err != nil {
		return err
	}
	if newTrailerID.IsEqual(oldTrailerID) {
		return ErrTrailersMustDiffer
	}

	c.newTrailerID = newTrailerID
	c.oldTrailerID = oldTrailerID
	return nil
}

func (c *AssignMoveResourcesCommand) setDriverIDs(driverIDs []kernel.UUID) error {
	if len(driverIDs) == 0 {
		return ErrDriversAreRequired
	}
	for _, driverID := range driverIDs {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverIDs = make([]kernel.UUID, len(driverIDs))
	copy(c.driverIDs, driverIDs)
	return nil
}

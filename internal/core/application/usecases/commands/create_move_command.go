package commands

import (
	"errors"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrCreateMoveCommandIsNotConstructed = errors.New(
		"CreateMoveCommand must be created via NewCreateMoveCommand constructor",
	)
	ErrOriginIsRequired        = errors.New("origin is required")
	ErrDestinationIsRequired   = errors.New("destination is required")
	ErrScheduledDateIsRequired = errors.New("scheduled date is required")
)

// MoveResources names a full resource set: both trailers and the drivers in
// payout order.
type MoveResources struct {
	NewTrailerID kernel.UUID
	OldTrailerID kernel.UUID
	DriverIDs    []kernel.UUID
}

// CreateMoveCommand represents a request to post a new swap run.
// Without resources the move is created Pending and trailers and drivers are
// claimed later via AssignMoveResourcesCommand. With resources the claim
// happens in the same transaction as the creation: the move is born Assigned,
// and if any resource is held nothing is created at all.
//
// Example:
//
//	moveID := kernel.NewUUID()
//	cmd, err := NewCreateMoveCommand(moveID, "Fleet Memphis", "FedEx Indy", date, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid move data: %w", err)
//	}
//
//	handler := NewCreateMoveCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create move: %w", err)
//	}
type CreateMoveCommand struct { //nolint:recvcheck //using for validation
	moveID        kernel.UUID
	origin        string
	destination   string
	scheduledDate time.Time
	resources     *MoveResources

	guard guard.ConstructorGuard
}

// NewCreateMoveCommand creates a command to post a new swap run.
// Validates that the move ID is valid, both endpoints are named and the
// scheduled date is set. Resources are optional; when given, every identifier
// must be valid, the trailers distinct and at least one driver listed.
func NewCreateMoveCommand(
	moveID kernel.UUID,
	origin string,
	destination string,
	scheduledDate time.Time,
	resources *MoveResources,
) (CreateMoveCommand, error) {
	command := CreateMoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoveID(moveID),
		command.setOrigin(origin),
		command.setDestination(destination),
		command.setScheduledDate(scheduledDate),
		command.setResources(resources),
	); err != nil {
		return CreateMoveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMoveCommand) Validate() error {
	return c.guard.Validate(ErrCreateMoveCommandIsNotConstructed)
}

// MoveID returns the unique identifier for the move.
func (c CreateMoveCommand) MoveID() kernel.UUID {
	return c.moveID
}

// Origin returns the name of the place where the run starts.
func (c CreateMoveCommand) Origin() string {
	return c.origin
}

// Destination returns the name of the swap point.
func (c CreateMoveCommand) Destination() string {
	return c.destination
}

// ScheduledDate returns the date the run is planned for.
func (c CreateMoveCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// Resources returns the resource set to claim at creation time, or nil when
// the move is to be created Pending.
func (c CreateMoveCommand) Resources() *MoveResources {
	if c.resources == nil {
		return nil
	}

	copied := MoveResources{
		NewTrailerID: c.resources.NewTrailerID,
		OldTrailerID: c.resources.OldTrailerID,
		DriverIDs:    make([]kernel.UUID, len(c.resources.DriverIDs)),
	}
	copy(copied.DriverIDs, c.resources.DriverIDs)
	return &copied
}

func (c *CreateMoveCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *CreateMoveCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *CreateMoveCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateMoveCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateMoveCommand) setResources(resources *MoveResources) error {
	if resources == nil {
		return nil
	}

	if err := errors.Join(
		resources.NewTrailerID.Validate(),
		resources.OldTrailerID.Validate(),
	); err != nil {
		return err
	}
	if resources.NewTrailerID.IsEqual(resources.OldTrailerID) {
		return ErrTrailersMustDiffer
	}
	if len(resources.DriverIDs) == 0 {
		return ErrDriversAreRequired
	}
	for _, driverID := range resources.DriverIDs {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	copied := MoveResources{
		NewTrailerID: resources.NewTrailerID,
		OldTrailerID: resources.OldTrailerID,
		DriverIDs:    make([]kernel.UUID, len(resources.DriverIDs)),
	}
	copy(copied.DriverIDs, resources.DriverIDs)
	c.resources = &copied
	return nil
}

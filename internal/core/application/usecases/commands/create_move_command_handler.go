package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/services"
)

// CreateMoveCommandHandler handles the business logic for posting swap runs.
// Without resources the move is created Pending. With resources the claim runs
// in the creation transaction: the move is persisted Assigned, and a failed
// claim rolls everything back so no move exists afterward.
type CreateMoveCommandHandler struct {
	uowFactory ResourceUoWFactory
	registry   services.ResourceRegistry
}

// NewCreateMoveCommandHandler creates a handler for move creation operations.
// Requires a ResourceUoWFactory because creation may claim a resource set in
// the same transaction.
func NewCreateMoveCommandHandler(uowFactory ResourceUoWFactory) CreateMoveCommandHandler {
	return CreateMoveCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewResourceRegistry(),
	}
}

// Handle processes the move creation command.
// Uses a transaction to ensure the move and any resource claim are persisted
// together or rolled back on error.
func (h *CreateMoveCommandHandler) Handle(ctx context.Context, cmd CreateMoveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	origin, err := kernel.NewLocation(cmd.Origin())
	if err != nil {
		return err
	}
	destination, err := kernel.NewLocation(cmd.Destination())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newMove, err := move.NewMove(cmd.MoveID(), origin, destination, cmd.ScheduledDate())
	if err != nil {
		return err
	}

	if resources := cmd.Resources(); resources != nil {
		if err = h.claimResources(ctx, uow, newMove, resources); err != nil {
			return err
		}
	}

	if err = uow.MoveRepository().Add(ctx, newMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// claimResources loads the requested resource set, runs the domain-level claim
// against the freshly created move and persists the status flips with guarded
// set-wise updates, same as AssignMoveResourcesCommandHandler does for a
// Pending move.
func (h *CreateMoveCommandHandler) claimResources(
	ctx context.Context,
	uow ResourceUoW,
	newMove *move.Move,
	resources *MoveResources,
) error {
	trailerRepo := uow.TrailerRepository()
	driverRepo := uow.DriverRepository()

	newTrailer, err := trailerRepo.Get(ctx, resources.NewTrailerID)
	if err != nil {
		return err
	}
	oldTrailer, err := trailerRepo.Get(ctx, resources.OldTrailerID)
	if err != nil {
		return err
	}

	drivers := make([]*driver.Driver, 0, len(resources.DriverIDs))
	for _, driverID := range resources.DriverIDs {
		d, err := driverRepo.Get(ctx, driverID)
		if err != nil {
			return err
		}
		drivers = append(drivers, d)
	}

	if err = h.registry.ClaimForMove(newMove, newTrailer, oldTrailer, drivers); err != nil {
		return err
	}

	if err = trailerRepo.Claim(ctx, trailerIDsOf(newTrailer, oldTrailer)); err != nil {
		return err
	}
	return driverRepo.Claim(ctx, driverIDs(drivers))
}

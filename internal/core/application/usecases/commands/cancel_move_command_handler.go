package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/services"
)

// CancelMoveCommandHandler handles the business logic for abandoning moves.
// Cancels the move and releases any claimed resources where they sit, in one
// transaction. Cancelling a terminal move returns InvalidTransition; the
// payout of a completed move can only be corrected through reconciliation,
// never by cancelling the move.
type CancelMoveCommandHandler struct {
	uowFactory ResourceUoWFactory
	registry   services.ResourceRegistry
}

// NewCancelMoveCommandHandler creates a handler for move cancellation operations.
func NewCancelMoveCommandHandler(uowFactory ResourceUoWFactory) CancelMoveCommandHandler {
	return CancelMoveCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewResourceRegistry(),
	}
}

// Handle processes the move cancellation command.
// A Pending move simply flips to Cancelled; a move holding resources also
// releases both trailers (locations untouched) and every driver.
func (h CancelMoveCommandHandler) Handle(ctx context.Context, cmd CancelMoveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moveRepo := uow.MoveRepository()

	cancelledMove, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}

	hadResources := cancelledMove.NewTrailerID() != nil && cancelledMove.OldTrailerID() != nil

	if err = cancelledMove.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if hadResources {
		if err = h.releaseResources(ctx, uow, cancelledMove); err != nil {
			return err
		}
	}

	if err = moveRepo.Update(ctx, cancelledMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseResources returns the cancelled move's trailers and drivers to the
// Available pool without relocating anything.
func (h CancelMoveCommandHandler) releaseResources(
	ctx context.Context,
	uow ResourceUoW,
	cancelledMove *move.Move,
) error {
	trailerRepo := uow.TrailerRepository()
	driverRepo := uow.DriverRepository()

	newTrailer, err := trailerRepo.Get(ctx, *cancelledMove.NewTrailerID())
	if err != nil {
		return err
	}
	oldTrailer, err := trailerRepo.Get(ctx, *cancelledMove.OldTrailerID())
	if err != nil {
		return err
	}

	drivers := make([]*driver.Driver, 0, len(cancelledMove.DriverIDs()))
	for _, driverID := range cancelledMove.DriverIDs() {
		d, err := driverRepo.Get(ctx, driverID)
		if err != nil {
			return err
		}
		drivers = append(drivers, d)
	}

	if err = h.registry.ReleaseForCancellation(newTrailer, oldTrailer, drivers); err != nil {
		return err
	}

	if err = trailerRepo.Release(ctx, trailerIDsOf(newTrailer, oldTrailer), nil); err != nil {
		return err
	}

	return driverRepo.Release(ctx, driverIDs(drivers))
}

package commands

import (
	"context"

	"swapdispatch/internal/core/domain/services"
)

// StartMoveCommandHandler handles the business logic for departures.
// Flips the move to InProgress and both its trailers to InTransit in one
// transaction.
type StartMoveCommandHandler struct {
	uowFactory ResourceUoWFactory
	registry   services.ResourceRegistry
}

// NewStartMoveCommandHandler creates a handler for move start operations.
func NewStartMoveCommandHandler(uowFactory ResourceUoWFactory) StartMoveCommandHandler {
	return StartMoveCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewResourceRegistry(),
	}
}

// Handle processes the move start command.
// Only an Assigned move can start; anything else returns InvalidTransition.
func (h StartMoveCommandHandler) Handle(ctx context.Context, cmd StartMoveCommand) error {
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
	trailerRepo := uow.TrailerRepository()

	startedMove, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}

	if startedMove.NewTrailerID() == nil || startedMove.OldTrailerID() == nil {
		// a move without resources is Pending; Start yields the proper
		// transition error
		return startedMove.Start()
	}

	newTrailer, err := trailerRepo.Get(ctx, *startedMove.NewTrailerID())
	if err != nil {
		return err
	}
	oldTrailer, err := trailerRepo.Get(ctx, *startedMove.OldTrailerID())
	if err != nil {
		return err
	}

	if err = h.registry.StartMove(startedMove, newTrailer, oldTrailer); err != nil {
		return err
	}

	if err = trailerRepo.Update(ctx, newTrailer); err != nil {
		return err
	}
	if err = trailerRepo.Update(ctx, oldTrailer); err != nil {
		return err
	}

	if err = moveRepo.Update(ctx, startedMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

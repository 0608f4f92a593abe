package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/core/domain/services"
)

// AssignMoveResourcesCommandHandler orchestrates the resource claim for a move.
// Loads the move and every requested resource, runs the domain-level claim,
// then persists the status flips with guarded set-wise updates so concurrent
// dispatchers fighting over the same resource serialize on the database.
//
// Example:
//
//	handler := NewAssignMoveResourcesCommandHandler(uowFactory)
//	cmd, _ := NewAssignMoveResourcesCommand(moveID, newTrailerID, oldTrailerID, driverIDs)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrResourceUnavailable) {
//	    // Another move holds one of the resources; nothing was claimed
//	}
type AssignMoveResourcesCommandHandler struct {
	uowFactory ResourceUoWFactory
	registry   services.ResourceRegistry
}

// NewAssignMoveResourcesCommandHandler creates a handler for resource claim operations.
// Requires a ResourceUoWFactory for coordinating updates across the move and
// its resources.
func NewAssignMoveResourcesCommandHandler(uowFactory ResourceUoWFactory) AssignMoveResourcesCommandHandler {
	return AssignMoveResourcesCommandHandler{
		uowFactory: uowFactory,
		registry:   services.NewResourceRegistry(),
	}
}

// Handle processes the resource claim command.
// The domain claim validates the resource set (retired trailers, busy
// drivers, distinct units); the repository Claim calls re-check availability
// row-wise inside the transaction, so a concurrent claim of the same
// resource makes exactly one of the two commands fail with
// ResourceUnavailable and roll back untouched.
func (h AssignMoveResourcesCommandHandler) Handle(ctx context.Context, cmd AssignMoveResourcesCommand) error {
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
	driverRepo := uow.DriverRepository()

	claimedMove, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}

	newTrailer, err := trailerRepo.Get(ctx, cmd.NewTrailerID())
	if err != nil {
		return err
	}
	oldTrailer, err := trailerRepo.Get(ctx, cmd.OldTrailerID())
	if err != nil {
		return err
	}

	drivers := make([]*driver.Driver, 0, len(cmd.DriverIDs()))
	for _, driverID := range cmd.DriverIDs() {
		d, err := driverRepo.Get(ctx, driverID)
		if err != nil {
			return err
		}
		drivers = append(drivers, d)
	}

	if err = h.registry.ClaimForMove(claimedMove, newTrailer, oldTrailer, drivers); err != nil {
		return err
	}

	if err = trailerRepo.Claim(ctx, trailerIDsOf(newTrailer, oldTrailer)); err != nil {
		return err
	}
	if err = driverRepo.Claim(ctx, driverIDs(drivers)); err != nil {
		return err
	}

	if err = moveRepo.Update(ctx, claimedMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func driverIDs(drivers []*driver.Driver) []kernel.UUID {
	ids := make([]kernel.UUID, len(drivers))
	for i, d := range drivers {
		ids[i] = d.ID()
	}
	return ids
}

func trailerIDsOf(newTrailer, oldTrailer *trailer.Trailer) []kernel.UUID {
	return []kernel.UUID{newTrailer.ID(), oldTrailer.ID()}
}

package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"
)

// RegisterTrailerCommandHandler handles the business logic for trailer intake.
// New trailers always enter service Available at the reported location.
type RegisterTrailerCommandHandler struct {
	uowFactory TrailerUoWFactory
}

// NewRegisterTrailerCommandHandler creates a handler for trailer intake operations.
// Requires a TrailerUoWFactory for transactional persistence.
func NewRegisterTrailerCommandHandler(uowFactory TrailerUoWFactory) RegisterTrailerCommandHandler {
	return RegisterTrailerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trailer registration command.
// Uses a transaction to ensure the trailer is properly persisted or rolled back on error.
func (h *RegisterTrailerCommandHandler) Handle(ctx context.Context, cmd RegisterTrailerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewLocation(cmd.Location())
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

	newTrailer, err := trailer.NewTrailer(cmd.TrailerID(), cmd.Number(), location)
	if err != nil {
		return err
	}

	if err = uow.TrailerRepository().Add(ctx, newTrailer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/rateconf"
)

// IngestRateConfirmationCommandHandler handles the business logic for
// recording client paperwork. Confirmations always enter Unmatched.
type IngestRateConfirmationCommandHandler struct {
	uowFactory RateConfirmationUoWFactory
}

// NewIngestRateConfirmationCommandHandler creates a handler for confirmation
// intake operations.
func NewIngestRateConfirmationCommandHandler(
	uowFactory RateConfirmationUoWFactory,
) IngestRateConfirmationCommandHandler {
	return IngestRateConfirmationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation intake command.
// Uses a transaction to ensure the confirmation is properly persisted or
// rolled back on error.
func (h *IngestRateConfirmationCommandHandler) Handle(ctx context.Context, cmd IngestRateConfirmationCommand) error {
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

	confirmation, err := rateconf.NewRateConfirmation(
		cmd.RateConfirmationID(), cmd.Reference(),
		cmd.ReportedDistance(), cmd.ReportedRate(), cmd.ReportedTotal(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.RateConfirmationRepository().Add(ctx, confirmation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

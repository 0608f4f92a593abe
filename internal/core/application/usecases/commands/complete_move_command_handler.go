package commands

import (
	"context"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/services"
	"swapdispatch/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CompleteMoveCommandHandler orchestrates move completion: the distance comes
// from the distance provider unless the command carries an actual-distance
// override, the tariff from the rate provider, the payment
// breakdown from the calculator, and every claimed resource is released, all
// in one transaction.
//
// A provider failure surfaces as ProviderUnavailable and leaves the move
// InProgress with everything still held; the command can simply be retried.
type CompleteMoveCommandHandler struct {
	uowFactory       ResourceUoWFactory
	distanceProvider ports.DistanceProvider
	rateProvider     ports.RateProvider
	calculator       services.Calculator
	registry         services.ResourceRegistry
}

// NewCompleteMoveCommandHandler creates a handler for move completion operations.
// Requires the distance and rate providers and a configured calculator
// besides the ResourceUoWFactory.
func NewCompleteMoveCommandHandler(
	uowFactory ResourceUoWFactory,
	distanceProvider ports.DistanceProvider,
	rateProvider ports.RateProvider,
	calculator services.Calculator,
) CompleteMoveCommandHandler {
	return CompleteMoveCommandHandler{
		uowFactory:       uowFactory,
		distanceProvider: distanceProvider,
		rateProvider:     rateProvider,
		calculator:       calculator,
		registry:         services.NewResourceRegistry(),
	}
}

// Handle processes the move completion command.
// Only an InProgress move can complete; anything else returns
// InvalidTransition. On success the move carries its distance and payment
// breakdown, the trailers sit Available at the destination and the drivers
// are Available again.
func (h CompleteMoveCommandHandler) Handle(ctx context.Context, cmd CompleteMoveCommand) error {
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

	completedMove, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}

	distance, err := h.resolveDistance(ctx, cmd, completedMove)
	if err != nil {
		return err
	}

	tariff, err := h.rateProvider.CurrentTariff(ctx)
	if err != nil {
		return err
	}

	breakdown, err := h.calculator.Estimate(
		distance, tariff.RatePerUnit, tariff.ServiceFee,
		completedMove.DriverIDs(), cmd.Mode(),
	)
	if err != nil {
		return err
	}

	if err = completedMove.Complete(distance, breakdown); err != nil {
		return err
	}

	newTrailer, err := trailerRepo.Get(ctx, *completedMove.NewTrailerID())
	if err != nil {
		return err
	}
	oldTrailer, err := trailerRepo.Get(ctx, *completedMove.OldTrailerID())
	if err != nil {
		return err
	}

	drivers := make([]*driver.Driver, 0, len(completedMove.DriverIDs()))
	for _, driverID := range completedMove.DriverIDs() {
		d, err := driverRepo.Get(ctx, driverID)
		if err != nil {
			return err
		}
		drivers = append(drivers, d)
	}

	if err = h.registry.ReleaseForCompletion(completedMove, newTrailer, oldTrailer, drivers); err != nil {
		return err
	}

	destination := completedMove.Destination()
	if err = trailerRepo.Release(ctx, trailerIDsOf(newTrailer, oldTrailer), &destination); err != nil {
		return err
	}
	if err = driverRepo.Release(ctx, driverIDs(drivers)); err != nil {
		return err
	}

	if err = moveRepo.Update(ctx, completedMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveDistance prefers the caller's actual distance over the lane lookup.
func (h CompleteMoveCommandHandler) resolveDistance(
	ctx context.Context,
	cmd CompleteMoveCommand,
	completedMove *move.Move,
) (decimal.Decimal, error) {
	if override := cmd.DistanceOverride(); override != nil {
		return *override, nil
	}

	return h.distanceProvider.Distance(ctx, completedMove.Origin(), completedMove.Destination())
}

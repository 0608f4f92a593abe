package commands

import (
	"context"
	"errors"
	"time"

	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoveHasNoDistance is returned when matching against a move that never
// completed, i.e. has no computed distance to reconcile the paperwork with.
var ErrMoveHasNoDistance = errors.New("move has no computed distance to reconcile against")

// MatchRateConfirmationCommandHandler orchestrates the reconciliation of a
// client confirmation against a completed move. It computes the mileage
// delta, links the confirmation and records the delta on the move, all in
// one transaction.
//
// Double matching is rejected twice over: the aggregates refuse a second
// match, and the storage's uniqueness constraint on the matched move turns a
// racing match into AlreadyMatched at commit time.
//
// Example:
//
//	handler := NewMatchRateConfirmationCommandHandler(uowFactory)
//	cmd, _ := NewMatchRateConfirmationCommand(confID, moveID, "dispatcher")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyMatched) {
//	    // The confirmation or the move already has a match
//	}
type MatchRateConfirmationCommandHandler struct {
	uowFactory ReconciliationUoWFactory
}

// NewMatchRateConfirmationCommandHandler creates a handler for matching operations.
func NewMatchRateConfirmationCommandHandler(
	uowFactory ReconciliationUoWFactory,
) MatchRateConfirmationCommandHandler {
	return MatchRateConfirmationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the matching command.
// The delta is reported minus computed distance; the percentage is the delta
// over the computed distance, rounded half-even to two places. Both stick to the move
// forever once committed.
func (h MatchRateConfirmationCommandHandler) Handle(ctx context.Context, cmd MatchRateConfirmationCommand) error {
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
	confirmationRepo := uow.RateConfirmationRepository()

	matchedMove, err := moveRepo.Get(ctx, cmd.MoveID())
	if err != nil {
		return err
	}
	if matchedMove.HasReconciliation() {
		return errs.NewAlreadyMatchedError("", matchedMove.ID().String())
	}
	if matchedMove.Distance() == nil {
		return ErrMoveHasNoDistance
	}

	confirmation, err := confirmationRepo.Get(ctx, cmd.RateConfirmationID())
	if err != nil {
		return err
	}

	computed := *matchedMove.Distance()
	delta := confirmation.ReportedDistance().Sub(computed)
	deltaPct := delta.Mul(decimal.NewFromInt(100)).Div(computed).RoundBank(2)

	if err = confirmation.Match(matchedMove.ID(), cmd.MatchedBy(), time.Now().UTC()); err != nil {
		return err
	}
	if err = matchedMove.RecordReconciliation(delta, deltaPct); err != nil {
		return err
	}

	if err = confirmationRepo.Update(ctx, confirmation); err != nil {
		return err
	}
	if err = moveRepo.Update(ctx, matchedMove); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/payment"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelMoveCommandHandler_Handle_PendingMove(t *testing.T) {
	ctx := t.Context()
	testMove := testPendingMove(t, kernel.NewUUID())

	cmd, err := commands.NewCancelMoveCommand(testMove.ID(), "client cancelled")
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		moveRepo.On("Get", ctx, testMove.ID()).Return(testMove, nil).Once(),
		moveRepo.On("Update", ctx, mock.AnythingOfType("*move.Move")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, move.Cancelled, testMove.Status())
	assert.Equal(t, "client cancelled", testMove.CancelReason())
	moveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelMoveCommandHandler_Handle_ReleasesResources(t *testing.T) {
	ctx := t.Context()
	testMove, newTrailer, oldTrailer, testDriver := inProgressFixture(t)

	cmd, err := commands.NewCancelMoveCommand(testMove.ID(), "breakdown en route")
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		moveRepo.On("Get", ctx, testMove.ID()).Return(testMove, nil).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		trailerRepo.On("Get", ctx, newTrailer.ID()).Return(newTrailer, nil).Once(),
		trailerRepo.On("Get", ctx, oldTrailer.ID()).Return(oldTrailer, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		trailerRepo.On("Release", ctx, []kernel.UUID{newTrailer.ID(), oldTrailer.ID()},
			(*kernel.Location)(nil)).Return(nil).Once(),
		driverRepo.On("Release", ctx, []kernel.UUID{testDriver.ID()}).Return(nil).Once(),
		moveRepo.On("Update", ctx, mock.AnythingOfType("*move.Move")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, move.Cancelled, testMove.Status())
	assert.Equal(t, trailer.Available, newTrailer.Status())
	// cancellation never relocates: the trailer stays where it was
	stayedPut, err := newTrailer.Location().IsEqual(testLocation(t, "Fleet Memphis"))
	require.NoError(t, err)
	assert.True(t, stayedPut)
	assert.Equal(t, driver.Available, testDriver.Status())
	trailerRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
}

func TestCancelMoveCommandHandler_Handle_CompletedMove(t *testing.T) {
	ctx := t.Context()
	testMove, _, _, _ := inProgressFixture(t)

	// complete the move first so cancellation must be refused
	calc := testCalculator(t)
	breakdown, err := calc.Estimate(
		decimal.RequireFromString("280"), decimal.RequireFromString("2.10"),
		decimal.RequireFromString("6.00"), testMove.DriverIDs(), payment.FullNet)
	require.NoError(t, err)
	require.NoError(t, testMove.Complete(decimal.RequireFromString("280"), breakdown))

	cmd, err := commands.NewCancelMoveCommand(testMove.ID(), "too late")
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		moveRepo.On("Get", ctx, testMove.ID()).Return(testMove, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, move.Completed, testMove.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

package commands_test

import (
	"testing"
	"time"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T, name string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(name)
	require.NoError(t, err)
	return loc
}

func testPendingMove(t *testing.T, id kernel.UUID) *move.Move {
	t.Helper()
	m, err := move.NewMove(id,
		testLocation(t, "Fleet Memphis"), testLocation(t, "FedEx Indy"),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return m
}

func TestAssignMoveResourcesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	moveID := kernel.NewUUID()
	testMove := testPendingMove(t, moveID)
	newTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-100", testLocation(t, "Fleet Memphis"))
	oldTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-200", testLocation(t, "FedEx Indy"))
	testDriver, _ := driver.NewDriver(kernel.NewUUID(), "Sam", false)

	cmd, err := commands.NewAssignMoveResourcesCommand(
		moveID, newTrailer.ID(), oldTrailer.ID(), []kernel.UUID{testDriver.ID()})
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		moveRepo.On("Get", ctx, moveID).Return(testMove, nil).Once(),
		trailerRepo.On("Get", ctx, newTrailer.ID()).Return(newTrailer, nil).Once(),
		trailerRepo.On("Get", ctx, oldTrailer.ID()).Return(oldTrailer, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		trailerRepo.On("Claim", ctx, []kernel.UUID{newTrailer.ID(), oldTrailer.ID()}).Return(nil).Once(),
		driverRepo.On("Claim", ctx, []kernel.UUID{testDriver.ID()}).Return(nil).Once(),
		moveRepo.On("Update", ctx, mock.AnythingOfType("*move.Move")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignMoveResourcesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, move.Assigned, testMove.Status())
	assert.Equal(t, trailer.Claimed, newTrailer.Status())
	assert.Equal(t, driver.OnTrip, testDriver.Status())
	moveRepo.AssertExpectations(t)
	trailerRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignMoveResourcesCommandHandler_Handle_TrailerHeld(t *testing.T) {
	ctx := t.Context()

	moveID := kernel.NewUUID()
	testMove := testPendingMove(t, moveID)
	newTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-100", testLocation(t, "Fleet Memphis"))
	oldTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-200", testLocation(t, "FedEx Indy"))
	require.NoError(t, oldTrailer.Claim()) // held by another move
	testDriver, _ := driver.NewDriver(kernel.NewUUID(), "Sam", false)

	cmd, err := commands.NewAssignMoveResourcesCommand(
		moveID, newTrailer.ID(), oldTrailer.ID(), []kernel.UUID{testDriver.ID()})
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		moveRepo.On("Get", ctx, moveID).Return(testMove, nil).Once(),
		trailerRepo.On("Get", ctx, newTrailer.ID()).Return(newTrailer, nil).Once(),
		trailerRepo.On("Get", ctx, oldTrailer.ID()).Return(oldTrailer, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignMoveResourcesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	assert.Equal(t, move.Pending, testMove.Status())
	trailerRepo.AssertNotCalled(t, "Claim", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignMoveResourcesCommandHandler_Handle_ConcurrentClaimLoses(t *testing.T) {
	ctx := t.Context()

	moveID := kernel.NewUUID()
	testMove := testPendingMove(t, moveID)
	newTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-100", testLocation(t, "Fleet Memphis"))
	oldTrailer, _ := trailer.NewTrailer(kernel.NewUUID(), "TR-200", testLocation(t, "FedEx Indy"))
	testDriver, _ := driver.NewDriver(kernel.NewUUID(), "Sam", false)

	cmd, err := commands.NewAssignMoveResourcesCommand(
		moveID, newTrailer.ID(), oldTrailer.ID(), []kernel.UUID{testDriver.ID()})
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockResourceUoW)

	// another transaction wins the row-wise claim after the aggregates were
	// loaded: the repository reports the shortfall
	claimErr := errs.NewResourceUnavailableError("trailer", []string{newTrailer.ID().String()})

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		moveRepo.On("Get", ctx, moveID).Return(testMove, nil).Once(),
		trailerRepo.On("Get", ctx, newTrailer.ID()).Return(newTrailer, nil).Once(),
		trailerRepo.On("Get", ctx, oldTrailer.ID()).Return(oldTrailer, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		trailerRepo.On("Claim", ctx, []kernel.UUID{newTrailer.ID(), oldTrailer.ID()}).
			Return(claimErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignMoveResourcesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignMoveResourcesCommandHandler_Handle_MoveNotFound(t *testing.T) {
	ctx := t.Context()

	moveID := kernel.NewUUID()
	cmd, err := commands.NewAssignMoveResourcesCommand(
		moveID, kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		moveRepo.On("Get", ctx, moveID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignMoveResourcesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

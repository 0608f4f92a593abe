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

// assignedFixture builds a move with claimed resources that has not departed.
func assignedFixture(t *testing.T) (*move.Move, *trailer.Trailer, *trailer.Trailer, *driver.Driver) {
	t.Helper()

	newTrailer, err := trailer.NewTrailer(kernel.NewUUID(), "TR-100", testLocation(t, "Fleet Memphis"))
	require.NoError(t, err)
	oldTrailer, err := trailer.NewTrailer(kernel.NewUUID(), "TR-200", testLocation(t, "FedEx Indy"))
	require.NoError(t, err)
	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Sam", true)
	require.NoError(t, err)

	m, err := move.NewAssignedMove(
		kernel.NewUUID(), newTrailer.ID(), oldTrailer.ID(),
		[]kernel.UUID{testDriver.ID()},
		testLocation(t, "Fleet Memphis"), testLocation(t, "FedEx Indy"),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.NoError(t, newTrailer.Claim())
	require.NoError(t, oldTrailer.Claim())
	require.NoError(t, testDriver.Claim())

	return m, newTrailer, oldTrailer, testDriver
}

func TestStartMoveCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testMove, newTrailer, oldTrailer, _ := assignedFixture(t)

	cmd, err := commands.NewStartMoveCommand(testMove.ID())
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		moveRepo.On("Get", ctx, testMove.ID()).Return(testMove, nil).Once(),
		trailerRepo.On("Get", ctx, newTrailer.ID()).Return(newTrailer, nil).Once(),
		trailerRepo.On("Get", ctx, oldTrailer.ID()).Return(oldTrailer, nil).Once(),
		trailerRepo.On("Update", ctx, newTrailer).Return(nil).Once(),
		trailerRepo.On("Update", ctx, oldTrailer).Return(nil).Once(),
		moveRepo.On("Update", ctx, testMove).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, move.InProgress, testMove.Status())
	assert.Equal(t, trailer.InTransit, newTrailer.Status())
	assert.Equal(t, trailer.InTransit, oldTrailer.Status())
	moveRepo.AssertExpectations(t)
	trailerRepo.AssertExpectations(t)
}

func TestStartMoveCommandHandler_Handle_PendingMove(t *testing.T) {
	ctx := t.Context()
	testMove := testPendingMove(t, kernel.NewUUID())

	cmd, err := commands.NewStartMoveCommand(testMove.ID())
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		moveRepo.On("Get", ctx, testMove.ID()).Return(testMove, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, move.Pending, testMove.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartMoveCommandHandler_Handle_MoveNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()

	cmd, err := commands.NewStartMoveCommand(missingID)
	require.NoError(t, err)

	moveRepo := new(MockMoveRepository)
	trailerRepo := new(MockTrailerRepository)
	uow := new(MockResourceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoveRepository").Return(moveRepo).Once(),
		uow.On("TrailerRepository").Return(trailerRepo).Once(),
		moveRepo.On("Get", ctx, missingID).
			Return(nil, errs.NewObjectNotFoundError("move", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartMoveCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

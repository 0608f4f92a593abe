package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignMoveResourcesCommand_ValidInput(t *testing.T) {
	moveID := kernel.NewUUID()
	newTrailerID := kernel.NewUUID()
	oldTrailerID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignMoveResourcesCommand(
		moveID, newTrailerID, oldTrailerID, []kernel.UUID{driverID})
	require.NoError(t, err)
	assert.Equal(t, moveID, cmd.MoveID())
	assert.Equal(t, newTrailerID, cmd.NewTrailerID())
	assert.Equal(t, oldTrailerID, cmd.OldTrailerID())
	assert.Equal(t, []kernel.UUID{driverID}, cmd.DriverIDs())
}

func TestNewAssignMoveResourcesCommand_SameTrailerTwice(t *testing.T) {
	trailerID := kernel.NewUUID()
	_, err := commands.NewAssignMoveResourcesCommand(
		kernel.NewUUID(), trailerID, trailerID, []kernel.UUID{kernel.NewUUID()})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrailersMustDiffer)
}

func TestNewAssignMoveResourcesCommand_NoDrivers(t *testing.T) {
	_, err := commands.NewAssignMoveResourcesCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriversAreRequired)
}

func TestNewAssignMoveResourcesCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewAssignMoveResourcesCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignMoveResourcesCommand_DriverIDsIsACopy(t *testing.T) {
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignMoveResourcesCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{driverID})
	require.NoError(t, err)

	ids := cmd.DriverIDs()
	ids[0] = kernel.NewUUID()
	assert.Equal(t, []kernel.UUID{driverID}, cmd.DriverIDs())
}

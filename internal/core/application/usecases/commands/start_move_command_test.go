package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartMoveCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartMoveCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.MoveID())
}

func TestNewStartMoveCommand_InvalidMoveID(t *testing.T) {
	_, err := commands.NewStartMoveCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStartMoveCommand_NotConstructed(t *testing.T) {
	var cmd commands.StartMoveCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartMoveCommandIsNotConstructed)
}

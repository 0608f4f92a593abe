package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelMoveCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelMoveCommand(id, "client cancelled")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.MoveID())
	assert.Equal(t, "client cancelled", cmd.Reason())
}

func TestNewCancelMoveCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewCancelMoveCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelReasonIsRequired)
}

func TestNewCancelMoveCommand_InvalidMoveID(t *testing.T) {
	_, err := commands.NewCancelMoveCommand(kernel.UUID{}, "client cancelled")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

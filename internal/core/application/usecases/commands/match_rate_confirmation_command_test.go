package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchRateConfirmationCommand_ValidInput(t *testing.T) {
	confID := kernel.NewUUID()
	moveID := kernel.NewUUID()
	cmd, err := commands.NewMatchRateConfirmationCommand(confID, moveID, "dispatcher")
	require.NoError(t, err)
	assert.Equal(t, confID, cmd.RateConfirmationID())
	assert.Equal(t, moveID, cmd.MoveID())
	assert.Equal(t, "dispatcher", cmd.MatchedBy())
}

func TestNewMatchRateConfirmationCommand_EmptyMatchedBy(t *testing.T) {
	_, err := commands.NewMatchRateConfirmationCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMatchedByIsRequired)
}

func TestNewMatchRateConfirmationCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewMatchRateConfirmationCommand(kernel.UUID{}, kernel.UUID{}, "dispatcher")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterDriverCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(id, "Sam", true)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.DriverID())
	assert.Equal(t, "Sam", cmd.Name())
	assert.True(t, cmd.IsContractor())
}

func TestNewRegisterDriverCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverNameIsRequired)
}

func TestNewRegisterDriverCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand(kernel.UUID{}, "Sam", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

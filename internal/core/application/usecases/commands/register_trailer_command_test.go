package commands_test

import (
	"testing"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTrailerCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterTrailerCommand(id, "TR-100", "Fleet Memphis")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.TrailerID())
	assert.Equal(t, "TR-100", cmd.Number())
	assert.Equal(t, "Fleet Memphis", cmd.Location())
}

func TestNewRegisterTrailerCommand_EmptyNumber(t *testing.T) {
	_, err := commands.NewRegisterTrailerCommand(kernel.NewUUID(), "", "Fleet Memphis")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrailerNumberIsRequired)
}

func TestNewRegisterTrailerCommand_EmptyLocation(t *testing.T) {
	_, err := commands.NewRegisterTrailerCommand(kernel.NewUUID(), "TR-100", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrailerLocationIsRequired)
}

func TestNewRegisterTrailerCommand_InvalidTrailerID(t *testing.T) {
	_, err := commands.NewRegisterTrailerCommand(kernel.UUID{}, "TR-100", "Fleet Memphis")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnqueueOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewEnqueueOrderCommand("o1", "Loc1")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "o1", cmd.OrderID())
	assert.Equal(t, "Loc1", cmd.CustomerLocation().ID())
}

func TestNewEnqueueOrderCommand_MissingOrderID(t *testing.T) {
	_, err := commands.NewEnqueueOrderCommand("", "Loc1")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "orderId")
}

func TestNewEnqueueOrderCommand_MissingCustomerLocation(t *testing.T) {
	_, err := commands.NewEnqueueOrderCommand("o1", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customerLocation")
}

func TestNewEnqueueOrderCommand_BothMissing(t *testing.T) {
	cmd, err := commands.NewEnqueueOrderCommand("", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderId")
	assert.Contains(t, err.Error(), "customerLocation")
	require.ErrorIs(t, cmd.Validate(), commands.ErrEnqueueOrderCommandIsNotConstructed)
}

func TestEnqueueOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.EnqueueOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEnqueueOrderCommandIsNotConstructed)
}

package commands_test

import (
	"testing"

	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "+255700000001", "no onions")
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Kariakoo, Dar es Salaam", cmd.DeliveryAddress())
	assert.Equal(t, "+255700000001", cmd.Phone())
	assert.Equal(t, "no onions", cmd.SpecialInstructions())
}

func TestNewCheckoutCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCheckoutCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.UUID{}, "Kariakoo, Dar es Salaam", "", "")
	require.Error(t, err)
}

func TestCheckoutCommand_ZeroValueFailsValidation(t *testing.T) {
	err := commands.CheckoutCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}

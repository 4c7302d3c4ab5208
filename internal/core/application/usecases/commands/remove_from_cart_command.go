package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to drop a line from a cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove a cart line.
func NewRemoveFromCartCommand(customerID, dishID kernel.UUID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveFromCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the line's dish identifier.
func (c RemoveFromCartCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c *RemoveFromCartCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *RemoveFromCartCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dishID = id
	return nil
}

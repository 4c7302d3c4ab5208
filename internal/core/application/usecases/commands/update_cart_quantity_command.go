package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
)

// UpdateCartQuantityCommand represents a request to change a cart line's quantity.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartQuantityCommand creates a command to replace a line's quantity.
// Removal goes through RemoveFromCartCommand; quantities below 1 are rejected.
func NewUpdateCartQuantityCommand(customerID, dishID kernel.UUID, quantity int) (UpdateCartQuantityCommand, error) {
	cmd := UpdateCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the line's dish identifier.
func (c UpdateCartQuantityCommand) DishID() kernel.UUID {
	return c.dishID
}

// Quantity returns the new quantity.
func (c UpdateCartQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartQuantityCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *UpdateCartQuantityCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dishID = id
	return nil
}

func (c *UpdateCartQuantityCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}
	c.quantity = quantity
	return nil
}

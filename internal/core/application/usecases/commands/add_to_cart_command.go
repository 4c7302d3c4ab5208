package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a request to put a dish into a customer's cart.
//
// Example:
//
//	cmd, err := NewAddToCartCommand(customerID, dishID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart data: %w", err)
//	}
//
//	handler := NewAddToCartCommandHandler(cartStore, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a dish to the cart.
// Validates that both IDs are valid and the quantity is at least 1.
func NewAddToCartCommand(customerID, dishID kernel.UUID, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish to add.
func (c AddToCartCommand) DishID() kernel.UUID {
	return c.dishID
}

// Quantity returns the number of units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *AddToCartCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dishID = id
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}
	c.quantity = quantity
	return nil
}

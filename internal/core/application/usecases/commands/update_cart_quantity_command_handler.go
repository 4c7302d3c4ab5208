package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// UpdateCartQuantityCommandHandler handles quantity changes on cart lines.
type UpdateCartQuantityCommandHandler struct {
	cartStore ports.CartStore
}

// NewUpdateCartQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartQuantityCommandHandler(cartStore ports.CartStore) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{cartStore: cartStore}
}

// Handle processes the quantity update command.
func (h *UpdateCartQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.SetQuantity(cmd.DishID(), cmd.Quantity()); err != nil {
		return err
	}

	return h.cartStore.Save(ctx, c)
}

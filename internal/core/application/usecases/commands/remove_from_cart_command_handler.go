package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// RemoveFromCartCommandHandler handles dropping lines from carts.
type RemoveFromCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveFromCartCommandHandler creates a handler for cart line removal.
func NewRemoveFromCartCommandHandler(cartStore ports.CartStore) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{cartStore: cartStore}
}

// Handle processes the removal command. Removing the last line clears the
// cart's restaurant association.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.Remove(cmd.DishID()); err != nil {
		return err
	}

	return h.cartStore.Save(ctx, c)
}

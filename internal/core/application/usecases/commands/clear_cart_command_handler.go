package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// ClearCartCommandHandler handles emptying carts.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{cartStore: cartStore}
}

// Handle processes the clear command. Clearing a missing cart is a no-op.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, cmd.CustomerID())
}

package ports

import (
	"context"

	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
)

// CartStore defines the persistence contract for carts.
//
// Carts are short-lived pre-checkout state and live outside the relational
// store; implementations expire idle carts after a configured TTL and refresh
// the TTL on every Save. Get on a missing or expired cart returns a fresh
// empty cart rather than an error.
type CartStore interface {
	// Get retrieves the customer's cart, or an empty cart if none exists.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart and refreshes its expiry.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes the customer's cart.
	Clear(ctx context.Context, customerID kernel.UUID) error
}

package queries

import (
	"context"

	"msosihub/internal/core/ports"
)

// GetCartQueryHandler reads a customer's cart from the cart store.
//
// Carts live in Redis rather than Postgres, so this is the one query that
// goes through a port instead of raw SQL.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore}
}

// Handle executes the query. A missing or expired cart comes back as an empty
// read model rather than an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.cartStore.Get(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		CustomerID:   query.CustomerID(),
		RestaurantID: c.RestaurantID(),
		Lines:        make([]GetCartQueryLine, 0, len(c.Lines())),
	}

	for _, line := range c.Lines() {
		subtotal := line.Subtotal()
		resp.Lines = append(resp.Lines, GetCartQueryLine{
			DishID:   line.DishID,
			Title:    line.Title,
			Quantity: line.Quantity,
			Price:    line.Price.Amount(),
			Subtotal: subtotal.Amount(),
		})
		resp.ItemCount += line.Quantity
		resp.Subtotal += subtotal.Amount()
	}

	return resp, nil
}

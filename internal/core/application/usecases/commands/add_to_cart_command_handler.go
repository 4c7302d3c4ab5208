package commands

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/restaurant"
	"msosihub/internal/core/ports"
)

// ErrDishNotAvailable is returned when adding a dish that is switched off or
// whose restaurant is deactivated.
var ErrDishNotAvailable = errors.New("dish is not available")

// DishCatalog is the read-side of the restaurant repository used by cart
// mutations to snapshot dish data.
type DishCatalog interface {
	GetDish(ctx context.Context, dishID kernel.UUID) (*restaurant.Dish, error)
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

// AddToCartCommandHandler handles the business logic for adding dishes to carts.
//
// The cart snapshots the dish title and price at add time; the single
// restaurant invariant is enforced by the cart aggregate itself.
type AddToCartCommandHandler struct {
	cartStore ports.CartStore
	catalog   DishCatalog
}

// NewAddToCartCommandHandler creates a handler for cart add operations.
func NewAddToCartCommandHandler(cartStore ports.CartStore, catalog DishCatalog) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		cartStore: cartStore,
		catalog:   catalog,
	}
}

// CartTotals reports the cart size after a mutation.
type CartTotals struct {
	ItemCount int
	Subtotal  kernel.Money
}

// Handle processes the add-to-cart command and returns the updated totals.
// The dish must be available and belong to an active restaurant.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (CartTotals, error) {
	if err := cmd.Validate(); err != nil {
		return CartTotals{}, err
	}

	dish, err := h.catalog.GetDish(ctx, cmd.DishID())
	if err != nil {
		return CartTotals{}, err
	}

	if !dish.IsAvailable() {
		return CartTotals{}, ErrDishNotAvailable
	}

	owner, err := h.catalog.Get(ctx, dish.RestaurantID())
	if err != nil {
		return CartTotals{}, err
	}
	if !owner.IsActive() {
		return CartTotals{}, ErrDishNotAvailable
	}

	c, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return CartTotals{}, err
	}

	if err = c.Add(dish.ID(), dish.RestaurantID(), dish.Title(), dish.Price(), cmd.Quantity()); err != nil {
		return CartTotals{}, err
	}

	if err = h.cartStore.Save(ctx, c); err != nil {
		return CartTotals{}, err
	}

	return CartTotals{ItemCount: c.ItemCount(), Subtotal: c.Subtotal()}, nil
}

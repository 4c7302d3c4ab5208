package queries

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's current cart with line subtotals.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryLine represents one cart line in the read model.
// Price and Subtotal are in minor currency units.
type GetCartQueryLine struct {
	DishID   kernel.UUID
	Title    string
	Quantity int
	Price    int64
	Subtotal int64
}

// GetCartQueryResponse represents a cart read model. RestaurantID is nil for
// an empty cart. ItemCount sums quantities across lines.
type GetCartQueryResponse struct {
	CustomerID   kernel.UUID
	RestaurantID *kernel.UUID
	Lines        []GetCartQueryLine
	ItemCount    int
	Subtotal     int64
}

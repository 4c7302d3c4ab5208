package queries

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves ready, unassigned orders that drivers
// can claim.
//
// Example:
//
//	query := NewGetAvailableDeliveriesQuery()
//	handler := NewGetAvailableDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available deliveries: %w", err)
//	}
//
//	fmt.Printf("%d orders waiting for a driver\n", len(deliveries))
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for claimable orders.
// This is a parameterless query; every driver sees the same board.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// GetAvailableDeliveriesQueryResponse represents one claimable order.
// TotalAmount is in minor currency units.
type GetAvailableDeliveriesQueryResponse struct {
	OrderID         kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress string
	TotalAmount     int64
}

package queries

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler retrieves the delivery board: ready
// orders that no driver has claimed yet.
//
// The board is advisory. Claims go through the conditional update in the
// order repository, so a stale row here just means the claim will fail.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for delivery board queries.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Oldest orders come first.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAvailableDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			delivery_address,
			total_amount
		FROM orders
		WHERE status = ? AND driver_id IS NULL
		ORDER BY created_at
	`, order.StatusReady.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivery GetAvailableDeliveriesQueryResponse
		var id, restaurantID uuid.UUID

		err = rows.Scan(
			&id,
			&restaurantID,
			&delivery.DeliveryAddress,
			&delivery.TotalAmount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		delivery.OrderID = orderID

		rstID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		delivery.RestaurantID = rstID

		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

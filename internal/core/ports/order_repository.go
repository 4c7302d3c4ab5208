package ports

import (
	"context"
	"time"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are immutable; only lifecycle fields change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimForDriver atomically assigns an order to a driver. The assignment
	// is a single conditional update that succeeds only while the order is
	// Ready and unassigned; when another driver won the race or the order
	// moved on, order.ErrOrderNotAvailable is returned and nothing changes.
	ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) error

	// CountActiveByUser returns how many non-terminal orders the user
	// currently has, whether as the ordering customer or as the assigned
	// driver. Used to guard user deletion.
	CountActiveByUser(ctx context.Context, userID kernel.UUID) (int64, error)

	// CountActiveByRestaurant returns how many non-terminal orders the
	// restaurant currently has. Used to guard restaurant deletion.
	CountActiveByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)

	// GetExpiredPending retrieves orders still awaiting payment confirmation
	// that were created before the cutoff. Used by the expiry job.
	GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

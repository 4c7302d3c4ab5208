package ports

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates and their dish catalogs.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate with its dishes.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate,
	// including added dishes and availability changes.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate with its full dish catalog.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetByOwner retrieves the restaurant owned by the given user.
	// Returns errs.ObjectNotFoundError if the user owns no restaurant.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*restaurant.Restaurant, error)

	// GetDish retrieves a single dish together with its restaurant ID.
	// Used by cart mutations to snapshot title and price without loading
	// the whole catalog.
	GetDish(ctx context.Context, dishID kernel.UUID) (*restaurant.Dish, error)

	// DeleteDish removes a single dish row. The caller must drop the dish
	// from the aggregate first so a later Update does not resurrect it.
	DeleteDish(ctx context.Context, dishID kernel.UUID) error

	// Delete removes a restaurant and its dishes. Callers must verify the
	// restaurant has no active orders before deleting.
	Delete(ctx context.Context, id kernel.UUID) error
}

package restaurant

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var (
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
	// ErrDishTitleIsRequired is returned when attempting to create a dish without a title.
	ErrDishTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Dish is a menu entry belonging to exactly one Restaurant.
//
// The catalog price on a dish is the current price; order items snapshot the
// price at add-to-cart time, so later edits never retroactively change
// existing carts or orders. The inventory counter is advisory only: checkout
// does not decrement it.
type Dish struct {
	// id uniquely identifies the dish
	id kernel.UUID
	// restaurantID references the owning restaurant
	restaurantID kernel.UUID
	// title is the display name of the dish
	title string
	// description is optional free text
	description string
	// price is the current catalog price in minor units
	price kernel.Money
	// category groups dishes on a menu (optional)
	category string
	// available gates visibility for ordering
	available bool
	// inventory is an advisory counter, not enforced at checkout
	inventory int
	// guard ensures the dish was properly constructed
	guard guard.ConstructorGuard
}

// NewDish creates a new available Dish for a restaurant.
func NewDish(
	id kernel.UUID, restaurantID kernel.UUID,
	title, description string, price kernel.Money, category string, inventory int,
) (*Dish, error) {
	d := &Dish{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setTitle(title),
	); err != nil {
		return nil, err
	}

	d.description = description
	d.price = price
	d.category = category
	d.inventory = inventory
	return d, nil
}

// RestoreDish reconstructs a Dish from persistent storage.
func RestoreDish(
	id kernel.UUID, restaurantID kernel.UUID,
	title, description string, price kernel.Money, category string,
	available bool, inventory int,
) (*Dish, error) {
	d, err := NewDish(id, restaurantID, title, description, price, category, inventory)
	if err != nil {
		return nil, err
	}

	d.available = available
	return d, nil
}

// Validate ensures the Dish instance was properly constructed through NewDish.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Title returns the dish's display name.
func (d *Dish) Title() string {
	return d.title
}

// Description returns the dish's description text.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the current catalog price.
func (d *Dish) Price() kernel.Money {
	return d.price
}

// Category returns the dish's menu category.
func (d *Dish) Category() string {
	return d.category
}

// IsAvailable reports whether the dish can currently be ordered.
func (d *Dish) IsAvailable() bool {
	return d.available
}

// Inventory returns the advisory inventory counter.
func (d *Dish) Inventory() int {
	return d.inventory
}

// SetAvailability toggles whether the dish can be ordered.
func (d *Dish) SetAvailability(available bool) {
	d.available = available
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.restaurantID = id
	return nil
}

func (d *Dish) setTitle(title string) error {
	if title == "" {
		return ErrDishTitleIsRequired
	}
	d.title = title
	return nil
}

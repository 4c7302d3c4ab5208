package restaurant

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrRestaurantNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a restaurant without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Restaurant represents a food outlet owned by exactly one user with the
// restaurant role. It is the aggregate root for the catalog side of the
// system and owns its Dish entities.
//
// Business rules:
//   - Must have a valid UUID, owner, name, and address
//   - The active flag gates discovery; deactivation hides the restaurant
//     without deleting its history
//   - Dishes belong to exactly one restaurant and are removed with it
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.UUID
	// ownerID references the owning user account
	ownerID kernel.UUID
	// name is the display name
	name string
	// description is optional free text
	description string
	// address is the pickup address
	address string
	// phone is the contact number
	phone string
	// active gates visibility in discovery
	active bool
	// dishes are the menu entries owned by this restaurant
	dishes []*Dish
	// guard ensures the restaurant was properly constructed
	guard guard.ConstructorGuard
}

// NewRestaurant creates a new active Restaurant without dishes.
func NewRestaurant(id, ownerID kernel.UUID, name, description, address, phone string) (*Restaurant, error) {
	r := &Restaurant{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	r.description = description
	r.phone = phone
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant aggregate from persistent
// storage, including its active flag and dishes.
func RestoreRestaurant(
	id, ownerID kernel.UUID,
	name, description, address, phone string,
	active bool, dishes []*Dish,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, description, address, phone)
	if err != nil {
		return nil, err
	}

	for _, d := range dishes {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	r.active = active
	r.dishes = dishes
	return r, nil
}

// Validate ensures the Restaurant was properly constructed through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Description returns the restaurant's description text.
func (r *Restaurant) Description() string {
	return r.description
}

// Address returns the restaurant's pickup address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant's contact number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// IsActive reports whether the restaurant is visible for ordering.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Dishes returns the restaurant's menu entries.
func (r *Restaurant) Dishes() []*Dish {
	return r.dishes
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// SetActive toggles the restaurant's visibility.
// Deactivation hides it from discovery without deleting history.
func (r *Restaurant) SetActive(active bool) {
	r.active = active
}

// UpdateInfo replaces the restaurant's public details.
func (r *Restaurant) UpdateInfo(name, description, address, phone string) error {
	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return err
	}

	r.description = description
	r.phone = phone
	return nil
}

// AddDish creates a new dish on this restaurant's menu and returns it.
func (r *Restaurant) AddDish(
	id kernel.UUID, title, description string, price kernel.Money, category string, inventory int,
) (*Dish, error) {
	dish, err := NewDish(id, r.id, title, description, price, category, inventory)
	if err != nil {
		return nil, err
	}

	r.dishes = append(r.dishes, dish)
	return dish, nil
}

// RemoveDish deletes the menu entry with the given identifier.
// Orders placed before the removal keep their title and price snapshots.
func (r *Restaurant) RemoveDish(dishID kernel.UUID) error {
	for i, d := range r.dishes {
		if d.ID().IsEqual(dishID) {
			r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("dish", dishID.String())
}

// Dish returns the menu entry with the given identifier.
func (r *Restaurant) Dish(dishID kernel.UUID) (*Dish, error) {
	for _, d := range r.dishes {
		if d.ID().IsEqual(dishID) {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("dish", dishID.String())
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.ownerID = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	r.address = address
	return nil
}

package cart

import (
	"errors"
	"fmt"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrMixedRestaurant is returned when adding a dish from a restaurant other
	// than the one the cart already holds dishes from.
	ErrMixedRestaurant = errors.New("cart already holds dishes from another restaurant")
	// ErrEmptyCart is returned when an operation requires a non-empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidQuantity is returned for quantities below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Cart is a customer's pending selection of dishes. It is the aggregate root
// for everything that happens before checkout.
//
// Cart follows these invariants:
//   - All lines reference dishes of a single restaurant; adding a dish from
//     another restaurant is rejected without touching the existing lines
//   - Each dish appears in at most one line; re-adding it grows the quantity
//   - Lines carry title and price snapshots taken when the dish was added
//   - When the last line is removed the restaurant association clears, so the
//     next add may come from any restaurant
type Cart struct {
	// customerID is the cart owner; one cart per customer
	customerID kernel.UUID

	// restaurantID is the single restaurant all lines belong to (nil when empty)
	restaurantID *kernel.UUID

	// lines are the selected dishes with their snapshots
	lines []Line

	// guard ensures the cart was created via a constructor
	guard guard.ConstructorGuard
}

// Line is one dish selection inside a cart. Title and price are snapshots
// taken when the dish was added and are carried into the order at checkout.
type Line struct {
	// DishID references the catalog dish
	DishID kernel.UUID
	// Title is the dish title snapshot
	Title string
	// Quantity is the selected amount (at least 1)
	Quantity int
	// Price is the unit price snapshot
	Price kernel.Money
}

// Subtotal returns quantity times the unit price snapshot.
func (l Line) Subtotal() kernel.Money {
	return l.Price.Mul(l.Quantity)
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	c := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setCustomerID(customerID); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a Cart aggregate from storage.
// A nil restaurantID is only valid together with an empty line slice.
func RestoreCart(customerID kernel.UUID, restaurantID *kernel.UUID, lines []Line) (*Cart, error) {
	c := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setCustomerID(customerID); err != nil {
		return nil, err
	}

	if len(lines) > 0 {
		if restaurantID == nil {
			return nil, errs.NewValueIsRequiredError("restaurant id")
		}
		if err := restaurantID.Validate(); err != nil {
			return nil, err
		}
		for _, line := range lines {
			if err := validateLine(line); err != nil {
				return nil, err
			}
		}
		c.restaurantID = restaurantID
		c.lines = lines
	}

	return c, nil
}

// Validate ensures the Cart instance was properly constructed through a factory.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant all cart lines belong to.
// Returns nil for an empty cart.
func (c *Cart) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

// Lines returns the cart's lines.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of all line subtotals.
func (c *Cart) Subtotal() kernel.Money {
	total := kernel.Zero()
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Add puts a dish into the cart, snapshotting its title and price.
//
// The single restaurant invariant is enforced here: if the cart already holds
// dishes from another restaurant the add fails with ErrMixedRestaurant and
// the cart is left unchanged. Re-adding a dish already in the cart grows its
// line's quantity instead of creating a second line.
func (c *Cart) Add(dishID, restaurantID kernel.UUID, title string, price kernel.Money, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if err := errors.Join(dishID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}

	if c.restaurantID != nil && !c.restaurantID.IsEqual(restaurantID) {
		return ErrMixedRestaurant
	}

	for i := range c.lines {
		if c.lines[i].DishID.IsEqual(dishID) {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		DishID:   dishID,
		Title:    title,
		Quantity: quantity,
		Price:    price,
	})
	c.restaurantID = &restaurantID
	return nil
}

// SetQuantity replaces the quantity of an existing line.
// Removal goes through Remove; quantities below 1 are rejected.
func (c *Cart) SetQuantity(dishID kernel.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].DishID.IsEqual(dishID) {
			c.lines[i].Quantity = quantity
			return nil
		}
	}

	return errs.NewObjectNotFoundError("dish id", dishID)
}

// Remove deletes a line from the cart. Removing the last line clears the
// restaurant association.
func (c *Cart) Remove(dishID kernel.UUID) error {
	for i := range c.lines {
		if c.lines[i].DishID.IsEqual(dishID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			if len(c.lines) == 0 {
				c.restaurantID = nil
			}
			return nil
		}
	}

	return errs.NewObjectNotFoundError("dish id", dishID)
}

// Clear removes all lines and the restaurant association.
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func validateLine(line Line) error {
	if line.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if line.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if err := line.DishID.Validate(); err != nil {
		return fmt.Errorf("line dish id: %w", err)
	}
	return nil
}

package order

import (
	"errors"
	"fmt"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemTitleIsRequired is returned when attempting to create an item without a title.
	ErrItemTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Item is a line of an order referencing one dish. It carries the quantity
// and the unit price snapshot captured at order time; the price is never
// re-read from the catalog, so later dish edits cannot change existing orders.
//
// Items are immutable once the order is created.
type Item struct {
	// dishID references the catalog dish this line was built from
	dishID kernel.UUID
	// title is the dish title snapshot at order time
	title string
	// quantity is the number of units ordered (at least 1)
	quantity int
	// price is the unit price snapshot at order time
	price kernel.Money
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates an order line from cart snapshot data.
// Quantity must be at least 1 and the title must be non-empty.
func NewItem(dishID kernel.UUID, title string, quantity int, price kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setTitle(title),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.price = price
	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// DishID returns the referenced dish identifier.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Title returns the dish title snapshot.
func (i Item) Title() string {
	return i.title
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns quantity times the unit price snapshot.
func (i Item) Subtotal() kernel.Money {
	return i.price.Mul(i.quantity)
}

func (i *Item) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.dishID = id
	return nil
}

func (i *Item) setTitle(title string) error {
	if title == "" {
		return ErrItemTitleIsRequired
	}
	i.title = title
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

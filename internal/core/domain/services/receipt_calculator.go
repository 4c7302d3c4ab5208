package services

import (
	"msosihub/internal/core/domain/model/cart"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
)

// Receipt is the priced breakdown of a checkout: the item lines converted to
// order items plus the fee and total amounts. Everything is computed from the
// cart's snapshots, never from the live catalog.
type Receipt struct {
	// Items are the order lines built from the cart snapshots
	Items []order.Item
	// Subtotal is the sum of line subtotals
	Subtotal kernel.Money
	// DeliveryFee is the flat fee applied to every order
	DeliveryFee kernel.Money
	// Total is Subtotal plus DeliveryFee, the amount debited from the wallet
	Total kernel.Money
}

// ReceiptCalculator is a domain service that prices a cart for checkout.
//
// Business rules:
//   - The cart must be valid and non-empty
//   - Every line becomes one order item carrying the cart's title and price
//     snapshots
//   - A flat delivery fee is added on top of the item subtotal
type ReceiptCalculator struct {
	deliveryFee kernel.Money
}

// NewReceiptCalculator creates a calculator with the given flat delivery fee.
func NewReceiptCalculator(deliveryFee kernel.Money) ReceiptCalculator {
	return ReceiptCalculator{deliveryFee: deliveryFee}
}

// DeliveryFee returns the configured flat delivery fee.
func (r ReceiptCalculator) DeliveryFee() kernel.Money {
	return r.deliveryFee
}

// Calculate prices the cart and converts its lines to order items.
//
// Returns cart.ErrEmptyCart for an empty cart; the caller decides whether
// that is a user error (checkout) or a no-op.
func (r ReceiptCalculator) Calculate(c *cart.Cart) (Receipt, error) {
	if err := c.Validate(); err != nil {
		return Receipt{}, err
	}

	if c.IsEmpty() {
		return Receipt{}, cart.ErrEmptyCart
	}

	items := make([]order.Item, 0, len(c.Lines()))
	subtotal := kernel.Zero()
	for _, line := range c.Lines() {
		item, err := order.NewItem(line.DishID, line.Title, line.Quantity, line.Price)
		if err != nil {
			return Receipt{}, err
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}

	return Receipt{
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: r.deliveryFee,
		Total:       subtotal.Add(r.deliveryFee),
	}, nil
}

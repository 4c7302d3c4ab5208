package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CheckoutCommand represents a request to convert a customer's cart into a
// wallet-paid order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, "Kariakoo, Dar es Salaam", "+255700000001", "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, cartStore, calculator, notifier, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, user.ErrInsufficientFunds) {
//	    // wallet does not cover the order total
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	deliveryAddress     string
	phone               string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the customer's cart.
// The delivery address is required; phone and instructions are optional.
func NewCheckoutCommand(
	customerID kernel.UUID, deliveryAddress, phone, instructions string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.phone = phone
	cmd.specialInstructions = instructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the paying customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the destination address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Phone returns the delivery contact number.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

// SpecialInstructions returns optional free-text instructions.
func (c CheckoutCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CheckoutCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

package order

import (
	"errors"
	"time"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

// Domain errors for order workflow operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNoItems is returned when attempting to create an order without line items.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrDeliveryAddressIsRequired is returned when attempting to create an order
	// without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrForbiddenRole is returned when an actor attempts a transition their role
	// does not authorize (e.g. advancing preparation on a foreign restaurant's order).
	ErrForbiddenRole = errors.New("actor is not permitted to perform this transition")
	// ErrOrderNotAvailable is returned when a driver claim loses the race: the order
	// is not ready for pickup or another driver already holds it.
	ErrOrderNotAvailable = errors.New("order is not available for pickup")
	// ErrNotAssignedDriver is returned when a driver other than the assigned one
	// attempts to complete a delivery.
	ErrNotAssignedDriver = errors.New("order is assigned to a different driver")
)

// Order represents a customer's order in the system. It is the aggregate root
// that manages the fulfillment lifecycle from checkout through preparation,
// pickup, and delivery.
//
// Order follows these invariants:
//   - Must have valid unique, customer, and restaurant identifiers
//   - Must contain at least one line item
//   - The total amount equals the sum of item subtotals plus the delivery fee
//     at creation time and is never recomputed afterward
//   - The customer and restaurant associations are immutable after creation
//   - Status transitions follow the defined workflow and are role-scoped:
//     the state machine itself owns the authorization checks
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the paying customer
	customerID kernel.UUID

	// restaurantID is the restaurant fulfilling the order
	restaurantID kernel.UUID

	// driverID is the assigned driver's ID (nil until claimed)
	driverID *kernel.UUID

	// items are the immutable lines with price snapshots
	items []Item

	// totalAmount is the checkout total snapshot (items plus delivery fee)
	totalAmount kernel.Money

	// status is the current state in the fulfillment lifecycle
	status Status

	// paymentStatus is the settlement state of the payment
	paymentStatus PaymentStatus

	// paymentMethod is the rail the order was paid with
	paymentMethod PaymentMethod

	// deliveryAddress is where the order is brought
	deliveryAddress string

	// phone is the contact number for the delivery
	phone string

	// specialInstructions is optional free text from the customer
	specialInstructions string

	// createdAt is the checkout timestamp
	createdAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new wallet-paid Order from cart snapshot items.
//
// The order starts in Confirmed status with payment marked paid, matching the
// wallet checkout path which debits the balance in the same transaction.
// The total amount is computed once as the sum of item subtotals plus the
// delivery fee and never recomputed from items afterward.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The paying customer
//   - restaurantID: The restaurant fulfilling the order
//   - items: Line items with price snapshots (at least one)
//   - deliveryFee: Fixed fee added to the item subtotals
//   - deliveryAddress: Destination address (required)
//   - phone: Contact number for the delivery
//   - instructions: Optional free-text instructions
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	items []Item,
	deliveryFee kernel.Money,
	deliveryAddress, phone, instructions string,
) (*Order, error) {
	o := &Order{
		status:        StatusConfirmed,
		paymentStatus: PaymentPaid,
		paymentMethod: MethodWallet,
		createdAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.phone = phone
	o.specialInstructions = instructions

	total := kernel.Zero()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total.Add(deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, the total amount and all lifecycle fields are taken as
// stored rather than recomputed, preserving the creation-time snapshot.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod PaymentMethod,
	deliveryAddress, phone, instructions string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		paymentStatus.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o.driverID = driverID
	o.totalAmount = totalAmount
	o.status = status
	o.paymentStatus = paymentStatus
	o.paymentMethod = paymentMethod
	o.phone = phone
	o.specialInstructions = instructions
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the paying customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's ID.
// Returns nil if no driver has claimed the order yet.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Items returns the order's immutable line items.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the checkout total snapshot.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Subtotal returns the sum of item subtotals, excluding the delivery fee.
func (o *Order) Subtotal() kernel.Money {
	total := kernel.Zero()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the settlement state of the payment.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment rail used.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Phone returns the delivery contact number.
func (o *Order) Phone() string {
	return o.phone
}

// SpecialInstructions returns the customer's free-text instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvancePreparation moves the order one preparation step forward
// (Confirmed -> Preparing, Preparing -> Ready).
//
// Authorization is owned by the state machine: only the owner of the order's
// restaurant may advance preparation, so callers pass both the acting user
// and the restaurant owner resolved from the catalog. A mismatch fails with
// ErrForbiddenRole and performs no mutation.
func (o *Order) AdvancePreparation(actorID, restaurantOwnerID kernel.UUID) error {
	if !actorID.IsEqual(restaurantOwnerID) {
		return ErrForbiddenRole
	}

	newStatus, err := o.status.AdvancePreparation()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Claim assigns the order to a driver and moves it to OutForDelivery.
//
// A claim succeeds only while the order is Ready and unassigned; anything
// else fails with ErrOrderNotAvailable. Under concurrent access the claim is
// performed as a conditional update at the storage layer so that two drivers
// racing for the same order can never both succeed; this method expresses
// the same rule for in-memory state.
func (o *Order) Claim(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return ErrOrderNotAvailable
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return ErrOrderNotAvailable
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// CompleteDelivery marks the order as delivered.
//
// Only the assigned driver may complete the delivery; any other driver fails
// with ErrNotAssignedDriver. The order must be OutForDelivery. Delivered is
// terminal: no further mutation is allowed afterward.
func (o *Order) CompleteDelivery(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return ErrNotAssignedDriver
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order from any non-terminal state.
//
// Only the order's customer or an admin may cancel; the admin path goes
// through ForceStatus instead when it needs to bypass the terminal check.
func (o *Order) Cancel(actorID kernel.UUID) error {
	if !o.customerID.IsEqual(actorID) {
		return ErrForbiddenRole
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CancelByAdmin cancels the order regardless of who placed it. Terminal
// orders still cannot be cancelled. Admin override only; callers are
// responsible for verifying the actor's admin role.
func (o *Order) CancelByAdmin() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ForceStatus sets the order status to any valid value, bypassing the normal
// transition and role rules. Admin override only; callers are responsible for
// verifying the actor's admin role and for logging the override.
func (o *Order) ForceStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReassignDriver sets or clears the driver reference, bypassing the claim
// rules. Admin override only.
func (o *Order) ReassignDriver(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	o.driverID = driverID
	return nil
}

// ExpirePayment abandons an order whose payment confirmation never arrived:
// the order is cancelled and its payment marked failed. Only orders still in
// PaymentPending can expire.
func (o *Order) ExpirePayment() error {
	if o.paymentStatus != PaymentPending {
		return errs.NewValueIsInvalidError("payment status")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentFailed
	return nil
}

// IsActive reports whether the order still occupies a non-terminal status.
// Users and restaurants with active orders cannot be deleted.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

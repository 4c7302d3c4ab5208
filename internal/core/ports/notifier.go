package ports

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
)

// OrderConfirmedEvent is published after a checkout commits. It addresses
// both the customer and the restaurant owner and carries the order lines so
// consumers can render a receipt without a lookup.
type OrderConfirmedEvent struct {
	OrderID           kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	RestaurantOwnerID kernel.UUID
	TotalAmount       kernel.Money
	Items             []OrderConfirmedItem
}

// OrderConfirmedItem is one order line carried in an OrderConfirmedEvent.
type OrderConfirmedItem struct {
	DishID   kernel.UUID
	Title    string
	Quantity int
	Price    kernel.Money
}

// StatusChangedEvent is published after an order status transition commits.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	OldStatus  string
	NewStatus  string
}

// WalletChangedEvent is published after a wallet mutation commits.
type WalletChangedEvent struct {
	UserID     kernel.UUID
	Operation  string
	Amount     kernel.Money
	NewBalance kernel.Money
}

// Notifier publishes best-effort notifications about committed state changes.
//
// Notifications are strictly fire-and-forget: the methods return no error and
// implementations must never fail or delay the calling operation. Handlers
// call the notifier only after the transaction committed.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, event OrderConfirmedEvent)
	NotifyStatusChanged(ctx context.Context, event StatusChangedEvent)
	NotifyWalletChanged(ctx context.Context, event WalletChangedEvent)
}

// NoopNotifier discards all notifications. Used when no broker is configured
// and as the default in tests.
type NoopNotifier struct{}

func (NoopNotifier) NotifyOrderConfirmed(context.Context, OrderConfirmedEvent) {}

func (NoopNotifier) NotifyStatusChanged(context.Context, StatusChangedEvent) {}

func (NoopNotifier) NotifyWalletChanged(context.Context, WalletChangedEvent) {}

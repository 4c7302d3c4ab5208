package commands

import (
	"context"
	"log/slog"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/services"
	"msosihub/internal/core/ports"
)

// CheckoutCommandHandler converts a cart into a wallet-paid order.
//
// The wallet debit and the order insert happen in one transaction: either the
// customer pays and the order exists, or neither happened. The conditional
// debit inside the repository is what keeps two concurrent checkouts from
// overdrawing the wallet. The cart is cleared and notifications sent only
// after the transaction committed.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	cartStore  ports.CartStore
	calculator services.ReceiptCalculator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	cartStore ports.CartStore,
	calculator services.ReceiptCalculator,
	notifier ports.Notifier,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		calculator: calculator,
		notifier:   notifier,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command and returns the new order's ID.
//
// Fails with cart.ErrEmptyCart for an empty cart and user.ErrInsufficientFunds
// when the wallet does not cover the receipt total; in both cases nothing is
// persisted and the cart is left intact.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	c, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	receipt, err := h.calculator.Calculate(c)
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), cmd.CustomerID(), *c.RestaurantID(),
		receipt.Items, receipt.DeliveryFee,
		cmd.DeliveryAddress(), cmd.Phone(), cmd.SpecialInstructions(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newBalance, err := uow.UserRepository().DebitWallet(ctx, cmd.CustomerID(), receipt.Total)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	rst, err := uow.RestaurantRepository().Get(ctx, newOrder.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	// Post-commit: cart clearing and notifications are best effort.
	if err = h.cartStore.Clear(ctx, cmd.CustomerID()); err != nil {
		h.logger.WarnContext(ctx, "Failed to clear cart after checkout",
			"customer_id", cmd.CustomerID().String(),
			"order_id", newOrder.ID().String(),
			"error", err)
	}

	eventItems := make([]ports.OrderConfirmedItem, 0, len(newOrder.Items()))
	for _, item := range newOrder.Items() {
		eventItems = append(eventItems, ports.OrderConfirmedItem{
			DishID:   item.DishID(),
			Title:    item.Title(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	h.notifier.NotifyOrderConfirmed(ctx, ports.OrderConfirmedEvent{
		OrderID:           newOrder.ID(),
		CustomerID:        newOrder.CustomerID(),
		RestaurantID:      newOrder.RestaurantID(),
		RestaurantOwnerID: rst.OwnerID(),
		TotalAmount:       newOrder.TotalAmount(),
		Items:             eventItems,
	})
	h.notifier.NotifyWalletChanged(ctx, ports.WalletChangedEvent{
		UserID:     cmd.CustomerID(),
		Operation:  "debit",
		Amount:     receipt.Total,
		NewBalance: newBalance,
	})

	return newOrder.ID(), nil
}

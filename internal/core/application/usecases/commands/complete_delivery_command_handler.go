package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// CompleteDeliveryCommandHandler marks an out-for-delivery order as delivered.
// Only the driver assigned to the order may complete it.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()
	if err = ord.CompleteDelivery(cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, ports.StatusChangedEvent{
		OrderID:    ord.ID(),
		CustomerID: ord.CustomerID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  ord.Status().String(),
	})

	return nil
}

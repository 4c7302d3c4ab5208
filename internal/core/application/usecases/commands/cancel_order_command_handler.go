package commands

import (
	"context"

	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on behalf of its customer or an
// admin. Delivered and already-cancelled orders stay as they are.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancel command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()

	if actor.Role() == user.RoleAdmin {
		err = ord.CancelByAdmin()
	} else {
		err = ord.Cancel(cmd.ActorID())
	}
	if err != nil {
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

package commands

import (
	"context"
	"log/slog"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
)

// AdminSetOrderStatusCommandHandler forces an order into an arbitrary status
// and optionally reassigns or clears its driver, bypassing the normal
// transition and role rules. Support tooling only; every override is logged.
type AdminSetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAdminSetOrderStatusCommandHandler creates a handler for status overrides.
func NewAdminSetOrderStatusCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier, logger *slog.Logger,
) AdminSetOrderStatusCommandHandler {
	return AdminSetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "admin_set_order_status"),
	}
}

// Handle processes the override command.
func (h *AdminSetOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdminSetOrderStatusCommand) error {
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

	if actor.Role() != user.RoleAdmin {
		return order.ErrForbiddenRole
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()
	if err = ord.ForceStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if cmd.TouchesDriver() {
		if err = ord.ReassignDriver(cmd.DriverID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order status overridden",
		"order_id", ord.ID().String(),
		"admin_id", cmd.ActorID().String(),
		"old_status", oldStatus.String(),
		"new_status", ord.Status().String(),
		"driver_changed", cmd.TouchesDriver(),
	)

	h.notifier.NotifyStatusChanged(ctx, ports.StatusChangedEvent{
		OrderID:    ord.ID(),
		CustomerID: ord.CustomerID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  ord.Status().String(),
	})

	return nil
}

package commands

import (
	"context"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
)

// ClaimDeliveryCommandHandler assigns a ready order to a driver.
//
// The assignment itself is a single conditional update inside the repository,
// so when several drivers race for the same order exactly one claim succeeds
// and the rest fail with order.ErrOrderNotAvailable.
type ClaimDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewClaimDeliveryCommandHandler creates a handler for delivery claims.
func NewClaimDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ClaimDeliveryCommandHandler {
	return ClaimDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the claim command.
func (h *ClaimDeliveryCommandHandler) Handle(ctx context.Context, cmd ClaimDeliveryCommand) error {
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

	driver, err := uow.UserRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if driver.Role() != user.RoleDriver {
		return order.ErrForbiddenRole
	}

	if err = uow.OrderRepository().ClaimForDriver(ctx, cmd.OrderID(), cmd.DriverID()); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, ports.StatusChangedEvent{
		OrderID:    ord.ID(),
		CustomerID: ord.CustomerID(),
		OldStatus:  order.StatusReady.String(),
		NewStatus:  ord.Status().String(),
	})

	return nil
}

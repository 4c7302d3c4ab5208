package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// AdvancePreparationCommandHandler moves an order along the preparation chain
// on behalf of the owning restaurant.
//
// Only the owner of the restaurant the order was placed at may advance it;
// anyone else gets order.ErrForbiddenRole and the order is left untouched.
type AdvancePreparationCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAdvancePreparationCommandHandler creates a handler for preparation advances.
func NewAdvancePreparationCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AdvancePreparationCommandHandler {
	return AdvancePreparationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the advance command.
func (h *AdvancePreparationCommandHandler) Handle(ctx context.Context, cmd AdvancePreparationCommand) error {
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

	rst, err := uow.RestaurantRepository().Get(ctx, ord.RestaurantID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()
	if err = ord.AdvancePreparation(cmd.ActorID(), rst.OwnerID()); err != nil {
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

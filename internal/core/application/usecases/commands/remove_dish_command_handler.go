package commands

import (
	"context"
)

// RemoveDishCommandHandler deletes a dish from the acting owner's menu.
// Looking the dish up through the owner's restaurant keeps owners from
// removing dishes they do not own. Carts holding the dish keep their
// snapshots; checkout prices from the cart, not the catalog.
type RemoveDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRemoveDishCommandHandler creates a handler for dish removal.
func NewRemoveDishCommandHandler(uowFactory RestaurantUoWFactory) RemoveDishCommandHandler {
	return RemoveDishCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal command.
func (h *RemoveDishCommandHandler) Handle(ctx context.Context, cmd RemoveDishCommand) error {
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

	rst, err := uow.RestaurantRepository().GetByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = rst.RemoveDish(cmd.DishID()); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().DeleteDish(ctx, cmd.DishID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SetDishAvailabilityCommandHandler toggles a dish on the acting owner's
// menu. Looking the dish up through the owner's restaurant keeps owners from
// toggling dishes they do not own.
type SetDishAvailabilityCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSetDishAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetDishAvailabilityCommandHandler(uowFactory RestaurantUoWFactory) SetDishAvailabilityCommandHandler {
	return SetDishAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle processes the toggle command.
func (h *SetDishAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDishAvailabilityCommand) error {
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

	dish, err := rst.Dish(cmd.DishID())
	if err != nil {
		return err
	}

	dish.SetAvailability(cmd.Available())

	if err = uow.RestaurantRepository().Update(ctx, rst); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
)

// AddDishCommandHandler adds a dish to the acting owner's restaurant menu.
// New dishes start available.
type AddDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddDishCommandHandler creates a handler for adding dishes.
func NewAddDishCommandHandler(uowFactory RestaurantUoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{uowFactory: uowFactory}
}

// Handle processes the add command and returns the new dish's ID.
func (h *AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rst, err := uow.RestaurantRepository().GetByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	dish, err := rst.AddDish(
		kernel.NewUUID(), cmd.Title(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.Inventory(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.RestaurantRepository().Update(ctx, rst); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return dish.ID(), nil
}

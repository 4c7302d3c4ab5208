package commands

import (
	"context"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
)

// AdminSetRestaurantActiveCommandHandler toggles whether a restaurant accepts
// new orders. Deactivation does not touch orders already in flight.
type AdminSetRestaurantActiveCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdminSetRestaurantActiveCommandHandler creates a handler for restaurant toggles.
func NewAdminSetRestaurantActiveCommandHandler(uowFactory UoWFactory) AdminSetRestaurantActiveCommandHandler {
	return AdminSetRestaurantActiveCommandHandler{uowFactory: uowFactory}
}

// Handle processes the toggle command.
func (h *AdminSetRestaurantActiveCommandHandler) Handle(ctx context.Context, cmd AdminSetRestaurantActiveCommand) error {
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

	rst, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	rst.SetActive(cmd.Active())

	if err = uow.RestaurantRepository().Update(ctx, rst); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
)

// AdminUpdateRestaurantInfoCommandHandler replaces a restaurant's public
// details. Existing orders keep their snapshots and are unaffected.
type AdminUpdateRestaurantInfoCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdminUpdateRestaurantInfoCommandHandler creates a handler for detail updates.
func NewAdminUpdateRestaurantInfoCommandHandler(uowFactory UoWFactory) AdminUpdateRestaurantInfoCommandHandler {
	return AdminUpdateRestaurantInfoCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update command.
func (h *AdminUpdateRestaurantInfoCommandHandler) Handle(ctx context.Context, cmd AdminUpdateRestaurantInfoCommand) error {
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

	if err = rst.UpdateInfo(cmd.Name(), cmd.Description(), cmd.Address(), cmd.Phone()); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Update(ctx, rst); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
)

// AdminDeleteRestaurantCommandHandler removes a restaurant together with its
// dish catalog. Refused while the restaurant still has orders in flight.
type AdminDeleteRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdminDeleteRestaurantCommandHandler creates a handler for restaurant deletion.
func NewAdminDeleteRestaurantCommandHandler(uowFactory UoWFactory) AdminDeleteRestaurantCommandHandler {
	return AdminDeleteRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delete command.
func (h *AdminDeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd AdminDeleteRestaurantCommand) error {
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

	active, err := uow.OrderRepository().CountActiveByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if active > 0 {
		return ErrHasActiveOrders
	}

	if err = uow.RestaurantRepository().Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

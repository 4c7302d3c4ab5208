package commands

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
)

// ErrHasActiveOrders is returned when a user or restaurant still has
// non-terminal orders and therefore cannot be deleted.
var ErrHasActiveOrders = errors.New("cannot delete while active orders exist")

// AdminDeleteUserCommandHandler removes a user account.
//
// Deletion is refused while the user has orders in flight; the active-order
// count and the delete run in one transaction so a checkout racing the delete
// cannot slip through.
type AdminDeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdminDeleteUserCommandHandler creates a handler for user deletion.
func NewAdminDeleteUserCommandHandler(uowFactory UoWFactory) AdminDeleteUserCommandHandler {
	return AdminDeleteUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delete command.
func (h *AdminDeleteUserCommandHandler) Handle(ctx context.Context, cmd AdminDeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorID().IsEqual(cmd.TargetID()) {
		return ErrForbiddenSelfAction
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

	active, err := uow.OrderRepository().CountActiveByUser(ctx, cmd.TargetID())
	if err != nil {
		return err
	}

	if active > 0 {
		return ErrHasActiveOrders
	}

	if err = uow.UserRepository().Delete(ctx, cmd.TargetID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

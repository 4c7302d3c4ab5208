package commands

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
)

// ErrForbiddenSelfAction is returned when an admin targets their own account
// with a mutation that must not be self-applied, such as changing their own
// role or deleting themselves.
var ErrForbiddenSelfAction = errors.New("admins cannot perform this action on their own account")

// AdminChangeUserRoleCommandHandler changes a user's role.
// Admins cannot change their own role.
type AdminChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAdminChangeUserRoleCommandHandler creates a handler for role changes.
func NewAdminChangeUserRoleCommandHandler(uowFactory UserUoWFactory) AdminChangeUserRoleCommandHandler {
	return AdminChangeUserRoleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the role change command.
func (h *AdminChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd AdminChangeUserRoleCommand) error {
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

	target, err := uow.UserRepository().Get(ctx, cmd.TargetID())
	if err != nil {
		return err
	}

	if err = target.ChangeRole(cmd.NewRole()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

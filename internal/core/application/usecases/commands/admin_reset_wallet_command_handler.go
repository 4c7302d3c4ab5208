package commands

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
)

// AdminResetWalletCommandHandler zeroes another user's wallet. The event
// carries the amount that was removed so the audit trail stays complete.
type AdminResetWalletCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewAdminResetWalletCommandHandler creates a handler for wallet resets.
func NewAdminResetWalletCommandHandler(uowFactory UserUoWFactory, notifier ports.Notifier) AdminResetWalletCommandHandler {
	return AdminResetWalletCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reset command.
func (h *AdminResetWalletCommandHandler) Handle(ctx context.Context, cmd AdminResetWalletCommand) error {
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

	previousBalance, err := uow.UserRepository().ResetWallet(ctx, cmd.TargetID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyWalletChanged(ctx, ports.WalletChangedEvent{
		UserID:     cmd.TargetID(),
		Operation:  "reset",
		Amount:     previousBalance,
		NewBalance: kernel.Zero(),
	})

	return nil
}

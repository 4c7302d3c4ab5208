package commands

import (
	"context"

	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
)

// AdminCreditWalletCommandHandler credits another user's wallet on behalf of
// an admin. Used for refund adjustments and promotional credits.
type AdminCreditWalletCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewAdminCreditWalletCommandHandler creates a handler for admin wallet credits.
func NewAdminCreditWalletCommandHandler(uowFactory UserUoWFactory, notifier ports.Notifier) AdminCreditWalletCommandHandler {
	return AdminCreditWalletCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the credit command.
func (h *AdminCreditWalletCommandHandler) Handle(ctx context.Context, cmd AdminCreditWalletCommand) error {
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

	newBalance, err := uow.UserRepository().CreditWallet(ctx, cmd.TargetID(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyWalletChanged(ctx, ports.WalletChangedEvent{
		UserID:     cmd.TargetID(),
		Operation:  "credit",
		Amount:     cmd.Amount(),
		NewBalance: newBalance,
	})

	return nil
}

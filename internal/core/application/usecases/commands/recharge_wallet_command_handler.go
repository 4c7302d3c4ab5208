package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// RechargeWalletCommandHandler handles wallet top-ups.
// The credit is a single atomic statement in the repository; concurrent
// recharges never lose updates.
type RechargeWalletCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewRechargeWalletCommandHandler creates a handler for wallet recharges.
func NewRechargeWalletCommandHandler(uowFactory UserUoWFactory, notifier ports.Notifier) RechargeWalletCommandHandler {
	return RechargeWalletCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the recharge command.
func (h *RechargeWalletCommandHandler) Handle(ctx context.Context, cmd RechargeWalletCommand) error {
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

	newBalance, err := uow.UserRepository().CreditWallet(ctx, cmd.UserID(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyWalletChanged(ctx, ports.WalletChangedEvent{
		UserID:     cmd.UserID(),
		Operation:  "credit",
		Amount:     cmd.Amount(),
		NewBalance: newBalance,
	})

	return nil
}

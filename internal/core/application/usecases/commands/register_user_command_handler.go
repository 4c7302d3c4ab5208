package commands

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/core/ports"
	"msosihub/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the email is taken by another account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler creates new user accounts.
//
// Customers receive a welcome bonus credited in the same transaction as the
// account insert, so no account ever exists half-provisioned.
type RegisterUserCommandHandler struct {
	uowFactory   UserUoWFactory
	notifier     ports.Notifier
	welcomeBonus kernel.Money
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory, notifier ports.Notifier, welcomeBonus kernel.Money,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory:   uowFactory,
		notifier:     notifier,
		welcomeBonus: welcomeBonus,
	}
}

// Handle processes the registration command and returns the new user's ID.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err == nil {
		return kernel.UUID{}, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return kernel.UUID{}, err
	}

	bonusGranted := cmd.Role() == user.RoleCustomer && !h.welcomeBonus.IsZero()
	if bonusGranted {
		if _, err = uow.UserRepository().CreditWallet(ctx, newUser.ID(), h.welcomeBonus); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if bonusGranted {
		h.notifier.NotifyWalletChanged(ctx, ports.WalletChangedEvent{
			UserID:     newUser.ID(),
			Operation:  "credit",
			Amount:     h.welcomeBonus,
			NewBalance: h.welcomeBonus,
		})
	}

	return newUser.ID(), nil
}

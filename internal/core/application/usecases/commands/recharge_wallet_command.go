package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/guard"
)

var ErrRechargeWalletCommandIsNotConstructed = errors.New(
	"RechargeWalletCommand must be created via NewRechargeWalletCommand constructor",
)

// RechargeWalletCommand represents a request to top up a user's own wallet.
type RechargeWalletCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewRechargeWalletCommand creates a command to credit a wallet.
// The amount must be greater than zero.
func NewRechargeWalletCommand(userID kernel.UUID, amount kernel.Money) (RechargeWalletCommand, error) {
	cmd := RechargeWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAmount(amount),
	); err != nil {
		return RechargeWalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RechargeWalletCommand) Validate() error {
	return c.guard.Validate(ErrRechargeWalletCommandIsNotConstructed)
}

// UserID returns the wallet owner's identifier.
func (c RechargeWalletCommand) UserID() kernel.UUID {
	return c.userID
}

// Amount returns the credit amount.
func (c RechargeWalletCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RechargeWalletCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RechargeWalletCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return user.ErrInvalidAmount
	}
	c.amount = amount
	return nil
}

package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/guard"
)

var ErrAdminCreditWalletCommandIsNotConstructed = errors.New(
	"AdminCreditWalletCommand must be created via NewAdminCreditWalletCommand constructor",
)

// AdminCreditWalletCommand represents an admin crediting another user's wallet.
type AdminCreditWalletCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID
	amount   kernel.Money

	guard guard.ConstructorGuard
}

// NewAdminCreditWalletCommand creates a command to credit a user's wallet.
func NewAdminCreditWalletCommand(
	actorID, targetID kernel.UUID, amount kernel.Money,
) (AdminCreditWalletCommand, error) {
	cmd := AdminCreditWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setTargetID(targetID),
		cmd.setAmount(amount),
	); err != nil {
		return AdminCreditWalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminCreditWalletCommand) Validate() error {
	return c.guard.Validate(ErrAdminCreditWalletCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminCreditWalletCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TargetID returns the wallet owner's identifier.
func (c AdminCreditWalletCommand) TargetID() kernel.UUID {
	return c.targetID
}

// Amount returns the credit amount.
func (c AdminCreditWalletCommand) Amount() kernel.Money {
	return c.amount
}

func (c *AdminCreditWalletCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminCreditWalletCommand) setTargetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

func (c *AdminCreditWalletCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return user.ErrInvalidAmount
	}
	c.amount = amount
	return nil
}

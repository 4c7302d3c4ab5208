package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdminResetWalletCommandIsNotConstructed = errors.New(
	"AdminResetWalletCommand must be created via NewAdminResetWalletCommand constructor",
)

// AdminResetWalletCommand represents an admin zeroing another user's wallet.
type AdminResetWalletCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdminResetWalletCommand creates a command to reset a wallet to zero.
func NewAdminResetWalletCommand(actorID, targetID kernel.UUID) (AdminResetWalletCommand, error) {
	cmd := AdminResetWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setTargetID(targetID),
	); err != nil {
		return AdminResetWalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminResetWalletCommand) Validate() error {
	return c.guard.Validate(ErrAdminResetWalletCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminResetWalletCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TargetID returns the wallet owner's identifier.
func (c AdminResetWalletCommand) TargetID() kernel.UUID {
	return c.targetID
}

func (c *AdminResetWalletCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminResetWalletCommand) setTargetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdminDeleteUserCommandIsNotConstructed = errors.New(
	"AdminDeleteUserCommand must be created via NewAdminDeleteUserCommand constructor",
)

// AdminDeleteUserCommand represents an admin removing a user account.
type AdminDeleteUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdminDeleteUserCommand creates a command to delete a user.
func NewAdminDeleteUserCommand(actorID, targetID kernel.UUID) (AdminDeleteUserCommand, error) {
	cmd := AdminDeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setTargetID(targetID),
	); err != nil {
		return AdminDeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminDeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrAdminDeleteUserCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminDeleteUserCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TargetID returns the identifier of the user to delete.
func (c AdminDeleteUserCommand) TargetID() kernel.UUID {
	return c.targetID
}

func (c *AdminDeleteUserCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminDeleteUserCommand) setTargetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

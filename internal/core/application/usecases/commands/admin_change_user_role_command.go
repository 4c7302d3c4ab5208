package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/guard"
)

var ErrAdminChangeUserRoleCommandIsNotConstructed = errors.New(
	"AdminChangeUserRoleCommand must be created via NewAdminChangeUserRoleCommand constructor",
)

// AdminChangeUserRoleCommand represents an admin changing another user's role.
type AdminChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID
	newRole  user.Role

	guard guard.ConstructorGuard
}

// NewAdminChangeUserRoleCommand creates a command to change a user's role.
func NewAdminChangeUserRoleCommand(
	actorID, targetID kernel.UUID, newRole user.Role,
) (AdminChangeUserRoleCommand, error) {
	cmd := AdminChangeUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setTargetID(targetID),
		cmd.setNewRole(newRole),
	); err != nil {
		return AdminChangeUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrAdminChangeUserRoleCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminChangeUserRoleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TargetID returns the identifier of the user whose role changes.
func (c AdminChangeUserRoleCommand) TargetID() kernel.UUID {
	return c.targetID
}

// NewRole returns the role to assign.
func (c AdminChangeUserRoleCommand) NewRole() user.Role {
	return c.newRole
}

func (c *AdminChangeUserRoleCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminChangeUserRoleCommand) setTargetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.targetID = id
	return nil
}

func (c *AdminChangeUserRoleCommand) setNewRole(r user.Role) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.newRole = r
	return nil
}

package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrRemoveDishCommandIsNotConstructed = errors.New(
	"RemoveDishCommand must be created via NewRemoveDishCommand constructor",
)

// RemoveDishCommand represents an owner deleting one of their dishes from
// the menu.
type RemoveDishCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	dishID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDishCommand creates a command to remove a dish from the menu.
func NewRemoveDishCommand(ownerID, dishID kernel.UUID) (RemoveDishCommand, error) {
	cmd := RemoveDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setDishID(dishID),
	); err != nil {
		return RemoveDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDishCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDishCommandIsNotConstructed)
}

// OwnerID returns the acting owner's identifier.
func (c RemoveDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// DishID returns the target dish's identifier.
func (c RemoveDishCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c *RemoveDishCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *RemoveDishCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dishID = id
	return nil
}

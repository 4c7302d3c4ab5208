package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrSetDishAvailabilityCommandIsNotConstructed = errors.New(
	"SetDishAvailabilityCommand must be created via NewSetDishAvailabilityCommand constructor",
)

// SetDishAvailabilityCommand represents an owner toggling whether one of
// their dishes can be ordered.
type SetDishAvailabilityCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	dishID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetDishAvailabilityCommand creates a command to toggle dish availability.
func NewSetDishAvailabilityCommand(
	ownerID, dishID kernel.UUID, available bool,
) (SetDishAvailabilityCommand, error) {
	cmd := SetDishAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setDishID(dishID),
	); err != nil {
		return SetDishAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDishAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDishAvailabilityCommandIsNotConstructed)
}

// OwnerID returns the acting owner's identifier.
func (c SetDishAvailabilityCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// DishID returns the target dish's identifier.
func (c SetDishAvailabilityCommand) DishID() kernel.UUID {
	return c.dishID
}

// Available returns the desired availability flag.
func (c SetDishAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetDishAvailabilityCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *SetDishAvailabilityCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dishID = id
	return nil
}

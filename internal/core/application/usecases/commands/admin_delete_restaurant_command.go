package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdminDeleteRestaurantCommandIsNotConstructed = errors.New(
	"AdminDeleteRestaurantCommand must be created via NewAdminDeleteRestaurantCommand constructor",
)

// AdminDeleteRestaurantCommand represents an admin removing a restaurant and
// its dish catalog.
type AdminDeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdminDeleteRestaurantCommand creates a command to delete a restaurant.
func NewAdminDeleteRestaurantCommand(actorID, restaurantID kernel.UUID) (AdminDeleteRestaurantCommand, error) {
	cmd := AdminDeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return AdminDeleteRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminDeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAdminDeleteRestaurantCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminDeleteRestaurantCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RestaurantID returns the target restaurant's identifier.
func (c AdminDeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *AdminDeleteRestaurantCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminDeleteRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

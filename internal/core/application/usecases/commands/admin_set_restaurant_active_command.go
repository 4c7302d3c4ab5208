package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdminSetRestaurantActiveCommandIsNotConstructed = errors.New(
	"AdminSetRestaurantActiveCommand must be created via NewAdminSetRestaurantActiveCommand constructor",
)

// AdminSetRestaurantActiveCommand represents an admin toggling whether a
// restaurant accepts new orders.
type AdminSetRestaurantActiveCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	restaurantID kernel.UUID
	active       bool

	guard guard.ConstructorGuard
}

// NewAdminSetRestaurantActiveCommand creates a command to toggle a restaurant.
func NewAdminSetRestaurantActiveCommand(
	actorID, restaurantID kernel.UUID, active bool,
) (AdminSetRestaurantActiveCommand, error) {
	cmd := AdminSetRestaurantActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return AdminSetRestaurantActiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminSetRestaurantActiveCommand) Validate() error {
	return c.guard.Validate(ErrAdminSetRestaurantActiveCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminSetRestaurantActiveCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RestaurantID returns the target restaurant's identifier.
func (c AdminSetRestaurantActiveCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Active returns the desired availability flag.
func (c AdminSetRestaurantActiveCommand) Active() bool {
	return c.active
}

func (c *AdminSetRestaurantActiveCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminSetRestaurantActiveCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

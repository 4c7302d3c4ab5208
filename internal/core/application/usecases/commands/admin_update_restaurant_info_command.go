package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdminUpdateRestaurantInfoCommandIsNotConstructed = errors.New(
	"AdminUpdateRestaurantInfoCommand must be created via NewAdminUpdateRestaurantInfoCommand constructor",
)

// AdminUpdateRestaurantInfoCommand represents an admin replacing a
// restaurant's public details.
type AdminUpdateRestaurantInfoCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	address      string
	phone        string

	guard guard.ConstructorGuard
}

// NewAdminUpdateRestaurantInfoCommand creates a command to update restaurant details.
func NewAdminUpdateRestaurantInfoCommand(
	actorID, restaurantID kernel.UUID, name, description, address, phone string,
) (AdminUpdateRestaurantInfoCommand, error) {
	cmd := AdminUpdateRestaurantInfoCommand{
		name:        name,
		description: description,
		address:     address,
		phone:       phone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return AdminUpdateRestaurantInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminUpdateRestaurantInfoCommand) Validate() error {
	return c.guard.Validate(ErrAdminUpdateRestaurantInfoCommandIsNotConstructed)
}

// ActorID returns the admin's identifier.
func (c AdminUpdateRestaurantInfoCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RestaurantID returns the target restaurant's identifier.
func (c AdminUpdateRestaurantInfoCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new restaurant name.
func (c AdminUpdateRestaurantInfoCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c AdminUpdateRestaurantInfoCommand) Description() string {
	return c.description
}

// Address returns the new address.
func (c AdminUpdateRestaurantInfoCommand) Address() string {
	return c.address
}

// Phone returns the new contact number.
func (c AdminUpdateRestaurantInfoCommand) Phone() string {
	return c.phone
}

func (c *AdminUpdateRestaurantInfoCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminUpdateRestaurantInfoCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var ErrSetupRestaurantCommandIsNotConstructed = errors.New(
	"SetupRestaurantCommand must be created via NewSetupRestaurantCommand constructor",
)

// SetupRestaurantCommand represents a restaurant owner creating their venue.
type SetupRestaurantCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	name        string
	description string
	address     string
	phone       string

	guard guard.ConstructorGuard
}

// NewSetupRestaurantCommand creates a command to set up a restaurant.
func NewSetupRestaurantCommand(
	ownerID kernel.UUID, name, description, address, phone string,
) (SetupRestaurantCommand, error) {
	cmd := SetupRestaurantCommand{
		description: description,
		phone:       phone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return SetupRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetupRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrSetupRestaurantCommandIsNotConstructed)
}

// OwnerID returns the owning user's identifier.
func (c SetupRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the restaurant name.
func (c SetupRestaurantCommand) Name() string {
	return c.name
}

// Description returns the restaurant description.
func (c SetupRestaurantCommand) Description() string {
	return c.description
}

// Address returns the restaurant address.
func (c SetupRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant contact number.
func (c SetupRestaurantCommand) Phone() string {
	return c.phone
}

func (c *SetupRestaurantCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *SetupRestaurantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *SetupRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

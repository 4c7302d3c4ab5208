package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var ErrAddDishCommandIsNotConstructed = errors.New(
	"AddDishCommand must be created via NewAddDishCommand constructor",
)

// AddDishCommand represents a restaurant owner adding a dish to their menu.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	title       string
	description string
	price       kernel.Money
	category    string
	inventory   int

	guard guard.ConstructorGuard
}

// NewAddDishCommand creates a command to add a dish.
func NewAddDishCommand(
	ownerID kernel.UUID, title, description string, price kernel.Money, category string, inventory int,
) (AddDishCommand, error) {
	cmd := AddDishCommand{
		description: description,
		price:       price,
		category:    category,
		inventory:   inventory,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setTitle(title),
	); err != nil {
		return AddDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

// OwnerID returns the acting owner's identifier.
func (c AddDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the dish title.
func (c AddDishCommand) Title() string {
	return c.title
}

// Description returns the dish description.
func (c AddDishCommand) Description() string {
	return c.description
}

// Price returns the catalog price.
func (c AddDishCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu category.
func (c AddDishCommand) Category() string {
	return c.category
}

// Inventory returns the advisory inventory counter.
func (c AddDishCommand) Inventory() int {
	return c.inventory
}

func (c *AddDishCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *AddDishCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

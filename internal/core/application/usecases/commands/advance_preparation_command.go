package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrAdvancePreparationCommandIsNotConstructed = errors.New(
	"AdvancePreparationCommand must be created via NewAdvancePreparationCommand constructor",
)

// AdvancePreparationCommand represents a restaurant owner's request to move an
// order one step along the preparation chain (confirmed to preparing to ready).
type AdvancePreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvancePreparationCommand creates a command to advance order preparation.
func NewAdvancePreparationCommand(orderID, actorID kernel.UUID) (AdvancePreparationCommand, error) {
	cmd := AdvancePreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return AdvancePreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvancePreparationCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePreparationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvancePreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the user requesting the transition.
func (c AdvancePreparationCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AdvancePreparationCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvancePreparationCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

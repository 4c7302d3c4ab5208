package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var ErrAdminSetOrderStatusCommandIsNotConstructed = errors.New(
	"AdminSetOrderStatusCommand must be created via NewAdminSetOrderStatusCommand constructor",
)

// AdminSetOrderStatusCommand represents an admin override of an order's status
// and, optionally, its driver assignment.
type AdminSetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorID     kernel.UUID
	newStatus   order.Status
	driverID    *kernel.UUID
	clearDriver bool

	guard guard.ConstructorGuard
}

// NewAdminSetOrderStatusCommand creates a command to force an order status.
// A non-nil driverID reassigns the order; clearDriver removes the assignment.
// The two are mutually exclusive.
func NewAdminSetOrderStatusCommand(
	orderID, actorID kernel.UUID, newStatus order.Status, driverID *kernel.UUID, clearDriver bool,
) (AdminSetOrderStatusCommand, error) {
	cmd := AdminSetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setNewStatus(newStatus),
		cmd.setDriver(driverID, clearDriver),
	); err != nil {
		return AdminSetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminSetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdminSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdminSetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the admin's identifier.
func (c AdminSetOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// NewStatus returns the status to force.
func (c AdminSetOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// DriverID returns the driver to assign, or nil when the assignment is
// untouched or cleared.
func (c AdminSetOrderStatusCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// ClearDriver reports whether the driver assignment should be removed.
func (c AdminSetOrderStatusCommand) ClearDriver() bool {
	return c.clearDriver
}

// TouchesDriver reports whether the command changes the driver assignment.
func (c AdminSetOrderStatusCommand) TouchesDriver() bool {
	return c.driverID != nil || c.clearDriver
}

func (c *AdminSetOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdminSetOrderStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AdminSetOrderStatusCommand) setNewStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.newStatus = s
	return nil
}

func (c *AdminSetOrderStatusCommand) setDriver(driverID *kernel.UUID, clearDriver bool) error {
	if driverID != nil {
		if clearDriver {
			return errs.NewValueIsInvalidError("driverID")
		}
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	c.driverID = driverID
	c.clearDriver = clearDriver
	return nil
}

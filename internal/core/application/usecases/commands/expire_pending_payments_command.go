package commands

import (
	"errors"
	"time"

	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var ErrExpirePendingPaymentsCommandIsNotConstructed = errors.New(
	"ExpirePendingPaymentsCommand must be created via NewExpirePendingPaymentsCommand constructor",
)

// ExpirePendingPaymentsCommand represents a sweep cancelling orders whose
// payment confirmation never arrived before the cutoff.
type ExpirePendingPaymentsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpirePendingPaymentsCommand creates a command to expire stale payments.
func NewExpirePendingPaymentsCommand(cutoff time.Time) (ExpirePendingPaymentsCommand, error) {
	cmd := ExpirePendingPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpirePendingPaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingPaymentsCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; pending orders older than this
// are cancelled.
func (c ExpirePendingPaymentsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpirePendingPaymentsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}
	c.cutoff = cutoff
	return nil
}

// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates,
// including the wallet balance that lives on the user row.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// Wallet balance changes must go through the dedicated wallet methods;
	// Update covers profile and role changes.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by email address.
	// Used for registration duplicate checks and login lookups.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes a user row. Callers must verify the user has no active
	// orders before deleting.
	Delete(ctx context.Context, id kernel.UUID) error

	// CreditWallet atomically adds amount to the user's wallet balance and
	// returns the new balance. The addition happens in a single statement so
	// concurrent credits never lose updates.
	CreditWallet(ctx context.Context, id kernel.UUID, amount kernel.Money) (kernel.Money, error)

	// DebitWallet atomically subtracts amount from the user's wallet balance
	// and returns the new balance. The subtraction is conditional on the
	// balance covering the amount; when it does not, the balance is left
	// untouched and user.ErrInsufficientFunds is returned. Two concurrent
	// debits can therefore never drive the balance negative.
	DebitWallet(ctx context.Context, id kernel.UUID, amount kernel.Money) (kernel.Money, error)

	// ResetWallet atomically sets the user's wallet balance to zero and
	// returns the balance that was cleared.
	ResetWallet(ctx context.Context, id kernel.UUID) (kernel.Money, error)
}

// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

// GetWalletQuery retrieves a user's current wallet balance.
type GetWalletQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletQuery creates a query for the given user's balance.
func NewGetWalletQuery(userID kernel.UUID) (GetWalletQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetWalletQuery{}, err
	}
	return GetWalletQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

// UserID returns the wallet owner's identifier.
func (q GetWalletQuery) UserID() kernel.UUID {
	return q.userID
}

// GetWalletQueryResponse represents a wallet balance read model.
type GetWalletQueryResponse struct {
	UserID  kernel.UUID
	Balance int64
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"msosihub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWalletQueryHandler reads a wallet balance straight from the users table.
//
// Example:
//
//	handler := NewGetWalletQueryHandler(db)
//	query, _ := NewGetWalletQuery(userID)
//
//	wallet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("balance: %d\n", wallet.Balance)
type GetWalletQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletQueryHandler creates a handler for wallet balance queries.
func NewGetWalletQueryHandler(db *gorm.DB) GetWalletQueryHandler {
	return GetWalletQueryHandler{db: db}
}

// Handle executes the query and returns the user's balance.
func (h GetWalletQueryHandler) Handle(ctx context.Context, query GetWalletQuery) (GetWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletQueryResponse{}, err
	}

	var balance int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT wallet_balance
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWalletQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return GetWalletQueryResponse{}, err
	}

	return GetWalletQueryResponse{
		UserID:  query.UserID(),
		Balance: balance,
	}, nil
}

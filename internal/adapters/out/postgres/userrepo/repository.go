package userrepo

import (
	"context"
	"errors"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
//
// Wallet mutations are single conditional SQL statements rather than
// read-modify-write cycles, so concurrent credits never lose updates and
// concurrent debits can never drive the balance negative.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves profile and role changes of an existing user.
// The wallet balance column is deliberately excluded; it only moves through
// the dedicated wallet methods.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Omit("wallet_balance").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by email address.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a user row.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}

// CreditWallet atomically adds amount to the wallet balance and returns the
// new balance.
func (r *GormUserRepository) CreditWallet(
	ctx context.Context, id kernel.UUID, amount kernel.Money,
) (kernel.Money, error) {
	if err := id.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var balance int64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE users SET wallet_balance = wallet_balance + ? WHERE id = ? RETURNING wallet_balance`,
		amount.Amount(), id.Bytes(),
	).Scan(&balance)
	if result.Error != nil {
		return kernel.Money{}, result.Error
	}

	if result.RowsAffected == 0 {
		return kernel.Money{}, errs.NewObjectNotFoundError("user", id.String())
	}

	return kernel.NewMoney(balance)
}

// DebitWallet atomically subtracts amount from the wallet balance and returns
// the new balance. The update is conditional on the balance covering the
// amount; when it does not, nothing changes and user.ErrInsufficientFunds is
// returned.
func (r *GormUserRepository) DebitWallet(
	ctx context.Context, id kernel.UUID, amount kernel.Money,
) (kernel.Money, error) {
	if err := id.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var balance int64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE users SET wallet_balance = wallet_balance - ?
		 WHERE id = ? AND wallet_balance >= ?
		 RETURNING wallet_balance`,
		amount.Amount(), id.Bytes(), amount.Amount(),
	).Scan(&balance)
	if result.Error != nil {
		return kernel.Money{}, result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing user from an uncovered debit.
		var count int64
		if err := r.db.WithContext(ctx).Model(&UserDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return kernel.Money{}, err
		}
		if count == 0 {
			return kernel.Money{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return kernel.Money{}, user.ErrInsufficientFunds
	}

	return kernel.NewMoney(balance)
}

// ResetWallet atomically clears the wallet balance and returns the balance
// that was cleared. The CTE snapshots the balance before the update runs.
func (r *GormUserRepository) ResetWallet(ctx context.Context, id kernel.UUID) (kernel.Money, error) {
	if err := id.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var cleared int64
	result := r.db.WithContext(ctx).Raw(
		`WITH previous AS (SELECT wallet_balance FROM users WHERE id = ?)
		 UPDATE users SET wallet_balance = 0 WHERE id = ?
		 RETURNING (SELECT wallet_balance FROM previous)`,
		id.Bytes(), id.Bytes(),
	).Scan(&cleared)
	if result.Error != nil {
		return kernel.Money{}, result.Error
	}

	if result.RowsAffected == 0 {
		return kernel.Money{}, errs.NewObjectNotFoundError("user", id.String())
	}

	return kernel.NewMoney(cleared)
}

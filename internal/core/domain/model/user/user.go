package user

import (
	"errors"
	"fmt"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

// Domain errors for user and wallet operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrInvalidAmount is returned for wallet operations with a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrInsufficientFunds is returned when the wallet balance cannot cover a debit.
	// No partial debits are performed; balances never go negative.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// User represents an account in the system. It is the aggregate root for
// identity, role, and the prepaid wallet balance.
//
// User follows these invariants:
//   - Must have a valid unique identifier, name, and email
//   - Must carry a valid role
//   - The wallet balance is never negative
//   - The balance is mutated only through wallet operations
//     (CreditWallet, DebitWallet, ResetWallet)
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the display name of the account holder
	name string
	// email receives notifier events for this account
	email string
	// phone is the contact number used as the default on orders
	phone string
	// role scopes which workflow transitions the user may perform
	role Role
	// walletBalance is the prepaid balance in minor units
	walletBalance kernel.Money
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with a zero wallet balance.
// This is the only way to create a valid User instance; all parameters are
// validated and construction fails with aggregated errors on invalid input.
func NewUser(id kernel.UUID, name, email, phone string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// including its current wallet balance. The restored user behaves identically
// to one created through normal domain operations.
func RestoreUser(id kernel.UUID, name, email, phone string, role Role, balance kernel.Money) (*User, error) {
	u, err := NewUser(id, name, email, phone, role)
	if err != nil {
		return nil, err
	}

	u.walletBalance = balance
	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's contact number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// WalletBalance returns the current prepaid balance.
func (u *User) WalletBalance() kernel.Money {
	return u.walletBalance
}

// CreditWallet adds amount to the wallet balance and returns the new balance.
// Fails with ErrInvalidAmount if amount is zero.
func (u *User) CreditWallet(amount kernel.Money) (kernel.Money, error) {
	if amount.IsZero() {
		return kernel.Money{}, ErrInvalidAmount
	}

	u.walletBalance = u.walletBalance.Add(amount)
	return u.walletBalance, nil
}

// DebitWallet subtracts amount from the wallet balance and returns the new balance.
//
// Fails with ErrInvalidAmount if amount is zero and with ErrInsufficientFunds
// if the balance cannot cover the full amount. There is no partial debit.
//
// This method expresses the business rule; under concurrent access the debit
// is performed as a conditional update at the storage layer so that the
// balance check and the subtraction are a single atomic step.
func (u *User) DebitWallet(amount kernel.Money) (kernel.Money, error) {
	if amount.IsZero() {
		return kernel.Money{}, ErrInvalidAmount
	}

	if !u.walletBalance.IsGreaterOrEqual(amount) {
		return kernel.Money{}, ErrInsufficientFunds
	}

	balance, err := u.walletBalance.Sub(amount)
	if err != nil {
		return kernel.Money{}, err
	}

	u.walletBalance = balance
	return u.walletBalance, nil
}

// ResetWallet sets the balance to zero unconditionally and returns the
// prior balance for audit and notification purposes. Admin-only operation;
// the caller is responsible for the role check.
func (u *User) ResetWallet() kernel.Money {
	prior := u.walletBalance
	u.walletBalance = kernel.Zero()
	return prior
}

// ChangeRole switches the user to a new valid role.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("role is invalid: %w", err)
	}
	u.role = role
	return nil
}

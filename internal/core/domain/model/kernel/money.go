package kernel

import (
	"fmt"

	"msosihub/internal/pkg/errs"
)

// Money represents a monetary amount held in integer minor units (TZS shillings).
// Using integer arithmetic avoids the floating point drift that accumulates over
// many wallet operations. Money is an immutable value object; the zero value is
// a valid amount of zero.
//
// Example:
//
//	price, err := kernel.NewMoney(8000)
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.Mul(2) // 16000
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// The amount must not be negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Zero returns a Money value of zero.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative; balances never go below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d exceeds %d", other.amount, m.amount),
		)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	if quantity < 0 {
		return Money{}
	}
	return Money{amount: m.amount * int64(quantity)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsGreaterOrEqual reports whether the amount covers other.
func (m Money) IsGreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount in minor units as a decimal string.
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

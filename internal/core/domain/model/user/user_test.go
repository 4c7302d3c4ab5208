package user_test

import (
	"testing"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewUser(t *testing.T) {
	t.Run("creates_user_with_zero_balance", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Asha Mrema", "asha@example.com", "+255700000001", user.RoleCustomer)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.True(t, u.WalletBalance().IsZero())
		require.NoError(t, u.Validate())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "asha@example.com", "", user.RoleCustomer)

		require.Error(t, err)
		require.ErrorIs(t, err, user.ErrNameIsRequired)
	})

	t.Run("rejects_missing_email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Asha", "", "", user.RoleCustomer)

		require.Error(t, err)
		require.ErrorIs(t, err, user.ErrEmailIsRequired)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Asha", "asha@example.com", "", user.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_Wallet(t *testing.T) {
	newCustomer := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), "Asha", "asha@example.com", "", user.RoleCustomer)
		require.NoError(t, err)
		return u
	}

	t.Run("credit_increases_balance", func(t *testing.T) {
		u := newCustomer(t)

		balance, err := u.CreditWallet(money(t, 50000))

		require.NoError(t, err)
		assert.Equal(t, int64(50000), balance.Amount())
		assert.Equal(t, int64(50000), u.WalletBalance().Amount())
	})

	t.Run("credit_zero_amount_is_rejected", func(t *testing.T) {
		u := newCustomer(t)

		_, err := u.CreditWallet(kernel.Zero())

		require.ErrorIs(t, err, user.ErrInvalidAmount)
	})

	t.Run("debit_decreases_balance", func(t *testing.T) {
		u := newCustomer(t)
		_, err := u.CreditWallet(money(t, 50000))
		require.NoError(t, err)

		balance, err := u.DebitWallet(money(t, 27000))

		require.NoError(t, err)
		assert.Equal(t, int64(23000), balance.Amount())
	})

	t.Run("debit_beyond_balance_is_rejected_without_mutation", func(t *testing.T) {
		u := newCustomer(t)
		_, err := u.CreditWallet(money(t, 1000))
		require.NoError(t, err)

		_, err = u.DebitWallet(money(t, 1001))

		require.ErrorIs(t, err, user.ErrInsufficientFunds)
		assert.Equal(t, int64(1000), u.WalletBalance().Amount())
	})

	t.Run("debit_zero_amount_is_rejected", func(t *testing.T) {
		u := newCustomer(t)

		_, err := u.DebitWallet(kernel.Zero())

		require.ErrorIs(t, err, user.ErrInvalidAmount)
	})

	t.Run("reset_returns_prior_balance", func(t *testing.T) {
		u := newCustomer(t)
		_, err := u.CreditWallet(money(t, 12345))
		require.NoError(t, err)

		prior := u.ResetWallet()

		assert.Equal(t, int64(12345), prior.Amount())
		assert.True(t, u.WalletBalance().IsZero())
	})
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Juma", "juma@example.com", "", user.RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(user.RoleDriver))
	assert.Equal(t, user.RoleDriver, u.Role())

	require.Error(t, u.ChangeRole(user.RoleUnknown))
	assert.Equal(t, user.RoleDriver, u.Role())
}

func TestRoleFromString(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want user.Role
	}{
		{"customer", user.RoleCustomer},
		{"restaurant", user.RoleRestaurant},
		{"driver", user.RoleDriver},
		{"admin", user.RoleAdmin},
	} {
		role, err := user.RoleFromString(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, role)
		assert.Equal(t, tc.raw, role.String())
	}

	_, err := user.RoleFromString("superuser")
	require.Error(t, err)
}

package order_test

import (
	"testing"
	"time"

	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, title string, quantity int, price int64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), title, quantity, money(t, price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{
			newItem(t, "Wali Maharage", 2, 8000),
			newItem(t, "Pilau", 1, 9000),
		},
		money(t, 2000),
		"Kariakoo, Dar es Salaam", "+255700000001", "",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_confirmed_and_paid", func(t *testing.T) {
		o := newOrder(t)

		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, order.MethodWallet, o.PaymentMethod())
		assert.Nil(t, o.Driver())
		require.NoError(t, o.Validate())
	})

	t.Run("total_is_items_plus_delivery_fee", func(t *testing.T) {
		o := newOrder(t)

		// 2*8000 + 1*9000 + 2000
		assert.Equal(t, int64(25000), o.Subtotal().Amount())
		assert.Equal(t, int64(27000), o.TotalAmount().Amount())
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, money(t, 2000), "Kariakoo", "", "",
		)

		require.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("rejects_missing_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{newItem(t, "Chips Mayai", 1, 5000)},
			money(t, 2000), "", "", "",
		)

		require.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AdvancePreparation(t *testing.T) {
	t.Run("owner_advances_through_preparation", func(t *testing.T) {
		o := newOrder(t)
		owner := kernel.NewUUID()

		require.NoError(t, o.AdvancePreparation(owner, owner))
		assert.Equal(t, order.StatusPreparing, o.Status())

		require.NoError(t, o.AdvancePreparation(owner, owner))
		assert.Equal(t, order.StatusReady, o.Status())
	})

	t.Run("foreign_owner_is_rejected_without_mutation", func(t *testing.T) {
		o := newOrder(t)

		err := o.AdvancePreparation(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrForbiddenRole)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("cannot_advance_past_ready", func(t *testing.T) {
		o := newOrder(t)
		owner := kernel.NewUUID()
		require.NoError(t, o.AdvancePreparation(owner, owner))
		require.NoError(t, o.AdvancePreparation(owner, owner))

		err := o.AdvancePreparation(owner, owner)

		require.Error(t, err)
		assert.Equal(t, order.StatusReady, o.Status())
	})
}

func TestOrder_Claim(t *testing.T) {
	makeReady := func(t *testing.T) *order.Order {
		t.Helper()
		o := newOrder(t)
		owner := kernel.NewUUID()
		require.NoError(t, o.AdvancePreparation(owner, owner))
		require.NoError(t, o.AdvancePreparation(owner, owner))
		return o
	}

	t.Run("driver_claims_ready_order", func(t *testing.T) {
		o := makeReady(t)
		driver := kernel.NewUUID()

		require.NoError(t, o.Claim(driver))

		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driver))
	})

	t.Run("second_claim_fails", func(t *testing.T) {
		o := makeReady(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Claim(first))

		err := o.Claim(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderNotAvailable)
		assert.True(t, o.Driver().IsEqual(first))
	})

	t.Run("cannot_claim_before_ready", func(t *testing.T) {
		o := newOrder(t)

		err := o.Claim(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderNotAvailable)
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	makeClaimed := func(t *testing.T, driver kernel.UUID) *order.Order {
		t.Helper()
		o := newOrder(t)
		owner := kernel.NewUUID()
		require.NoError(t, o.AdvancePreparation(owner, owner))
		require.NoError(t, o.AdvancePreparation(owner, owner))
		require.NoError(t, o.Claim(driver))
		return o
	}

	t.Run("assigned_driver_completes", func(t *testing.T) {
		driver := kernel.NewUUID()
		o := makeClaimed(t, driver)

		require.NoError(t, o.CompleteDelivery(driver))

		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("other_driver_is_rejected", func(t *testing.T) {
		o := makeClaimed(t, kernel.NewUUID())

		err := o.CompleteDelivery(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotAssignedDriver)
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		driver := kernel.NewUUID()
		o := makeClaimed(t, driver)
		require.NoError(t, o.CompleteDelivery(driver))

		require.Error(t, o.CompleteDelivery(driver))
		require.Error(t, o.Cancel(o.CustomerID()))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("customer_cancels_own_order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel(o.CustomerID()))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("other_customer_is_rejected", func(t *testing.T) {
		o := newOrder(t)

		err := o.Cancel(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrForbiddenRole)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("cancelled_order_stays_cancelled", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(o.CustomerID()))

		require.Error(t, o.Cancel(o.CustomerID()))
	})
}

func TestOrder_AdminOverrides(t *testing.T) {
	t.Run("force_status_bypasses_workflow", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ForceStatus(order.StatusDelivered))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("force_status_rejects_invalid_value", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ForceStatus(order.Status(99)))
	})

	t.Run("reassign_and_clear_driver", func(t *testing.T) {
		o := newOrder(t)
		driver := kernel.NewUUID()

		require.NoError(t, o.ReassignDriver(&driver))
		assert.True(t, o.Driver().IsEqual(driver))

		require.NoError(t, o.ReassignDriver(nil))
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_ExpirePayment(t *testing.T) {
	t.Run("pending_payment_expires_to_cancelled", func(t *testing.T) {
		o := restorePendingOrder(t)

		require.NoError(t, o.ExpirePayment())

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("paid_order_does_not_expire", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ExpirePayment())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip_keeps_snapshot", func(t *testing.T) {
		driver := kernel.NewUUID()
		created := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driver,
			[]order.Item{newItem(t, "Pilau", 3, 9000)},
			money(t, 29000),
			order.StatusOutForDelivery, order.PaymentPaid, order.MethodWallet,
			"Upanga", "+255700000001", "ring the bell",
			created,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(29000), o.TotalAmount().Amount())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		assert.True(t, o.Driver().IsEqual(driver))
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, "ring the bell", o.SpecialInstructions())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]order.Item{newItem(t, "Pilau", 1, 9000)},
			money(t, 11000),
			order.StatusUnknown, order.PaymentPaid, order.MethodWallet,
			"Upanga", "", "",
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestItem_Subtotal(t *testing.T) {
	item := newItem(t, "Wali Maharage", 3, 8000)

	assert.Equal(t, int64(24000), item.Subtotal().Amount())
}

func TestNewItem_Validation(t *testing.T) {
	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Pilau", 0, kernel.Zero())

		require.Error(t, err)
	})

	t.Run("rejects_missing_title", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, kernel.Zero())

		require.ErrorIs(t, err, order.ErrItemTitleIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func restorePendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.Item{newItem(t, "Pilau", 1, 9000)},
		money(t, 11000),
		order.StatusPending, order.PaymentPending, order.MethodWallet,
		"Upanga", "", "",
		time.Now().UTC().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return o
}

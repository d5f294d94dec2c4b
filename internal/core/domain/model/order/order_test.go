package order_test

import (
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, raw int64) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(raw)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustLineItem(t *testing.T, quantity int, price float64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 2, 10.0)}

		o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "stall 4, Saturday market", items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "stall 4, Saturday market", o.PickupDetails())
		assert.Len(t, o.Items(), 1)
		assert.WithinDuration(t, time.Now().UTC(), o.OrderDate(), time.Minute)
	})

	t.Run("requires_line_items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", nil)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(zero, mustUserID(t, 1), "", []order.LineItem{mustLineItem(t, 1, 5)})
		require.Error(t, err)
	})

	t.Run("requires_valid_consumer", func(t *testing.T) {
		var zero kernel.UserID
		_, err := order.NewOrder(kernel.NewUUID(), zero, "", []order.LineItem{mustLineItem(t, 1, 5)})
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_line_items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", []order.LineItem{{}})
		require.Error(t, err)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewLineItem(kernel.NewUUID(), qty, mustMoney(t, 5))
			require.ErrorIs(t, err, errs.ErrValidation)
		}
	})

	t.Run("rejects_unconstructed_price", func(t *testing.T) {
		var price kernel.Money
		_, err := order.NewLineItem(kernel.NewUUID(), 1, price)
		require.Error(t, err)
	})

	t.Run("total_is_quantity_times_snapshot", func(t *testing.T) {
		item := mustLineItem(t, 3, 4.5)
		assert.InDelta(t, 13.5, item.Total(), 0.0001)
	})
}

func TestOrder_Total(t *testing.T) {
	items := []order.LineItem{
		mustLineItem(t, 2, 10.0),
		mustLineItem(t, 3, 4.5),
	}
	o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", items)
	require.NoError(t, err)

	assert.InDelta(t, 33.5, o.Total(), 0.0001)

	// The total is computed from snapshots regardless of lifecycle state.
	_, err = o.TransitionTo(order.Processing)
	require.NoError(t, err)
	assert.InDelta(t, 33.5, o.Total(), 0.0001)
}

func TestOrder_TransitionTo(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", []order.LineItem{mustLineItem(t, 1, 5)})
		require.NoError(t, err)
		return o
	}

	t.Run("walks_the_happy_path", func(t *testing.T) {
		o := newOrder(t)

		for _, next := range []order.Status{order.Processing, order.Ready, order.Completed} {
			changed, err := o.TransitionTo(next)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("same_status_is_an_idempotent_no_op", func(t *testing.T) {
		o := newOrder(t)

		changed, err := o.TransitionTo(order.Pending)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_forbidden_moves", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.TransitionTo(order.Completed)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("completed_to_pending_fails", func(t *testing.T) {
		o := newOrder(t)
		for _, next := range []order.Status{order.Processing, order.Ready, order.Completed} {
			_, err := o.TransitionTo(next)
			require.NoError(t, err)
		}

		_, err := o.TransitionTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_HoldsDecrementedStock(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", []order.LineItem{mustLineItem(t, 1, 5)})
	require.NoError(t, err)

	assert.True(t, o.HoldsDecrementedStock())

	_, err = o.TransitionTo(order.Processing)
	require.NoError(t, err)
	assert.True(t, o.HoldsDecrementedStock())

	_, err = o.TransitionTo(order.Ready)
	require.NoError(t, err)
	assert.False(t, o.HoldsDecrementedStock())
}

func TestOrder_CanBeDeleted(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", []order.LineItem{mustLineItem(t, 1, 5)})
	require.NoError(t, err)

	assert.True(t, o.CanBeDeleted())

	_, err = o.TransitionTo(order.Processing)
	require.NoError(t, err)
	assert.False(t, o.CanBeDeleted())
}

func TestOrder_NullifyProduct(t *testing.T) {
	productID := kernel.NewUUID()
	item, err := order.NewLineItem(productID, 2, mustMoney(t, 7))
	require.NoError(t, err)
	other := mustLineItem(t, 1, 3)

	o, err := order.NewOrder(kernel.NewUUID(), mustUserID(t, 1), "", []order.LineItem{item, other})
	require.NoError(t, err)

	nullified := o.NullifyProduct(productID)

	assert.Equal(t, 1, nullified)
	items := o.Items()
	assert.Nil(t, items[0].ProductID())
	assert.NotNil(t, items[1].ProductID())

	// Row count and totals are untouched by nullification.
	assert.Len(t, items, 2)
	assert.InDelta(t, 17.0, o.Total(), 0.0001)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		placedAt := time.Date(2026, 5, 12, 8, 30, 0, 0, time.UTC)
		items := []order.LineItem{mustLineItem(t, 2, 6)}

		o, err := order.RestoreOrder(id, mustUserID(t, 9), order.Ready, placedAt, "gate B", items)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, placedAt, o.OrderDate())
		assert.Equal(t, int64(9), o.ConsumerID().Int64())
	})

	t.Run("restores_nullified_product_reference", func(t *testing.T) {
		item, err := order.RestoreLineItem(nil, 4, mustMoney(t, 2.5))
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), mustUserID(t, 9), order.Completed,
			time.Now().UTC(), "", []order.LineItem{item})
		require.NoError(t, err)

		assert.Nil(t, o.Items()[0].ProductID())
		assert.InDelta(t, 10.0, o.Total(), 0.0001)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), mustUserID(t, 9), order.Unknown,
			time.Now().UTC(), "", []order.LineItem{mustLineItem(t, 1, 5)})
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
}

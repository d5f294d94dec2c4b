package commands_test

import (
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, id int64) kernel.UserID {
	t.Helper()
	userID, err := kernel.NewUserID(id)
	require.NoError(t, err)
	return userID
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func newCatalogProduct(t *testing.T, status product.Status, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		kernel.NewUUID(), mustUserID(t, 7), mustMoney(t, 4.50), stock,
		status, "kg", "", []kernel.UUID{kernel.NewUUID()},
	)
	require.NoError(t, err)
	return p
}

func newStoredOrder(t *testing.T, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		item, err := order.NewLineItem(kernel.NewUUID(), 2, mustMoney(t, 3.00))
		require.NoError(t, err)
		items = []order.LineItem{item}
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), mustUserID(t, 42), status, time.Now().UTC(), "", items)
	require.NoError(t, err)
	return o
}

func newStoredPickup(t *testing.T, status pickup.Status, assignedTo *kernel.UserID) *pickup.Pickup {
	t.Helper()
	p, err := pickup.RestorePickup(
		kernel.NewUUID(), nil, status, time.Time{}, "market hall", assignedTo, "")
	require.NoError(t, err)
	return p
}

func newStoredDriver(t *testing.T, userID int64, availability driver.Availability) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(
		mustUserID(t, userID), availability, "van", 200, "", 0, 0)
	require.NoError(t, err)
	return d
}

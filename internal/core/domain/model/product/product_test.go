package product_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	farmerID, err := kernel.NewUserID(5)
	require.NoError(t, err)
	price, err := kernel.NewMoney(45.0)
	require.NoError(t, err)

	p, err := product.NewProduct(
		kernel.NewUUID(), farmerID, price, stock, "kg", "",
		[]kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates_pending_listing", func(t *testing.T) {
		p := newProduct(t, 20)

		require.NoError(t, p.Validate())
		assert.Equal(t, product.StatusPending, p.Status())
		assert.Equal(t, 20, p.Stock())
		assert.Len(t, p.CategoryIDs(), 1)
	})

	t.Run("requires_at_least_one_category", func(t *testing.T) {
		farmerID, _ := kernel.NewUserID(5)
		price, _ := kernel.NewMoney(45.0)

		_, err := product.NewProduct(kernel.NewUUID(), farmerID, price, 20, "kg", "", nil)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("requires_unit_type", func(t *testing.T) {
		farmerID, _ := kernel.NewUserID(5)
		price, _ := kernel.NewMoney(45.0)

		_, err := product.NewProduct(
			kernel.NewUUID(), farmerID, price, 20, "", "", []kernel.UUID{kernel.NewUUID()})

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_negative_stock", func(t *testing.T) {
		farmerID, _ := kernel.NewUserID(5)
		price, _ := kernel.NewMoney(45.0)

		_, err := product.NewProduct(
			kernel.NewUUID(), farmerID, price, -1, "kg", "", []kernel.UUID{kernel.NewUUID()})

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestProduct_DecrementStock(t *testing.T) {
	t.Run("reduces_stock", func(t *testing.T) {
		p := newProduct(t, 10)

		require.NoError(t, p.DecrementStock(4))
		assert.Equal(t, 6, p.Stock())
	})

	t.Run("can_drain_to_zero", func(t *testing.T) {
		p := newProduct(t, 3)

		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("fails_when_stock_would_go_negative", func(t *testing.T) {
		p := newProduct(t, 2)

		err := p.DecrementStock(3)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 2, p.Stock(), "stock must be unchanged on failure")
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		p := newProduct(t, 2)
		require.ErrorIs(t, p.DecrementStock(0), errs.ErrValidation)
	})
}

func TestProduct_RestoreStock(t *testing.T) {
	p := newProduct(t, 10)
	require.NoError(t, p.DecrementStock(4))

	require.NoError(t, p.RestoreStock(4))

	assert.Equal(t, 10, p.Stock(), "cancellation restores stock to its pre-order value")
	require.ErrorIs(t, p.RestoreStock(0), errs.ErrValidation)
}

func TestProduct_ReplaceCategories(t *testing.T) {
	p := newProduct(t, 10)
	replacement := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	require.NoError(t, p.ReplaceCategories(replacement))
	assert.Len(t, p.CategoryIDs(), 2)

	err := p.ReplaceCategories(nil)
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Len(t, p.CategoryIDs(), 2, "failed replacement must not clear the set")
}

func TestProduct_Setters(t *testing.T) {
	p := newProduct(t, 10)

	newPrice, err := kernel.NewMoney(60)
	require.NoError(t, err)
	require.NoError(t, p.SetPrice(newPrice))
	assert.InDelta(t, 60.0, p.Price().Amount(), 1e-9)

	require.NoError(t, p.SetStatus(product.StatusApproved))
	assert.Equal(t, product.StatusApproved, p.Status())

	require.NoError(t, p.SetStock(7))
	assert.Equal(t, 7, p.Stock())
	require.Error(t, p.SetStock(-1))

	require.NoError(t, p.SetUnitType("bundle"))
	require.Error(t, p.SetUnitType(""))

	p.SetImageRef("uploads/tomatoes.jpg")
	assert.Equal(t, "uploads/tomatoes.jpg", p.ImageRef())
}

func TestStatusFromString(t *testing.T) {
	cases := map[string]product.Status{
		"pending":  product.StatusPending,
		"approved": product.StatusApproved,
		"rejected": product.StatusRejected,
		"delisted": product.StatusDelisted,
	}
	for raw, want := range cases {
		got, err := product.StatusFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := product.StatusFromString("archived")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestProduct_Validate(t *testing.T) {
	var p product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
}

package errs_test

import (
	"errors"
	"testing"

	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "validation failed: quantity", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewValidationErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be greater than 0")
		err := errs.NewValidationErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "validation failed: quantity (cause: must be greater than 0)", err.Error())
	})

	t.Run("sanitize flattens newlines", func(t *testing.T) {
		err := errs.NewValidationError("pickup\nlocation")
		assert.Contains(t, err.Error(), "pickup location")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order is not pending")

	assert.Equal(t, "order is not pending", err.Detail)
	assert.Equal(t, "conflict: order is not pending", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())

	cause := errors.New("status is completed")
	withCause := errs.NewConflictErrorWithCause("order is not pending", cause)
	assert.Equal(t, "conflict: order is not pending (cause: status is completed)", withCause.Error())
}

func TestInsufficientStockError(t *testing.T) {
	t.Run("with available quantity", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", 5, 2)

		assert.Equal(t, "p-1", err.ProductID)
		assert.Equal(t, 5, err.Requested)
		assert.Equal(t, 2, err.Available)
		assert.Equal(t, "conflict: insufficient stock: product p-1: requested 5, available 2", err.Error())
	})

	t.Run("without available quantity", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", 5, -1)
		assert.Equal(t, "conflict: insufficient stock: product p-1: requested 5", err.Error())
	})

	t.Run("is a specialization of conflict", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", 5, 2)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("order", "completed", "pending")

	assert.Equal(t, "order", err.Entity)
	assert.Equal(t, "completed", err.From)
	assert.Equal(t, "pending", err.To)
	assert.Equal(t, "invalid transition: order cannot move from completed to pending", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewTransientError("create order", cause)

	assert.Equal(t, "create order", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "transient store failure: create order (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrTransient, err.Unwrap())
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "o-123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "o-123", err.ID)
		assert.Equal(t, "object not found: o-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", 42, cause)

		assert.Equal(t,
			"object not found: param is: driverId, ID is: 42 (cause: record not found)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewValidationError("qty"), errs.ErrValidation)
	require.ErrorIs(t, errs.NewConflictError("busy"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewInvalidTransitionError("pickup", "a", "b"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewTransientError("commit", errors.New("down")), errs.ErrTransient)
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", 1), errs.ErrObjectNotFound)
}

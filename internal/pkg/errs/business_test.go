package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("cancel order", "requester is not the owner")

	assert.Equal(t, "operation is forbidden: cancel order (requester is not the owner)", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestConflictError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConflictError("delivery for order", "42")

		assert.Equal(t, "conflict: delivery for order 42", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewConflictErrorWithCause("delivery for order", "42", cause)

		assert.Equal(t, "conflict: delivery for order 42 (cause: duplicate key)", err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("order", "CANCELED", "cannot be canceled again")

	assert.Equal(t, "invalid state: order is CANCELED, cannot be canceled again", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestInvariantViolationError(t *testing.T) {
	err := errs.NewInvariantViolationError("failed to update status in orders")
	assert.Equal(t, "invariant violation: failed to update status in orders", err.Error())

	wrapped := fmt.Errorf("assign delivery: %w", err)
	require.ErrorIs(t, wrapped, errs.ErrInvariantViolation)

	var target *errs.InvariantViolationError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "failed to update status in orders", target.Message)
}

func TestBusinessSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrForbidden,
		errs.ErrConflict,
		errs.ErrInvalidState,
		errs.ErrInvariantViolation,
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

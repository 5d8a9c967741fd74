package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors_Messages(t *testing.T) {
	lookupFailed := errors.New("lookup failed")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not_found",
			err:      errs.NewObjectNotFoundError("orderId", "7d1f"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 7d1f",
		},
		{
			name:     "not_found_with_cause",
			err:      errs.NewObjectNotFoundErrorWithCause("orderId", "7d1f", lookupFailed),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: orderId, ID is: 7d1f (cause: lookup failed)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("deliveryAddress"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: deliveryAddress",
		},
		{
			name:     "invalid_with_cause",
			err:      errs.NewValueIsInvalidErrorWithCause("itemId", lookupFailed),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: itemId (cause: lookup failed)",
		},
		{
			name:     "out_of_range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 1000",
		},
		{
			name:     "out_of_range_with_cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("quantity", -2, 1, 1000, lookupFailed),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -2 is quantity, min value is 1, max value is 1000 (cause: lookup failed)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("items"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items",
		},
		{
			name:     "required_with_cause",
			err:      errs.NewValueIsRequiredErrorWithCause("items", lookupFailed),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items (cause: lookup failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestValidationErrors_Fields(t *testing.T) {
	cause := errors.New("bad row")

	notFound := errs.NewObjectNotFoundErrorWithCause("deliveryId", "d1", cause)
	assert.Equal(t, "deliveryId", notFound.ParamName)
	assert.Equal(t, "d1", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)
	assert.Equal(t, "quantity", outOfRange.ParamName)
	assert.Equal(t, 0, outOfRange.Value)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 1000, outOfRange.Max)
	require.NoError(t, outOfRange.Cause)

	required := errs.NewValueIsRequiredError("userId")
	assert.Equal(t, "userId", required.ParamName)
	require.NoError(t, required.Cause)
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("deliveryAddress", "1 Main St\nApt 2", 1, 255)

	assert.Contains(t, err.Error(), "1 Main St Apt 2")
	assert.NotContains(t, err.Error(), "\n")
}

func TestValidationErrors_SurviveWrapping(t *testing.T) {
	wrapped := errors.Join(
		errs.NewValueIsRequiredError("deliveryAddress"),
		errs.NewValueIsInvalidError("itemId"),
	)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
}

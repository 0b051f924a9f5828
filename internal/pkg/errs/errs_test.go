package errs_test

import (
	"errors"
	"testing"

	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", "123")

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("parcelId", "123", cause)

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("clientId")

		assert.Equal(t, "clientId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: clientId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("clientId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: clientId (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weight", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1.5 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: -1.5 is not greater than 0)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("comment", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestDuplicateValueError(t *testing.T) {
	t.Run("NewDuplicateValueError", func(t *testing.T) {
		err := errs.NewDuplicateValueError("email", "jane@example.com")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "jane@example.com", err.Value)
		assert.Equal(t, "duplicate value: jane@example.com is already registered as email", err.Error())
		assert.Equal(t, errs.ErrDuplicateValue, err.Unwrap())
	})

	t.Run("NewDuplicateValueErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewDuplicateValueErrorWithCause("email", "jane@example.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: unique constraint violated)")
	})
}

func TestInvalidOperationError(t *testing.T) {
	t.Run("NewInvalidOperationError", func(t *testing.T) {
		err := errs.NewInvalidOperationError("add product", "parcel is in status InTransit")

		assert.Equal(t, "add product", err.Operation)
		assert.Equal(t, "invalid operation: add product: parcel is in status InTransit", err.Error())
		assert.Equal(t, errs.ErrInvalidOperation, err.Unwrap())
	})

	t.Run("is distinct from not found", func(t *testing.T) {
		err := errs.NewInvalidOperationError("remove product", "parcel is in status Delivered")

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrDuplicateValue)
		require.Error(t, errs.ErrInvalidOperation)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "duplicate value", errs.ErrDuplicateValue.Error())
		assert.Equal(t, "invalid operation", errs.ErrInvalidOperation.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("parcelId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsRequiredError("clientId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("weight"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewDuplicateValueError("email", "a@b.c"), errs.ErrDuplicateValue)
		require.ErrorIs(t, errs.NewInvalidOperationError("add product", "bad status"), errs.ErrInvalidOperation)
	})
}

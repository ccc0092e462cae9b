package guard_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/guard"
)

func TestError(t *testing.T) {
	t.Parallel()

	_, err := guard.IsBetween(1, 5, 2)
	require.Error(t, err)

	var gerr *guard.Error
	require.ErrorAs(t, err, &gerr)

	t.Run("message is returned verbatim", func(t *testing.T) {
		assert.Equal(t, gerr.Message(), gerr.Error())
	})

	t.Run("unwraps to the condition sentinel", func(t *testing.T) {
		assert.Equal(t, guard.ErrInvalidRange, gerr.Unwrap())
	})

	t.Run("matches the class sentinel", func(t *testing.T) {
		assert.True(t, gerr.Is(guard.ErrGuard))
		assert.False(t, gerr.Is(errors.New("guard violation")))
	})

	t.Run("code is fixed for every condition", func(t *testing.T) {
		_, emptyErr := guard.IsBetween(nil, 1, 2)
		emptyGuardErr, ok := guard.AsGuardError(emptyErr)
		require.True(t, ok)

		assert.Equal(t, "GUARD_EXCEPTION", gerr.Code())
		assert.Equal(t, "GUARD_EXCEPTION", emptyGuardErr.Code())
		assert.Equal(t, guard.Code, (&guard.Error{}).Code())
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		assert.NotErrorIs(t, errors.New("boom"), guard.ErrGuard)
	})
}

func TestAsGuardError(t *testing.T) {
	t.Parallel()

	t.Run("returns false for nil", func(t *testing.T) {
		gerr, ok := guard.AsGuardError(nil)
		assert.False(t, ok)
		assert.Nil(t, gerr)
		assert.False(t, guard.IsGuardError(nil))
	})

	t.Run("returns false for other errors", func(t *testing.T) {
		gerr, ok := guard.AsGuardError(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, gerr)
		assert.False(t, guard.IsGuardError(guard.ErrGuard))
	})

	t.Run("extracts wrapped guard errors", func(t *testing.T) {
		_, err := guard.IsBetween("", 0, 1)
		wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", err))

		gerr, ok := guard.AsGuardError(wrapped)
		require.True(t, ok)
		assert.Equal(t, guard.Code, gerr.Code())
		assert.Equal(t, "Cannot check length of a value. Provided value is empty", gerr.Message())
		assert.ErrorIs(t, gerr, guard.ErrEmptyValue)
	})
}

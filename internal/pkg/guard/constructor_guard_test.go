package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errPatchNotConstructed := errors.New("PatchOrderCommand must be created via NewPatchOrderCommand")

	type patchOrderCommand struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newCommand := func(orderID string) (patchOrderCommand, error) {
		if orderID == "" {
			return patchOrderCommand{}, errors.New("order id is required")
		}
		return patchOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newCommand("A-1")
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errPatchNotConstructed))
		assert.Equal(t, "A-1", cmd.orderID)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		cmd, err := newCommand("")
		require.Error(t, err)
		assert.Equal(t, errPatchNotConstructed, cmd.guard.Validate(errPatchNotConstructed))
	})
}

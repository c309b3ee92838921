package guard_test

import (
	"errors"
	"testing"

	"careplan/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a command object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type horizon struct {
		weeks int
		guard guard.ConstructorGuard
	}

	var errHorizonNotConstructed = errors.New("horizon must be created via newHorizon")

	newHorizon := func(weeks int) (horizon, error) {
		if weeks <= 0 {
			return horizon{}, errors.New("weeks must be positive")
		}
		return horizon{
			weeks: weeks,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateHorizon := func(h horizon) error {
		return h.guard.Validate(errHorizonNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		h, err := newHorizon(12)

		require.NoError(t, err)
		require.NoError(t, validateHorizon(h))
		assert.Equal(t, 12, h.weeks)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var h horizon // zero value

		err := validateHorizon(h)

		require.Error(t, err)
		assert.Equal(t, errHorizonNotConstructed, err)
	})
}

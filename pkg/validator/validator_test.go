package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/coffee-store/pkg/validator"
)

type color uint8

func (c color) Validate() error {
	if c > 2 {
		return errors.New("unknown color")
	}
	return nil
}

type settings struct {
	Name  string `validate:"required"`
	Port  int    `validate:"gte=1,lte=65535"`
	Mode  string `validate:"oneof=a b"`
	Color color  `validate:"enum"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	t.Run("Should accept valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(settings{Name: "x", Port: 80, Mode: "a", Color: 1}))
	})

	t.Run("Should describe every failed field", func(t *testing.T) {
		err := v.Validate(settings{Port: 0, Mode: "c", Color: 7})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		described := validator.Describe(err)
		assert.Contains(t, described.Error(), "settings.Name: field is required")
		assert.Contains(t, described.Error(), "settings.Port: must be greater than or equal to 1")
		assert.Contains(t, described.Error(), "settings.Mode: must be one of [a b]")
		assert.Contains(t, described.Error(), "settings.Color: invalid enum value: 7")
	})

	t.Run("Should pass through other errors", func(t *testing.T) {
		other := errors.New("other")
		assert.Same(t, other, validator.Describe(other))
		assert.False(t, validator.IsValidationError(other))
	})
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/tuanvumaihuynh/coffee-store/pkg/validator"
)

// New reads configuration from environment variables and unmarshals them into
// a struct of type T, then checks its `validate` tags.
// Returns the populated configuration struct or an error.
func New[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return cfg, fmt.Errorf("new validator: %w", err)
	}

	if err := v.Validate(cfg); err != nil {
		if validator.IsValidationError(err) {
			return cfg, fmt.Errorf("validate config: %w", validator.Describe(err))
		}
		return cfg, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

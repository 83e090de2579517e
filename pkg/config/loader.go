package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load fills cfg from the process environment using its `env` and
// `envDefault` tags.
func Load(cfg any) error {
	return LoadFrom(cfg, nil)
}

// LoadFrom fills cfg from environ, or from the process environment when
// environ is nil.
func LoadFrom(cfg any, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

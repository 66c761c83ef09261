package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings taken from the process environment.
type Env struct {
	// NodeEnv is the build mode of the host ("development", "production", ...).
	NodeEnv string `env:"NODE_ENV" envDefault:"development"`
	// Debug enables dumps of the rewritten route tree.
	Debug bool `env:"MICROAPP_ROUTES_DEBUG"`
}

// LoadEnv loads Env from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// IsProduction reports whether the host builds for production.
func (e Env) IsProduction() bool {
	return e.NodeEnv == "production"
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Command line flags take
// precedence over these.
type Env struct {
	ConfigPath string `env:"TUIFORM_CONFIG"`
	LogLevel   string `env:"TUIFORM_LOG_LEVEL"`
	LogFile    string `env:"TUIFORM_LOG_FILE"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return e, nil
}

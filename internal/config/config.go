package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment. It is attached to traces.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Store      configs.Store      `envPrefix:"STORE_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Auth       configs.Auth       `envPrefix:"AUTH_"`
	Redis      configs.Redis      `envPrefix:"REDIS_"`
	Telemetry  configs.Telemetry  `envPrefix:"OTEL_"`
	Contribute configs.Contribute `envPrefix:"CONTRIBUTE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package configs

import "time"

// Contribute tunes retries of contributions that hit a concurrency
// conflict in the registry.
type Contribute struct {
	MaxTries        uint          `env:"MAX_TRIES" envDefault:"3"`
	InitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL" envDefault:"10ms"`
	MaxInterval     time.Duration `env:"RETRY_MAX_INTERVAL" envDefault:"200ms"`
}

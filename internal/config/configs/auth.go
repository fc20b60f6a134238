package configs

import "time"

// Auth configures bearer token verification. With an empty Secret every
// token is rejected and only anonymous reads work.
type Auth struct {
	Secret string `env:"JWT_SECRET"`
	Issuer string `env:"JWT_ISSUER"`
	// TokenTTL is the lifetime of tokens minted by the token command.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

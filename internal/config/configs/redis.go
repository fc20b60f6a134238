package configs

// Redis configures where ledger events are published. An empty Addr
// disables publishing.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Channel  string `env:"CHANNEL" envDefault:"crowdfund.ledger"`
}

// Enabled reports whether an address is configured.
func (c Redis) Enabled() bool { return c.Addr != "" }

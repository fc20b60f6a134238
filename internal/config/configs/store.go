package configs

import "fmt"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects the campaign registry backend.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch c.Driver {
	case StoreMemory, StorePostgres:
		return nil
	}
	return fmt.Errorf("unknown store driver %q", c.Driver)
}

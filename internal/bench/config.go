package bench

import (
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

// Config describes a benchmark run.
type Config struct {
	// Operations to measure, in the order they are reported.
	Operations []string `env:"LLBENCH_OPERATIONS" separator:"," default:"append,prepend,unshift,shift,pop" enum:"append,prepend,unshift,shift,pop,"`
	// N is the number of operations measured per operation and subject.
	N int `env:"LLBENCH_N" default:"1000"`
	// Size is the number of elements a subject holds before the measurement starts.
	Size int `env:"LLBENCH_SIZE" default:"1000"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return c, ErrInvalidConfig.Wrap(err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if len(c.Operations) == 0 {
		return ErrInvalidConfig.F("no operation to benchmark")
	}
	if err := enum.ValidateStruct(c); err != nil {
		return ErrInvalidConfig.Wrap(err)
	}
	if c.N <= 0 {
		return ErrInvalidConfig.F("N must be positive, got %d", c.N)
	}
	if c.Size < 0 {
		return ErrInvalidConfig.F("Size can't be negative, got %d", c.Size)
	}
	return nil
}

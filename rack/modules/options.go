package modules

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-rack/dsp/noise"
)

const (
	defaultSeedButtons = 8
	maxSeedButtons     = 16

	// gateHigh is the voltage of a high gate or trigger output.
	gateHigh = 10.0
	// blockThreshold is the level at which a Block input inhibits output.
	blockThreshold = 0.1
)

// Option configures module construction.
type Option func(*config) error

type config struct {
	logger  *slog.Logger
	noise   noise.Factory
	buttons int
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.DiscardHandler),
		noise:   noise.SimplexFactory,
		buttons: defaultSeedButtons,
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// WithLogger sets the logger for debug diagnostics. Modules log nothing
// above debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("modules: nil logger")
		}
		cfg.logger = logger
		return nil
	}
}

// WithNoise replaces the noise field factory used by seeded modules.
func WithNoise(factory noise.Factory) Option {
	return func(cfg *config) error {
		if factory == nil {
			return fmt.Errorf("modules: nil noise factory")
		}
		cfg.noise = factory
		return nil
	}
}

// WithButtons sets the number of Seed buttons in [1, 16].
func WithButtons(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxSeedButtons {
			return fmt.Errorf("modules: seed buttons must be in [1, %d]: %d", maxSeedButtons, n)
		}
		cfg.buttons = n
		return nil
	}
}

func gate(high bool) float64 {
	if high {
		return gateHigh
	}

	return 0
}

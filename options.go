package phantomkeep

import (
	"log/slog"

	"github.com/phantomkeep/phantomkeep/internal/kdf"
	"github.com/phantomkeep/phantomkeep/internal/logging"
)

// engineConfig holds configuration for the engine.
type engineConfig struct {
	params kdf.Params
	logger logging.Logger
}

func defaultConfig() engineConfig {
	return engineConfig{
		params: kdf.DefaultParams(),
		logger: logging.NewNopLogger(),
	}
}

// Option configures the engine.
type Option func(*engineConfig)

// WithIterations overrides the key-stretching iteration count. Lowering it
// below the default weakens offline brute-force resistance; raising it
// slows every login and encryption call. Both vaults always share one
// count, so derivation cost cannot reveal which vault a call targets.
func WithIterations(n int) Option {
	return func(c *engineConfig) {
		c.params.Iterations = n
	}
}

// WithLogger routes engine lifecycle logging to the given slog logger.
// The engine never logs secrets, and never the vault type of a successful
// unlock.
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = logging.NewSlogLogger(l)
		}
	}
}

package stdioworker

import (
	"fmt"
	"strings"
)

// Default protocol tokens.
const (
	// DefaultReadyToken is written on its own line once the input loop is armed.
	DefaultReadyToken = "Ready"

	// DefaultShutdownCommand is the request line that stops the engine cleanly.
	DefaultShutdownCommand = "SHUTDOWN"
)

// Config is the configuration for the Engine.
//
// The worker binaries use DefaultConfig unchanged: behavior is fixed at build time.
// The YAML tags let embedders keep a Config next to their own settings.
type Config struct {
	// Variant names the behavior in diagnostics and metrics.
	// Defaults to the policy's Name() when empty.
	Variant string `yaml:"variant"`

	// ReadyToken is the readiness signal written before the first read.
	// Parents match it case-insensitively.
	ReadyToken string `yaml:"readyToken"`

	// ShutdownCommand is a request line that ends the loop like end-of-input.
	// It must not collide with an identifier of the policy table.
	ShutdownCommand string `yaml:"shutdownCommand"`

	// DisableShutdownCommand turns ShutdownCommand into an ordinary identifier
	// (which then fails lookup unless the table contains it).
	DisableShutdownCommand bool `yaml:"disableShutdownCommand"`
}

// DefaultConfig returns the configuration the worker binaries run with.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		ReadyToken:      DefaultReadyToken,
		ShutdownCommand: DefaultShutdownCommand,
	}
}

// SetDefaults fills in missing configuration values.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.ReadyToken == "" {
		cfg.ReadyToken = defaults.ReadyToken
	}
	if cfg.ShutdownCommand == "" {
		cfg.ShutdownCommand = defaults.ShutdownCommand
	}
}

// Validate checks the configuration for protocol consistency.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, nil if valid
func (cfg *Config) Validate() error {
	if cfg.ReadyToken == "" {
		return fmt.Errorf("%w: ready token must not be empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.ReadyToken, "\r\n") {
		return fmt.Errorf("%w: ready token %q must be a single line", ErrInvalidConfig, cfg.ReadyToken)
	}
	if strings.TrimSpace(cfg.ReadyToken) != cfg.ReadyToken {
		return fmt.Errorf("%w: ready token %q has surrounding whitespace", ErrInvalidConfig, cfg.ReadyToken)
	}

	if !cfg.DisableShutdownCommand {
		if cfg.ShutdownCommand == "" {
			return fmt.Errorf("%w: shutdown command must not be empty", ErrInvalidConfig)
		}
		if strings.TrimSpace(cfg.ShutdownCommand) != cfg.ShutdownCommand || strings.ContainsAny(cfg.ShutdownCommand, "\r\n") {
			return fmt.Errorf("%w: shutdown command %q must be a single trimmed token", ErrInvalidConfig, cfg.ShutdownCommand)
		}
	}

	return nil
}

// TestConfig returns a configuration for tests.
//
// It is identical to DefaultConfig with the variant set, so tests exercise the
// same protocol tokens as the binaries.
//
// Parameters:
//   - variant: Variant name for diagnostics
//
// Returns:
//   - Config: Test configuration
func TestConfig(variant string) Config {
	cfg := DefaultConfig()
	cfg.Variant = variant

	return cfg
}

// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
//
// Timeout < Interval is deliberately not rejected here: the watchdog
// still works, it just fires on the first stalled cycle. The caller
// warns about it instead.
func Validate(cfg Config) error {
	if cfg.Interval < 1 {
		return fmt.Errorf("config: interval must be >= 1 second, got %d", cfg.Interval)
	}

	if cfg.Timeout < 1 {
		return fmt.Errorf("config: timeout must be >= 1 second, got %d", cfg.Timeout)
	}

	if cfg.RestartCommand == "" {
		return fmt.Errorf("config: restart_command must not be empty")
	}

	return nil
}

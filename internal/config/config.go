// internal/config/config.go
package config

// Config holds the per-interface keepalive options.
// All keys are optional in the file; Load fills defaults.
type Config struct {
	// Interval is the sampling cadence in seconds.
	Interval int `yaml:"interval"`

	// Timeout is the stall budget in seconds. Traffic must advance
	// within this window or the recovery sequence runs.
	Timeout int `yaml:"timeout"`

	// PreRestartCommand runs before the restart command. Empty means skip.
	PreRestartCommand string `yaml:"pre_restart_command"`

	// RestartCommand is the recovery action itself.
	RestartCommand string `yaml:"restart_command"`

	// PostRestartCommand runs after the restart command. Empty means skip.
	PostRestartCommand string `yaml:"post_restart_command"`
}

// ---- DEFAULTS ----

const (
	DefaultInterval = 60
	DefaultTimeout  = 300

	// DefaultRestartCommand references the WG_INTERFACE environment
	// variable the watchdog exports to every recovery command.
	DefaultRestartCommand = "systemctl restart wg-quick@$WG_INTERFACE"
)

// Default returns the configuration used when no per-interface file exists.
func Default() Config {
	return Config{
		Interval:       DefaultInterval,
		Timeout:        DefaultTimeout,
		RestartCommand: DefaultRestartCommand,
	}
}

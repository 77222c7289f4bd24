// cmd/wg-keepalive/main.go
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wg-tools/wg-keepalive/internal/config"
	"github.com/wg-tools/wg-keepalive/internal/recovery"
	"github.com/wg-tools/wg-keepalive/internal/sampler"
	"github.com/wg-tools/wg-keepalive/internal/watchdog"
)

var (
	flagConfigDir      string
	flagLogLevel       string
	flagNoLogTimestamp bool
)

var rootCmd = &cobra.Command{
	Use:   "wg-keepalive <interface>",
	Short: "Restart a WireGuard interface when inbound traffic stalls",
	Long: `wg-keepalive watches the received-byte counter of one WireGuard
interface and, when the counter stops advancing for longer than the
configured timeout, runs the configured recovery commands to restart
the link. One process watches one interface; run it under a process
supervisor such as systemd.`,
	Args: cobra.ExactArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfigDir, "config-dir", "d", "/etc/wg-keepalive", "configuration directory")
	rootCmd.Flags().StringVar(&flagLogLevel, "loglevel", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagNoLogTimestamp, "no-log-timestamp", false, "disable log timestamps")
}

// initLogger configures logrus for the whole process.
// Called once at startup, before anything logs.
func initLogger(level string, noTimestamp bool) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
		logrus.WithError(err).Warn("Failed to parse log level, defaulting to info")
	}
	logrus.SetLevel(parsed)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableTimestamp: noTimestamp,
	})
}

func run(cmd *cobra.Command, args []string) error {
	initLogger(flagLogLevel, flagNoLogTimestamp)

	iface := args[0]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(flagConfigDir, iface)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if cfg.Timeout < cfg.Interval {
		logrus.WithFields(logrus.Fields{
			"interval": cfg.Interval,
			"timeout":  cfg.Timeout,
		}).Warn("Timeout is shorter than interval; the first stalled sample will trigger recovery")
	}

	// --------------------
	// Build sampler, recovery runner, watchdog
	// --------------------

	src, err := sampler.New(iface)
	if err != nil {
		return err
	}

	rec, err := recovery.New(recovery.Plan{
		Interface:      iface,
		PreCommand:     cfg.PreRestartCommand,
		RestartCommand: cfg.RestartCommand,
		PostCommand:    cfg.PostRestartCommand,
	}, recovery.NewShellExecutor(iface))
	if err != nil {
		return err
	}

	w, err := watchdog.New(watchdog.Config{
		Interface: iface,
		Interval:  time.Duration(cfg.Interval) * time.Second,
		Timeout:   time.Duration(cfg.Timeout) * time.Second,
	}, src, rec, nil)
	if err != nil {
		return err
	}

	// Eternal loop: returns only on a fatal sampling error. The
	// supervisor restarts us.
	return w.Run(context.Background())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Fatal error")
		os.Exit(1)
	}
}

// internal/watchdog/watchdog.go
package watchdog

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/wg-tools/wg-keepalive/internal/sampler"
)

// Module-level logger with pre-configured module field
var logger = logrus.WithField("module", "watchdog")

// Source is the exact contract the watchdog uses to read the counter.
// The watchdog depends on the counter value only.
type Source interface {
	Sample(ctx context.Context) (sampler.Snapshot, error)
}

// Recoverer runs the recovery sequence for one stall episode.
type Recoverer interface {
	Recover(ctx context.Context)
}

// Config is the minimal runtime config the watchdog needs.
type Config struct {
	Interface string
	Interval  time.Duration
	Timeout   time.Duration
}

// Watchdog is a clock-driven stall detector. One instance watches one
// interface; there is exactly one logical stream of state and no
// sharing across goroutines.
type Watchdog struct {
	cfg Config
	src Source
	rec Recoverer
	clk clock.Clock
}

// New creates a watchdog with immutable config.
// A nil clk selects the real clock; tests inject clock.NewMock().
func New(cfg Config, src Source, rec Recoverer, clk clock.Clock) (*Watchdog, error) {
	if cfg.Interface == "" {
		return nil, errors.New("watchdog: interface name required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("watchdog: interval must be > 0")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("watchdog: timeout must be > 0")
	}
	if src == nil {
		return nil, errors.New("watchdog: source required")
	}
	if rec == nil {
		return nil, errors.New("watchdog: recoverer required")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Watchdog{cfg: cfg, src: src, rec: rec, clk: clk}, nil
}

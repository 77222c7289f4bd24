// internal/sampler/sampler.go
package sampler

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Module-level logger with pre-configured module field
var logger = logrus.WithField("module", "sampler")

// Sampler reads the receive counter by invoking the wg tool.
// One child process per call, spawned, drained and reaped before
// returning. No timeout is imposed on the child: a hung wg hangs the
// caller. That is accepted; the watchdog detects absent traffic, not
// tool liveness.
type Sampler struct {
	iface string
}

// New creates a sampler bound to one interface.
func New(iface string) (*Sampler, error) {
	if iface == "" {
		return nil, errors.New("sampler: interface name required")
	}
	return &Sampler{iface: iface}, nil
}

// Sample performs exactly one counter query.
// All-or-nothing: spawn failure, non-zero exit, or unparsable output
// all fail the sample. Sample failures are not retried by anyone.
func (s *Sampler) Sample(ctx context.Context) (Snapshot, error) {
	cmd := exec.CommandContext(ctx, "wg", "show", s.iface, "dump")

	out, err := cmd.Output()
	if err != nil {
		return Snapshot{}, fmt.Errorf("sampler: wg show %s dump: %w", s.iface, err)
	}

	rx, err := ParseRxBytes(string(out))
	if err != nil {
		return Snapshot{}, err
	}

	logger.WithFields(logrus.Fields{
		"interface": s.iface,
		"rx_bytes":  rx,
	}).Debug("Sampled receive counter")

	return Snapshot{Interface: s.iface, RxBytes: rx}, nil
}

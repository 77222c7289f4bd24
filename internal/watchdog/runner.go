// internal/watchdog/runner.go
package watchdog

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Run starts the eternal sample/decide/recover/sleep loop.
// It returns only when ctx is cancelled or the source fails; source
// failures are fatal and are never retried in-loop. The process is
// expected to be supervised externally.
//
// The sleep is a fresh timer per cycle, not a ticker: cadence is not
// compensated for the cost of sampling or recovery, so actual timing
// drifts by however long those take. Coarse watchdog, not a precision
// timer.
func (w *Watchdog) Run(ctx context.Context) error {
	logger.WithFields(logrus.Fields{
		"interface": w.cfg.Interface,
		"interval":  w.cfg.Interval,
		"timeout":   w.cfg.Timeout,
	}).Info("Starting keepalive watchdog")

	st := newState(w.clk.Now())

	for {
		snap, err := w.src.Sample(ctx)
		if err != nil {
			return err
		}

		now := w.clk.Now()
		prev := st.lastRxBytes

		switch st.step(snap.RxBytes, now, w.cfg.Timeout) {
		case PhaseTracking:
			logger.WithFields(logrus.Fields{
				"phase":    PhaseTracking.String(),
				"rx_bytes": snap.RxBytes,
				"previous": prev,
			}).Debug("Receive counter advanced")

		case PhaseStalled:
			logger.WithFields(logrus.Fields{
				"phase":       PhaseStalled.String(),
				"rx_bytes":    snap.RxBytes,
				"stalled_for": now.Sub(st.lastChange),
			}).Debug("Receive counter unchanged")

		case PhaseRecovering:
			logger.WithFields(logrus.Fields{
				"phase":       PhaseRecovering.String(),
				"rx_bytes":    snap.RxBytes,
				"stalled_for": now.Sub(st.lastChange),
			}).Warn("Stall timeout reached, restarting interface")

			// Blocks until the whole sequence completes; exit
			// statuses of the commands are not inspected here.
			w.rec.Recover(ctx)
			st.reset(now)
		}

		t := w.clk.Timer(w.cfg.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

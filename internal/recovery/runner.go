// internal/recovery/runner.go
package recovery

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Module-level logger with pre-configured module field
var logger = logrus.WithField("module", "recovery")

// Runner sequences the recovery commands for one stall episode.
type Runner struct {
	plan Plan
	exec Executor
}

// New creates a runner with immutable plan.
func New(plan Plan, exec Executor) (*Runner, error) {
	if plan.Interface == "" {
		return nil, errors.New("recovery: interface name required")
	}
	if plan.RestartCommand == "" {
		return nil, errors.New("recovery: restart command required")
	}
	if exec == nil {
		return nil, errors.New("recovery: executor required")
	}
	return &Runner{plan: plan, exec: exec}, nil
}

// Recover runs pre -> restart -> post, each step blocking until the
// previous one completes. Step exit statuses are logged and otherwise
// ignored: a failing pre hook does not stop the restart, and Recover
// itself never reports failure. Operators monitor command success
// out-of-band.
func (r *Runner) Recover(ctx context.Context) {
	if r.plan.PreCommand != "" {
		logger.WithField("command", r.plan.PreCommand).Info("Running pre-restart command")
		if err := r.exec.Execute(ctx, r.plan.PreCommand); err != nil {
			logger.WithError(err).Warn("Pre-restart command failed (status not checked)")
		}
	}

	logger.WithField("command", r.plan.RestartCommand).Info("Running restart command")
	if err := r.exec.Execute(ctx, r.plan.RestartCommand); err != nil {
		logger.WithError(err).Warn("Restart command failed (status not checked)")
	}

	if r.plan.PostCommand != "" {
		logger.WithField("command", r.plan.PostCommand).Info("Running post-restart command")
		if err := r.exec.Execute(ctx, r.plan.PostCommand); err != nil {
			logger.WithError(err).Warn("Post-restart command failed (status not checked)")
		}
	}
}

// internal/recovery/executor.go
package recovery

import (
	"context"
	"os"
	"os/exec"
)

// Executor is the exact contract the runner uses to run one command.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Executor interface {
	Execute(ctx context.Context, command string) error
}

// ShellExecutor runs a command string through the shell, so operator
// configuration may use pipes, expansion and other shell syntax.
// Commands are trusted root-level configuration; they are executed
// verbatim, without validation or sandboxing.
type ShellExecutor struct {
	iface string
}

// NewShellExecutor creates an executor that exports WG_INTERFACE=iface
// to every command it runs.
func NewShellExecutor(iface string) *ShellExecutor {
	return &ShellExecutor{iface: iface}
}

// Execute spawns `sh -c command`, wires its output to the parent's
// stdout/stderr, and waits for completion. The child is always reaped,
// success or failure. No timeout is imposed.
func (e *ShellExecutor) Execute(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = append(os.Environ(), "WG_INTERFACE="+e.iface)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

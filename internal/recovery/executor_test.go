// internal/recovery/executor_test.go
package recovery

import (
	"context"
	"testing"
)

func TestShellExecutor_ExitStatusPropagates(t *testing.T) {
	e := NewShellExecutor("wg0")

	if err := e.Execute(context.Background(), "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := e.Execute(context.Background(), "false"); err == nil {
		t.Fatalf("expected error from failing command, got nil")
	}
}

func TestShellExecutor_ExportsInterfaceName(t *testing.T) {
	e := NewShellExecutor("wg0")

	err := e.Execute(context.Background(), `test "$WG_INTERFACE" = "wg0"`)
	if err != nil {
		t.Fatalf("WG_INTERFACE not visible to the shell: %v", err)
	}
}

func TestShellExecutor_ShellSyntaxAvailable(t *testing.T) {
	e := NewShellExecutor("wg0")

	// Commands are arbitrary shell snippets: pipes and expansion must
	// work, not just bare argv.
	err := e.Execute(context.Background(), `echo "$WG_INTERFACE" | grep -q wg0`)
	if err != nil {
		t.Fatalf("shell pipeline failed: %v", err)
	}
}

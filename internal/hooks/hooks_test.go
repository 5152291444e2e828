package hooks

import (
	"path/filepath"
	"testing"
)

func TestNewRunner(t *testing.T) {
	runner := NewRunner("/workspace", nil)
	want := filepath.Join("/workspace", ".mvcs", "hooks")
	if runner.hooksDir != want {
		t.Errorf("hooksDir = %q, want %q", runner.hooksDir, want)
	}
}

func TestHookExists_NoModule(t *testing.T) {
	tmpDir := t.TempDir()
	runner := NewRunner(tmpDir, nil)

	if runner.HookExists(EventPreCommit) {
		t.Error("HookExists returned true for missing module")
	}
}

func TestRunPreCommit_NoModule(t *testing.T) {
	tmpDir := t.TempDir()
	runner := NewRunner(tmpDir, nil)

	if err := runner.RunPreCommit("c1", []string{"a.txt"}); err != nil {
		t.Errorf("RunPreCommit returned error when no module present: %v", err)
	}
}

func TestRunPostCommit_NoModule(t *testing.T) {
	tmpDir := t.TempDir()
	runner := NewRunner(tmpDir, nil)

	// Must not panic or block when no module is present.
	runner.RunPostCommit("c1", []string{"a.txt"})
}

func TestRunPostCheckout_NoModule(t *testing.T) {
	tmpDir := t.TempDir()
	runner := NewRunner(tmpDir, nil)

	runner.RunPostCheckout("c1")
}

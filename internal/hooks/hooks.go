// Package hooks runs user-supplied WASM modules at lifecycle events
// (spec SPEC_FULL §6.K), adapted from the teacher's native-executable,
// fire-and-forget hook runner to a sandboxed, portable alternative.
package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/untoldecay/mvcs/internal/types"
)

// Event names and their corresponding module file names under
// <workdir>/.mvcs/hooks/.
const (
	EventPreCommit    = "pre-commit"
	EventPostCommit   = "post-commit"
	EventPostCheckout = "post-checkout"
)

// Payload is the JSON document written to a hook module's stdin.
type Payload struct {
	Event        string   `json:"event"`
	CommitID     string   `json:"commitId,omitempty"`
	ChangedPaths []string `json:"changedPaths,omitempty"`
}

// Runner loads and executes WASM hook modules.
type Runner struct {
	hooksDir string
	timeout  time.Duration
	logf     func(format string, args ...any)
}

// NewRunner returns a Runner rooted at workingDir's hooks directory.
func NewRunner(workingDir string, logf func(format string, args ...any)) *Runner {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Runner{
		hooksDir: filepath.Join(workingDir, ".mvcs", "hooks"),
		timeout:  10 * time.Second,
		logf:     logf,
	}
}

func (r *Runner) modulePath(event string) string {
	return filepath.Join(r.hooksDir, event+".wasm")
}

// HookExists reports whether a module is present for event.
func (r *Runner) HookExists(event string) bool {
	info, err := os.Stat(r.modulePath(event))
	return err == nil && !info.IsDir()
}

// RunPreCommit runs the pre-commit hook, if present, and returns an error
// (wrapped as KindInvalidState) when the module exits non-zero, aborting
// the commit.
func (r *Runner) RunPreCommit(commitID string, changedPaths []string) error {
	if !r.HookExists(EventPreCommit) {
		return nil
	}
	out, err := r.run(EventPreCommit, Payload{Event: EventPreCommit, CommitID: commitID, ChangedPaths: changedPaths})
	if err != nil {
		return types.Wrap(types.KindInvalidState, err, "pre-commit hook rejected commit")
	}
	r.logf("pre-commit hook: %s", out)
	return nil
}

// RunPostCommit and RunPostCheckout are best-effort: failures are logged,
// never propagated.
func (r *Runner) RunPostCommit(commitID string, changedPaths []string) {
	if !r.HookExists(EventPostCommit) {
		return
	}
	out, err := r.run(EventPostCommit, Payload{Event: EventPostCommit, CommitID: commitID, ChangedPaths: changedPaths})
	if err != nil {
		r.logf("post-commit hook failed: %v", err)
		return
	}
	r.logf("post-commit hook: %s", out)
}

func (r *Runner) RunPostCheckout(commitID string) {
	if !r.HookExists(EventPostCheckout) {
		return
	}
	out, err := r.run(EventPostCheckout, Payload{Event: EventPostCheckout, CommitID: commitID})
	if err != nil {
		r.logf("post-checkout hook failed: %v", err)
		return
	}
	r.logf("post-checkout hook: %s", out)
}

// run compiles and instantiates the module for event, feeding payload as
// JSON on stdin and returning its stdout. A non-zero exit surfaces as an
// error.
func (r *Runner) run(event string, payload Payload) (string, error) {
	code, err := os.ReadFile(r.modulePath(event))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	wasi_snapshot_preview1.MustInstantiate(ctx, runtime)

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cfg := wazero.NewModuleConfig().
		WithStdin(bytes.NewReader(data)).
		WithStdout(&stdout).
		WithStderr(&stderr).
		WithArgs(event).
		WithSysWalltime().
		WithSysNanotime()

	compiled, err := runtime.CompileModule(ctx, code)
	if err != nil {
		return "", fmt.Errorf("compile %s hook: %w", event, err)
	}
	defer compiled.Close(ctx)

	if _, err := runtime.InstantiateModule(ctx, compiled, cfg); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s hook: %w: %s", event, err, stderr.String())
		}
		return "", fmt.Errorf("%s hook: %w", event, err)
	}

	return stdout.String(), nil
}

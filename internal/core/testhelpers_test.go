package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/untoldecay/mvcs/internal/clock"
	"github.com/untoldecay/mvcs/internal/fsprovider"
	"github.com/untoldecay/mvcs/internal/ids"
)

// newTestProject creates a fresh Project rooted at a temp directory, wired
// with a Sequential id generator and a Fake clock starting at the epoch
// used throughout spec.md §8's worked scenarios.
func newTestProject(t *testing.T) *Project {
	t.Helper()
	dir := t.TempDir()
	start, err := time.Parse(time.RFC3339, "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{
		FS:        fsprovider.New(),
		Generator: &ids.Sequential{},
		Clock:     clock.NewFake(start),
	}
	p, err := Create(dir, "JEST", "JEST_PROJECT", "", opts)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func writeFile(t *testing.T, p *Project, relPath, content string) {
	t.Helper()
	full := filepath.Join(p.WorkingDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, p *Project, relPath string) string {
	t.Helper()
	full := filepath.Join(p.WorkingDir(), filepath.FromSlash(relPath))
	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func removeFile(t *testing.T, p *Project, relPath string) {
	t.Helper()
	full := filepath.Join(p.WorkingDir(), filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil {
		t.Fatal(err)
	}
}

func blobCount(t *testing.T, p *Project) int {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(p.WorkingDir(), ProjectDirName, ContentsDirName))
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

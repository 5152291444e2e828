package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/untoldecay/mvcs/internal/clock"
	"github.com/untoldecay/mvcs/internal/content"
	"github.com/untoldecay/mvcs/internal/fsprovider"
	"github.com/untoldecay/mvcs/internal/ids"
)

func testClockStart(t *testing.T) time.Time {
	t.Helper()
	start, err := time.Parse(time.RFC3339, "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	return start
}

// TestWire_HashCacheSQLite covers the content.hash-cache = "sqlite" config
// toggle (SPEC_FULL.md §6.E/§3): when set, the Project's pool must be
// backed by an on-disk content.SQLiteCache rather than the default MemCache,
// and Close must release it.
func TestWire_HashCacheSQLite(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, ProjectDirName)
	if err := os.MkdirAll(projectDir, 0750); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(projectDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`hash-cache = "sqlite"`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts := Options{
		FS:        fsprovider.New(),
		Generator: &ids.Sequential{},
		Clock:     clock.NewFake(testClockStart(t)),
	}
	p, err := Create(dir, "JEST", "JEST_PROJECT", "", opts)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer p.Close()

	if p.cfg.HashCache != "sqlite" {
		t.Fatalf("cfg.HashCache = %q, want sqlite", p.cfg.HashCache)
	}
	if _, ok := p.pool.Cache().(*content.SQLiteCache); !ok {
		t.Errorf("pool cache = %T, want *content.SQLiteCache", p.pool.Cache())
	}
	if p.cacheCloser == nil {
		t.Error("cacheCloser should be set so Close releases the sqlite handle")
	}
	if _, err := os.Stat(filepath.Join(projectDir, ContentsDirName, hashCacheFileName)); err != nil {
		t.Errorf("expected hash cache db on disk: %v", err)
	}
}

// TestWire_HashCacheExplicitOverride confirms an explicit Options.Cache
// wins over a "sqlite" config toggle.
func TestWire_HashCacheExplicitOverride(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, ProjectDirName)
	if err := os.MkdirAll(projectDir, 0750); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(projectDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`hash-cache = "sqlite"`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	mem := content.NewMemCache()
	opts := Options{
		FS:        fsprovider.New(),
		Generator: &ids.Sequential{},
		Clock:     clock.NewFake(testClockStart(t)),
		Cache:     mem,
	}
	p, err := Create(dir, "JEST", "JEST_PROJECT", "", opts)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer p.Close()

	if p.pool.Cache() != mem {
		t.Error("explicit Options.Cache should take precedence over the config toggle")
	}
	if p.cacheCloser != nil {
		t.Error("cacheCloser should stay nil when the caller supplied its own cache")
	}
}

// TestWire_HashCacheDefaultMemory confirms the "memory" default never
// opens a sqlite handle.
func TestWire_HashCacheDefaultMemory(t *testing.T) {
	p := newTestProject(t)
	defer p.Close()

	if p.cfg.HashCache != "memory" {
		t.Fatalf("cfg.HashCache = %q, want memory", p.cfg.HashCache)
	}
	if _, ok := p.pool.Cache().(*content.MemCache); !ok {
		t.Errorf("pool cache = %T, want *content.MemCache", p.pool.Cache())
	}
	if p.cacheCloser != nil {
		t.Error("cacheCloser should stay nil for the default memory cache")
	}
}

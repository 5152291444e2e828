package core

import (
	"reflect"
	"testing"

	"github.com/untoldecay/mvcs/internal/clock"
	"github.com/untoldecay/mvcs/internal/fsprovider"
	"github.com/untoldecay/mvcs/internal/ids"
)

// TestSaveLoad_RoundTrip covers spec.md §8's round-trip invariant: save
// then load into a fresh Project yields an aggregate equal on every
// persisted field.
func TestSaveLoad_RoundTrip(t *testing.T) {
	p := newTestProject(t)
	writeFile(t, p, "file1.txt", "First line ever")
	if _, err := p.Commit(nil, "JEST", "Initial Commit", "a description"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, p, "file1.txt", "First line ever\nSecond line")
	if _, err := p.Commit(nil, "JEST", "Modify", ""); err != nil {
		t.Fatal(err)
	}
	if err := p.CreateBranch("dev"); err != nil {
		t.Fatal(err)
	}

	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(p.WorkingDir(), Options{
		FS:        fsprovider.New(),
		Generator: &ids.Sequential{},
		Clock:     clock.System{},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(p.Project, loaded.Project) {
		t.Errorf("round-trip mismatch:\n saved  = %+v\n loaded = %+v", p.Project, loaded.Project)
	}
}

// TestLoad_MissingProject covers the NotFound path when no project.json
// exists at workingDir.
func TestLoad_MissingProject(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, Options{}); err == nil {
		t.Fatal("Load on a directory with no project.json should fail")
	}
}

// TestLoad_IncompatibleSchema covers the Corrupt path on a major-version
// schema mismatch (spec SPEC_FULL §6's schema-version check).
func TestLoad_IncompatibleSchema(t *testing.T) {
	p := newTestProject(t)
	if err := p.Save(); err != nil {
		t.Fatal(err)
	}

	path := p.projectFile()
	data, err := p.fs.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := data.ReadData()
	data.Close()
	if err != nil {
		t.Fatal(err)
	}

	// Bump the major version far past SchemaVersion to force incompatibility.
	bumped := append([]byte(nil), raw...)
	bumped = []byte(replaceOnce(string(bumped), `"schemaVersion": "v1.0.0"`, `"schemaVersion": "v99.0.0"`))
	if err := p.fs.CreateFile(path, bumped); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(p.WorkingDir(), Options{FS: fsprovider.New()}); err == nil {
		t.Fatal("Load with an incompatible major schema version should fail")
	}
}

func replaceOnce(s, old, new string) string {
	for i := 0; i+len(old) <= len(s); i++ {
		if s[i:i+len(old)] == old {
			return s[:i] + new + s[i+len(old):]
		}
	}
	return s
}

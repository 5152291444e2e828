package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/mod/semver"

	"github.com/untoldecay/mvcs/internal/types"
)

// SchemaVersion is the persisted schema-version string written on every
// Save. A major-version mismatch on Load is a Corrupt error.
const SchemaVersion = "v1.0.0"

// dump is the exact on-disk shape of project.json: every field optional so
// Load can copy only recognized, present fields (spec §9's "duck-typed
// dump import", resolved explicitly for a statically typed target).
type dump struct {
	ID              string            `json:"id"`
	AuthorID        string            `json:"authorId"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	SchemaVersion   string            `json:"schemaVersion,omitempty"`
	Branches        map[string]string `json:"branches"`
	DefaultBranch   string            `json:"defaultBranch,omitempty"`
	CurrentBranch   string            `json:"currentBranch,omitempty"`
	Commits         map[string]types.Commit `json:"commits"`
	RootCommitID    string            `json:"rootCommitId,omitempty"`
	CurrentCommitID string            `json:"currentCommitId,omitempty"`
	Items           map[string]types.Item   `json:"items"`
}

func toDump(p types.Project) dump {
	d := dump{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		Title:           p.Title,
		Description:     p.Description,
		SchemaVersion:   SchemaVersion,
		Branches:        p.Branches,
		DefaultBranch:   p.DefaultBranch,
		CurrentBranch:   p.CurrentBranch,
		Commits:         p.Commits,
		RootCommitID:    p.RootCommitID,
		CurrentCommitID: p.CurrentCommitID,
		Items:           normalizeItemsOut(p.Items),
	}
	if d.Branches == nil {
		d.Branches = map[string]string{}
	}
	if d.Commits == nil {
		d.Commits = map[string]types.Commit{}
	}
	if d.Items == nil {
		d.Items = map[string]types.Item{}
	}
	return d
}

func fromDump(d dump) types.Project {
	p := types.Project{
		ID:              d.ID,
		AuthorID:        d.AuthorID,
		Title:           d.Title,
		Description:     d.Description,
		SchemaVersion:   d.SchemaVersion,
		Branches:        d.Branches,
		DefaultBranch:   d.DefaultBranch,
		CurrentBranch:   d.CurrentBranch,
		Commits:         d.Commits,
		RootCommitID:    d.RootCommitID,
		CurrentCommitID: d.CurrentCommitID,
		Items:           normalizeItemsIn(d.Items),
	}
	if p.Branches == nil {
		p.Branches = map[string]string{}
	}
	if p.Commits == nil {
		p.Commits = map[string]types.Commit{}
	}
	if p.Items == nil {
		p.Items = map[string]types.Item{}
	}
	return p
}

// normalizeItemsOut/In keep an item's Path slash-separated both in memory
// (as Status produces it) and on disk, resolving the path portability
// Open Question in spec §9 in favor of a portable representation; host
// separators appear only when a path is joined onto the working directory.
func normalizeItemsOut(items map[string]types.Item) map[string]types.Item {
	out := make(map[string]types.Item, len(items))
	for id, it := range items {
		it.Path = filepath.ToSlash(it.Path)
		out[id] = it
	}
	return out
}

func normalizeItemsIn(items map[string]types.Item) map[string]types.Item {
	out := make(map[string]types.Item, len(items))
	for id, it := range items {
		it.Path = filepath.ToSlash(it.Path)
		out[id] = it
	}
	return out
}

// Save persists the Project aggregate to <workdir>/.mvcs/project.json,
// guarded by an exclusive flock on a sibling lock file (spec §5's
// single-writer model), and written atomically via temp-file-then-rename
// (spec §9's Open Question, resolved in favor of robustness).
func (p *Project) Save() error {
	if err := p.fs.CreateDir(p.projectDir()); err != nil {
		return err
	}
	if err := p.fs.CreateDir(p.contentsDir()); err != nil {
		return err
	}

	p.Project.SchemaVersion = SchemaVersion

	lockPath := filepath.Join(p.projectDir(), ProjectFileName+".lock")
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return types.Wrap(types.KindIO, err, "lock %s", lockPath)
	}
	defer lock.Unlock()

	path := p.projectFile()
	if !p.fs.Exists(path) {
		if err := p.fs.CreateFile(path, []byte("{}")); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(toDump(p.Project), "", "  ")
	if err != nil {
		return types.Wrap(types.KindIO, err, "marshal project")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return types.Wrap(types.KindIO, err, "write temp project file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return types.Wrap(types.KindIO, err, "rename temp project file")
	}
	return nil
}

// Load reconstructs a Project from <workdir>/.mvcs/project.json.
func Load(workingDir string, opts Options) (*Project, error) {
	p := &Project{workingDir: workingDir}
	if err := p.wire(opts); err != nil {
		return nil, err
	}

	path := p.projectFile()
	if !p.fs.Exists(path) {
		return nil, types.NewError(types.KindNotFound, "no project at %s", path)
	}
	f, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := f.ReadData()
	f.Close()
	if err != nil {
		return nil, err
	}

	var d dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, types.Wrap(types.KindCorrupt, err, "parse %s", path)
	}
	if err := checkSchema(d.SchemaVersion); err != nil {
		return nil, err
	}

	p.Project = fromDump(d)
	return p, nil
}

func checkSchema(version string) error {
	if version == "" {
		return nil // pre-schema-versioning documents are accepted
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return types.NewError(types.KindCorrupt, "invalid schemaVersion %q", version)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return types.NewError(types.KindCorrupt,
			"incompatible schemaVersion %q (this binary understands %s)", version, SchemaVersion)
	}
	return nil
}

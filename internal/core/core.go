// Package core implements the MVCS engine: the Project aggregate, its
// persistence, and the Status, Commit, History, Checkout, and Branch
// components from spec.md §4.
package core

import (
	"io"
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/clock"
	"github.com/untoldecay/mvcs/internal/content"
	"github.com/untoldecay/mvcs/internal/fsprovider"
	"github.com/untoldecay/mvcs/internal/hooks"
	"github.com/untoldecay/mvcs/internal/ids"
	"github.com/untoldecay/mvcs/internal/logging"
	"github.com/untoldecay/mvcs/internal/summarize"
	"github.com/untoldecay/mvcs/internal/types"
)

// ProjectDirName is the hidden project directory name under a working dir.
const ProjectDirName = ".mvcs"

// ContentsDirName is the blob pool subdirectory.
const ContentsDirName = "contents"

// ProjectFileName is the single aggregate dump file.
const ProjectFileName = "project.json"

// Project is the in-memory aggregate: commit graph, branches, items, and
// the working directory it is bound to.
type Project struct {
	types.Project

	workingDir string

	fs          fsprovider.Provider
	gen         ids.Generator
	clk         clock.Clock
	pool        *content.Pool
	cfg         Config
	log         logging.Logger
	summary     summarize.Describer // optional, may be nil
	hooks       *hooks.Runner
	cacheCloser io.Closer // set when wire() opened a SQLiteCache; nil otherwise
}

// Close releases resources opened by Create/Load, such as an on-disk
// SQLite hash cache (content.hash-cache = "sqlite"). Safe to call on a
// Project with no such resources.
func (p *Project) Close() error {
	if p.cacheCloser != nil {
		return p.cacheCloser.Close()
	}
	return nil
}

// Options configures a new or opened Project. All fields are optional;
// sensible defaults are used when a field is the zero value.
type Options struct {
	FS        fsprovider.Provider
	Generator ids.Generator
	Clock     clock.Clock
	Cache     content.Cache
	Logger    logging.Logger
	Summary   summarize.Describer
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = fsprovider.New()
	}
	if o.Generator == nil {
		o.Generator = ids.UUIDGenerator{}
	}
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

func (p *Project) projectDir() string  { return filepath.Join(p.workingDir, ProjectDirName) }
func (p *Project) contentsDir() string { return filepath.Join(p.projectDir(), ContentsDirName) }
func (p *Project) projectFile() string { return filepath.Join(p.projectDir(), ProjectFileName) }

// WorkingDir returns the directory this Project is bound to.
func (p *Project) WorkingDir() string { return p.workingDir }

// Create initializes a brand-new Project rooted at workingDir, with fresh
// id and empty collections (spec §3 "Ownership & lifecycle").
func Create(workingDir, authorID, title, description string, opts Options) (*Project, error) {
	opts = opts.withDefaults()
	p := &Project{
		Project: types.Project{
			ID:          opts.Generator.New(),
			AuthorID:    authorID,
			Title:       title,
			Description: description,
			Branches:    make(map[string]string),
			Commits:     make(map[string]types.Commit),
			Items:       make(map[string]types.Item),
		},
		workingDir: workingDir,
	}
	if err := p.wire(opts); err != nil {
		return nil, err
	}
	return p, nil
}

// hashCacheFileName is the SQLite hash-cache database's name under the
// contents directory, when content.hash-cache = "sqlite" is configured.
const hashCacheFileName = ".hashcache.db"

func (p *Project) wire(opts Options) error {
	opts = opts.withDefaults()
	p.fs = opts.FS
	p.gen = opts.Generator
	p.clk = opts.Clock
	p.log = opts.Logger
	p.summary = opts.Summary
	cfg, err := loadConfig(p.fs, p.projectDir())
	if err != nil {
		cfg = DefaultConfig()
	}
	p.cfg = cfg
	if p.summary == nil && cfg.SummarizeOnCommit {
		if client, err := summarize.NewClient(""); err == nil {
			p.summary = client
		}
	}

	cache := opts.Cache
	if cache == nil && cfg.HashCache == "sqlite" {
		if err := p.fs.CreateDir(p.contentsDir()); err != nil {
			return err
		}
		sqliteCache, err := content.NewSQLiteCache(filepath.Join(p.contentsDir(), hashCacheFileName))
		if err != nil {
			return err
		}
		cache = sqliteCache
		p.cacheCloser = sqliteCache
	}
	p.pool = content.New(p.fs, p.gen, p.contentsDir(), p.cfg.HashAlgo, cache)
	p.hooks = hooks.NewRunner(p.workingDir, func(format string, args ...any) { p.log.Debugf(format, args...) })
	return nil
}

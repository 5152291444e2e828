// Package mvcs provides a minimal public API for embedding the content-
// addressed commit engine in other Go programs.
//
// Most callers should use the mvcs CLI directly. This package exports
// only the essential types and functions needed for Go-based tools that
// want to drive the engine programmatically.
package mvcs

import (
	"github.com/untoldecay/mvcs/internal/core"
	"github.com/untoldecay/mvcs/internal/types"
)

// Project is the engine's in-memory aggregate: commit graph, branches,
// items, and the working directory it is bound to.
type Project = core.Project

// Options configures a new or opened Project.
type Options = core.Options

// Status is the result of diffing the working tree against the current
// commit's item set.
type Status = core.Status

// Create initializes a brand-new project rooted at workingDir.
func Create(workingDir, authorID, title, description string, opts Options) (*Project, error) {
	return core.Create(workingDir, authorID, title, description, opts)
}

// Load reconstructs a Project from workingDir's .mvcs/project.json.
func Load(workingDir string, opts Options) (*Project, error) {
	return core.Load(workingDir, opts)
}

// Core types from internal/types.
type (
	Item       = types.Item
	ItemChange = types.ItemChange
	Commit     = types.Commit
	ErrorKind  = types.Kind
)

// Error kinds.
const (
	KindNotFound      = types.KindNotFound
	KindAmbiguous     = types.KindAmbiguous
	KindTooShort      = types.KindTooShort
	KindInvalidState  = types.KindInvalidState
	KindAlreadyExists = types.KindAlreadyExists
	KindIO            = types.KindIO
	KindCorrupt       = types.KindCorrupt
)

// DefaultBranchName is the branch created for a project's first commit
// when none is configured.
const DefaultBranchName = types.DefaultBranchName

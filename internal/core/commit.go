package core

import (
	"context"
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/clock"
	"github.com/untoldecay/mvcs/internal/types"
)

// Commit materializes the working tree's changes into a new commit
// (spec §4.G).
func (p *Project) Commit(files []string, authorID, title, description string) (*types.Commit, error) {
	if err := p.checkAtBranchTip(); err != nil {
		return nil, err
	}

	status, err := p.Status(files)
	if err != nil {
		return nil, err
	}

	paths := changedPaths(status)
	if err := p.hooks.RunPreCommit(p.CurrentCommitID, paths); err != nil {
		return nil, err
	}

	for id, item := range status.NewItems {
		if item.Content != types.DummyContent {
			p.Items[id] = item
			continue
		}
		blobID, err := p.pool.AddContent(filepath.Join(p.workingDir, item.Path), p.Items)
		if err != nil {
			return nil, err
		}
		item.Content = blobID
		status.NewItems[id] = item
		p.Items[id] = item
	}

	if description == "" && p.summary != nil {
		if desc, err := p.summary.Describe(context.Background(), paths); err == nil && desc != "" {
			description = desc
		}
		// best-effort: any summarizer error is silently ignored (spec SPEC_FULL §6.F)
	}

	commit := types.Commit{
		ID:          p.gen.New(),
		Parent:      p.CurrentCommitID,
		Children:    []string{},
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Date:        clock.ISO8601(p.clk.Now()),
		Changes:     status.Changes,
	}

	if len(p.Commits) == 0 {
		p.RootCommitID = commit.ID
		if p.CurrentBranch == "" {
			p.CurrentBranch = types.DefaultBranchName
		}
		if p.DefaultBranch == "" {
			p.DefaultBranch = p.CurrentBranch
		}
	}

	p.Commits[commit.ID] = commit
	p.Branches[p.CurrentBranch] = commit.ID
	p.CurrentCommitID = commit.ID

	p.hooks.RunPostCommit(commit.ID, paths)

	return &commit, nil
}

// checkAtBranchTip enforces spec §4.G step 1: once the graph is non-empty,
// the user must be "at the branch" to commit.
func (p *Project) checkAtBranchTip() error {
	if len(p.Commits) == 0 {
		return nil
	}
	if p.CurrentBranch == "" {
		return types.NewError(types.KindInvalidState, "Cannot commit when not at the branch")
	}
	tip, ok := p.Branches[p.CurrentBranch]
	if !ok {
		return types.NewError(types.KindInvalidState, "Cannot commit when not at the branch")
	}
	if tip != p.CurrentCommitID {
		return types.NewError(types.KindInvalidState, "Cannot commit when not at the branch")
	}
	return nil
}

func changedPaths(status *Status) []string {
	var paths []string
	for _, it := range status.NewItems {
		paths = append(paths, it.Path)
	}
	return paths
}

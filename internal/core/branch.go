package core

import "github.com/untoldecay/mvcs/internal/types"

// MatchCommitID resolves a (possibly partial) commit id to a full id
// (spec §4.J). prefix must be at least types.MinPrefixLength characters,
// or the repo's configured override.
func (p *Project) MatchCommitID(prefix string) (string, error) {
	minLen := p.cfg.MinPrefixLength
	if minLen <= 0 {
		minLen = types.MinPrefixLength
	}
	if len(prefix) < minLen {
		return "", types.NewError(types.KindTooShort,
			"commit id prefix %q is shorter than the minimum of %d characters", prefix, minLen)
	}

	var candidates []string
	for id := range p.Commits {
		if len(id) >= len(prefix) && id[:len(prefix)] == prefix {
			candidates = append(candidates, id)
		}
	}
	switch len(candidates) {
	case 0:
		return "", types.NewError(types.KindNotFound, "No ID candidate for %s found", prefix)
	case 1:
		return candidates[0], nil
	default:
		return "", types.NewError(types.KindAmbiguous, "Multiple ID candidates were found for %s", prefix)
	}
}

// CreateBranch creates a new branch pointing at the current commit
// (spec §4.J).
func (p *Project) CreateBranch(name string) error {
	if len(p.Commits) > 0 && p.CurrentCommitID == "" {
		return types.NewError(types.KindInvalidState, "cannot create branch: no current commit")
	}
	if _, exists := p.Branches[name]; exists {
		return types.NewError(types.KindAlreadyExists, "branch %q already exists", name)
	}
	p.Branches[name] = p.CurrentCommitID
	if p.DefaultBranch == "" {
		p.DefaultBranch = name
	}
	return nil
}

// DeleteBranch removes a branch, enforcing spec §4.J's guard rails.
func (p *Project) DeleteBranch(name string) error {
	if _, exists := p.Branches[name]; !exists {
		return types.NewError(types.KindNotFound, "branch %q not found", name)
	}
	if len(p.Branches) == 1 {
		return types.NewError(types.KindInvalidState, "cannot delete the only remaining branch")
	}
	if name == p.CurrentBranch {
		return types.NewError(types.KindInvalidState, "cannot delete the current branch %q", name)
	}
	if name == p.DefaultBranch {
		return types.NewError(types.KindInvalidState, "cannot delete the default branch %q", name)
	}
	delete(p.Branches, name)
	return nil
}

// RenameBranch renames a branch, updating CurrentBranch/DefaultBranch if
// they pointed at the old name.
func (p *Project) RenameBranch(oldName, newName string) error {
	commitID, exists := p.Branches[oldName]
	if !exists {
		return types.NewError(types.KindNotFound, "branch %q not found", oldName)
	}
	if _, exists := p.Branches[newName]; exists {
		return types.NewError(types.KindAlreadyExists, "branch %q already exists", newName)
	}
	delete(p.Branches, oldName)
	p.Branches[newName] = commitID
	if p.CurrentBranch == oldName {
		p.CurrentBranch = newName
	}
	if p.DefaultBranch == oldName {
		p.DefaultBranch = newName
	}
	return nil
}

// SetDefaultBranch sets the project's default branch.
func (p *Project) SetDefaultBranch(name string) error {
	if _, exists := p.Branches[name]; !exists {
		return types.NewError(types.KindNotFound, "branch %q not found", name)
	}
	p.DefaultBranch = name
	return nil
}

// GetCurrentCommit returns the commit the working tree is aligned with, or
// (nil, nil) if no commit has been made yet.
func (p *Project) GetCurrentCommit() (*types.Commit, error) {
	if p.CurrentCommitID == "" {
		if len(p.Commits) > 0 {
			return nil, types.NewError(types.KindInvalidState, "current commit is unset but commits exist")
		}
		return nil, nil
	}
	commit, ok := p.Commits[p.CurrentCommitID]
	if !ok {
		return nil, types.NewError(types.KindCorrupt, "current commit %s not found", p.CurrentCommitID)
	}
	return &commit, nil
}

package core

import (
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/types"
)

// Checkout materializes the item set visible at commitID into the working
// directory and advances CurrentCommitID (spec §4.I). Files not present in
// the target item set are removed; files already matching their target
// blob's hash are left untouched.
func (p *Project) Checkout(commitID string) error {
	resolved, err := p.MatchCommitID(commitID)
	if err != nil {
		return err
	}

	targetItems, err := p.GetCommitItems(resolved)
	if err != nil {
		return err
	}

	targetByPath := make(map[string]types.Item, len(targetItems))
	for _, it := range targetItems {
		targetByPath[it.Path] = it
	}

	present, err := p.fs.ReadDirDeep(p.workingDir, p.ignoreGlobs())
	if err != nil {
		return err
	}
	for _, abs := range present {
		if p.fs.IsDir(abs) {
			continue
		}
		rel, err := filepath.Rel(p.workingDir, abs)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if _, wanted := targetByPath[rel]; !wanted {
			if err := p.fs.DeleteFileOrDir(abs); err != nil {
				return err
			}
		}
	}

	for _, item := range targetItems {
		dst := filepath.Join(p.workingDir, filepath.FromSlash(item.Path))
		if p.fs.Exists(dst) {
			curHash, err := p.pool.HashOfSource(dst)
			if err == nil {
				wantHash, err := p.pool.HashOf(item.Content)
				if err == nil && curHash == wantHash {
					continue
				}
			}
		}
		if err := p.fs.CopyFile(p.pool.BlobPath(item.Content), dst); err != nil {
			return err
		}
	}

	p.CurrentCommitID = resolved
	p.hooks.RunPostCheckout(resolved)
	return nil
}

// CheckoutBranch checks out the commit a branch currently points at and
// marks the project as being at that branch (spec §4.I, §7's state
// machine).
func (p *Project) CheckoutBranch(name string) error {
	commitID, exists := p.Branches[name]
	if !exists {
		return types.NewError(types.KindNotFound, "branch %q not found", name)
	}
	if commitID != "" {
		if err := p.Checkout(commitID); err != nil {
			return err
		}
	}
	p.CurrentBranch = name
	return nil
}

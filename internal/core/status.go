package core

import (
	"path/filepath"
	"sort"

	"github.com/untoldecay/mvcs/internal/types"
)

// Status is the result of diffing the working tree against the current
// commit's item set (spec §4.F).
type Status struct {
	LastItems map[string]types.Item // items visible at the current commit
	NewItems  map[string]types.Item // placeholder items for added/modified/renamed files
	Changes   []types.ItemChange
}

func (p *Project) ignoreGlobs() []string {
	globs := []string{ProjectDirName + "/**"}
	return append(globs, p.cfg.IgnoreGlobs...)
}

// Status computes the diff described in spec §4.F. If files is non-empty
// it is used (deduplicated) as the candidate set; otherwise the candidate
// set is the union of the working tree and the current commit's item paths.
func (p *Project) Status(files []string) (*Status, error) {
	if !p.fs.Exists(p.projectDir()) {
		return nil, types.NewError(types.KindIO, "project directory %s is missing", p.projectDir())
	}

	lastItems := make(map[string]types.Item)
	if p.CurrentCommitID != "" {
		items, err := p.GetCommitItems(p.CurrentCommitID)
		if err != nil {
			return nil, err
		}
		lastItems = items
	}

	candidates, err := p.candidatePaths(files, lastItems)
	if err != nil {
		return nil, err
	}

	lastByPath := make(map[string]types.Item, len(lastItems))
	for _, it := range lastItems {
		lastByPath[it.Path] = it
	}

	newItems := make(map[string]types.Item)
	var changes []types.ItemChange

	for _, relPath := range candidates {
		absPath := filepath.Join(p.workingDir, relPath)
		if p.fs.IsDir(absPath) {
			continue
		}

		lastItem, hadLast := lastByPath[relPath]

		if !p.fs.Exists(absPath) {
			if hadLast {
				changes = append(changes, types.ItemChange{From: lastItem.ID})
			}
			continue
		}

		newHash, err := p.pool.HashOfSource(absPath)
		if err != nil {
			return nil, err
		}

		if hadLast {
			oldHash, err := p.pool.HashOf(lastItem.Content)
			if err != nil {
				return nil, err
			}
			if oldHash == newHash {
				continue // unchanged
			}
			newID := p.gen.New()
			item := types.Item{ID: newID, Content: types.DummyContent, Path: relPath}
			newItems[newID] = item
			changes = append(changes, types.ItemChange{From: lastItem.ID, To: newID})
			continue
		}

		// No lastItem for this path: either brand new content, or a
		// rename/copy of content that already exists under another path.
		newID := p.gen.New()
		if blobID, ok := p.pool.FindByHash(newHash, lastItems); ok {
			item := types.Item{ID: newID, Content: blobID, Path: relPath}
			newItems[newID] = item
		} else {
			item := types.Item{ID: newID, Content: types.DummyContent, Path: relPath}
			newItems[newID] = item
		}
		changes = append(changes, types.ItemChange{To: newID})
	}

	return &Status{LastItems: lastItems, NewItems: newItems, Changes: changes}, nil
}

// candidatePaths builds the deduplicated candidate set: explicit files if
// given, else the union of the working tree and lastItems' paths
// (spec §4.F step 2).
func (p *Project) candidatePaths(files []string, lastItems map[string]types.Item) ([]string, error) {
	if len(files) > 0 {
		seen := make(map[string]bool)
		var out []string
		for _, f := range files {
			rel := filepath.ToSlash(f)
			if !seen[rel] {
				seen[rel] = true
				out = append(out, rel)
			}
		}
		sort.Strings(out)
		return out, nil
	}

	seen := make(map[string]bool)
	var out []string

	tree, err := p.fs.ReadDirDeep(p.workingDir, p.ignoreGlobs())
	if err != nil {
		return nil, err
	}
	for _, abs := range tree {
		rel, err := filepath.Rel(p.workingDir, abs)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if !seen[rel] {
			seen[rel] = true
			out = append(out, rel)
		}
	}
	for _, it := range lastItems {
		if !seen[it.Path] {
			seen[it.Path] = true
			out = append(out, it.Path)
		}
	}

	sort.Strings(out)
	return out, nil
}

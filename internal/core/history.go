package core

import "github.com/untoldecay/mvcs/internal/types"

// GetCommitItems folds ancestor changes into the set of items visible at
// commitID (spec §4.H). commitID may be a prefix (spec §4.J).
func (p *Project) GetCommitItems(commitID string) (map[string]types.Item, error) {
	resolved, err := p.MatchCommitID(commitID)
	if err != nil {
		return nil, err
	}
	chain, err := p.ancestorChain(resolved)
	if err != nil {
		return nil, err
	}

	working := make(map[string]string) // item id -> path of the live set; not read after the fold
	result := make(map[string]types.Item)
	for _, commit := range chain {
		for _, change := range commit.Changes {
			if change.To != "" {
				item, ok := p.Items[change.To]
				if !ok {
					return nil, types.NewError(types.KindCorrupt,
						"commit %s references unknown item %s", commit.ID, change.To)
				}
				result[change.To] = item
				working[change.To] = item.Path
			}
			if change.From != "" {
				if change.From == change.To {
					return nil, types.NewError(types.KindCorrupt,
						"commit %s has self-referencing change (from == to == %s)", commit.ID, change.From)
				}
				delete(result, change.From)
				delete(working, change.From)
			}
		}
	}
	return result, nil
}

// ancestorChain walks parent pointers from commitID back to the root,
// returning commits in root-to-target order (spec §4.H step 2-3). The
// walk is bounded by the total commit count to guard against a corrupt
// cyclic graph (spec §9).
func (p *Project) ancestorChain(commitID string) ([]types.Commit, error) {
	var reversed []types.Commit
	seen := make(map[string]bool)
	cur := commitID
	limit := len(p.Commits) + 1
	for cur != "" {
		if len(reversed) > limit {
			return nil, types.NewError(types.KindCorrupt, "commit graph cycle detected at %s", cur)
		}
		commit, ok := p.Commits[cur]
		if !ok {
			return nil, types.NewError(types.KindNotFound, "commit %s not found", cur)
		}
		if seen[cur] {
			return nil, types.NewError(types.KindCorrupt, "commit graph cycle detected at %s", cur)
		}
		seen[cur] = true
		reversed = append(reversed, commit)
		cur = commit.Parent
	}
	// reverse into root -> target order
	out := make([]types.Commit, len(reversed))
	for i, c := range reversed {
		out[len(reversed)-1-i] = c
	}
	return out, nil
}

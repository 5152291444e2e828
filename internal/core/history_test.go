package core

import (
	"errors"
	"testing"

	"github.com/untoldecay/mvcs/internal/types"
)

// TestGetCommitItems_FoldsAncestorChain covers spec.md §4.H / §8's
// universal invariant: getCommitItems(C) reflects every change from root
// to C in order.
func TestGetCommitItems_FoldsAncestorChain(t *testing.T) {
	p := newTestProject(t)
	writeFile(t, p, "file1.txt", "v1")
	c1, err := p.Commit(nil, "JEST", "first", "")
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, p, "file2.txt", "v1")
	c2, err := p.Commit(nil, "JEST", "second", "")
	if err != nil {
		t.Fatal(err)
	}

	items, err := p.GetCommitItems(c2.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("items at c2 = %+v, want 2 entries", items)
	}

	itemsAtC1, err := p.GetCommitItems(c1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(itemsAtC1) != 1 {
		t.Fatalf("items at c1 = %+v, want 1 entry", itemsAtC1)
	}
}

// TestGetCommitItems_CycleDetected covers spec.md §9's cyclic-graph risk:
// a corrupt parent chain that loops must fail rather than spin forever.
func TestGetCommitItems_CycleDetected(t *testing.T) {
	p := newTestProject(t)
	p.Commits["aaaaaa"] = types.Commit{ID: "aaaaaa", Parent: "bbbbbb"}
	p.Commits["bbbbbb"] = types.Commit{ID: "bbbbbb", Parent: "aaaaaa"}

	if _, err := p.GetCommitItems("aaaaaa"); !errors.Is(err, types.ErrCorrupt) {
		t.Errorf("cyclic chain err = %v, want Corrupt", err)
	}
}

// TestGetCommitItems_UnknownItemReference covers the Corrupt path when a
// change references an item id absent from the Project's item table.
func TestGetCommitItems_UnknownItemReference(t *testing.T) {
	p := newTestProject(t)
	p.Commits["aaaaaa"] = types.Commit{
		ID:      "aaaaaa",
		Changes: []types.ItemChange{{To: "missing-item"}},
	}

	if _, err := p.GetCommitItems("aaaaaa"); !errors.Is(err, types.ErrCorrupt) {
		t.Errorf("unknown item reference err = %v, want Corrupt", err)
	}
}

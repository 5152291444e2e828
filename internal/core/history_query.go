package core

import (
	"sort"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/untoldecay/mvcs/internal/types"
)

var whenParser = buildWhenParser()

func buildWhenParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// CommitsSince returns every commit reachable from currentCommitId whose
// Date is at or after the moment expr resolves to, newest first
// (SPEC_FULL §9's ordering guarantee). expr is a natural-language
// expression like "3 days ago" or "yesterday".
func (p *Project) CommitsSince(expr string) ([]types.Commit, error) {
	result, err := whenParser.Parse(expr, p.clk.Now())
	if err != nil {
		return nil, types.Wrap(types.KindInvalidState, err, "parse time expression %q", expr)
	}
	if result == nil {
		return nil, types.NewError(types.KindInvalidState, "could not understand time expression %q", expr)
	}
	return p.commitsSinceTime(result.Time)
}

func (p *Project) commitsSinceTime(since time.Time) ([]types.Commit, error) {
	if p.CurrentCommitID == "" {
		return nil, nil
	}
	chain, err := p.ancestorChain(p.CurrentCommitID)
	if err != nil {
		return nil, err
	}

	var out []types.Commit
	for _, c := range chain {
		t, err := time.Parse("2006-01-02T15:04:05.000Z", c.Date)
		if err != nil {
			continue
		}
		if !t.Before(since) {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

package covering

import (
	"fmt"
	"sort"

	"github.com/dbsmedya/mincover/internal/numutil"
)

// Report is the outcome of one MinimalCoverings call: the accepted
// coverings sorted by weight, pattern statistics in discovery order, and
// the search diagnostics.
type Report[C Ordered[C]] struct {
	Universe string
	Size     int

	// Coverings holds every minimal covering of the requested size in
	// canonical form, sorted by ascending weight; the strongly minimal
	// ones (weight exactly 1) form the leading Strong entries.
	Coverings [][]C

	// Strong counts the strongly minimal coverings.
	Strong int

	// Patterns maps each index pattern to its number of coverings, in
	// first-discovery order.
	Patterns *PatternTable

	// Stats carries the diagnostics of the search.
	Stats Stats
}

// StrongCoverings returns the strongly minimal coverings (exact partitions).
func (r *Report[C]) StrongCoverings() [][]C {
	return r.Coverings[:r.Strong]
}

// OverlapCoverings returns the minimal coverings of weight above 1.
func (r *Report[C]) OverlapCoverings() [][]C {
	return r.Coverings[r.Strong:]
}

// MinimalCoverings enumerates every minimal covering of the universe by
// exactly n components. Sizes 0 and 1 are answered directly; sizes below
// the universe's minimum nontrivial size return an empty report; anything
// else runs the full backtracking search from a list of n trivial
// components.
func MinimalCoverings[C Component[C, P], P any](u Universe[C, P], n int, opts ...Option) (*Report[C], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	report := &Report[C]{
		Universe: u.Name(),
		Size:     n,
		Patterns: NewPatternTable(),
	}

	if n == 0 {
		return report, nil
	}
	if n == 1 {
		// The whole universe as a single component, no search needed.
		whole := []C{u.Whole()}
		report.Coverings = [][]C{whole}
		report.Strong = 1
		report.Patterns.Record(PatternOf(whole))
		return report, nil
	}
	if n < u.MinNontrivialSize() {
		return report, nil
	}

	ctx := newSearchContext(u, n, options)
	if err := ctx.search(0, 0); err != nil {
		return nil, err
	}
	report.Stats = ctx.finish()
	report.Patterns = ctx.table

	classify(u, ctx, report)

	options.Logger.WithUniverse(u.Name()).WithSize(n).Infow("search finished",
		"coverings", len(report.Coverings),
		"strong", report.Strong,
		"patterns", report.Patterns.Len(),
		"max_skip", report.Stats.MaxSkip,
		"max_depth", report.Stats.MaxDepth,
		"nodes", report.Stats.Nodes,
	)
	return report, nil
}

// classify orders the accepted coverings by weight, splits off the strongly
// minimal ones, and re-checks minimality of the overlapping remainder. The
// engine only accepts minimal coverings, so the re-check is normally a
// no-op, but it keeps the classification honest for every engine
// configuration (including pruning experiments).
func classify[C Component[C, P], P any](u Universe[C, P], ctx *searchContext[C, P], report *Report[C]) {
	lists := ctx.res.Lists()
	sort.SliceStable(lists, func(i, j int) bool {
		wi, wj := Weight(lists[i]), Weight(lists[j])
		if c := wi.Cmp(wj); c != 0 {
			return c < 0
		}
		return ListKey(lists[i]) < ListKey(lists[j])
	})

	one := numutil.One()
	for _, list := range lists {
		switch {
		case Weight(list).Cmp(one) == 0:
			report.Coverings = append(report.Coverings, list)
			report.Strong++
		case IsMinimal(u, list):
			report.Coverings = append(report.Coverings, list)
		}
	}
}

package covering

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// searchContext owns every piece of mutable state of one search: the shared
// covering list, the result accumulator, and the diagnostics. It is created
// by MinimalCoverings and discarded when the call returns.
type searchContext[C Component[C, P], P any] struct {
	uni    Universe[C, P]
	list   []C
	res    *ResultSet[C]
	table  *PatternTable
	useful *orderedmap.OrderedMap[string, bool]
	opts   Options
	stats  Stats
}

func newSearchContext[C Component[C, P], P any](u Universe[C, P], n int, opts Options) *searchContext[C, P] {
	list := make([]C, n)
	for i := range list {
		list[i] = u.Trivial()
	}
	return &searchContext[C, P]{
		uni:    u,
		list:   list,
		res:    NewResultSet[C](),
		table:  NewPatternTable(),
		useful: orderedmap.NewOrderedMap[string, bool](),
		opts:   opts,
	}
}

// search explores every extension of the current list into a covering of
// the same size, given that the list does not cover the universe and that
// its first skip canonical points are already covered. Accepted coverings
// (full and minimal) land in the result set; the list itself is always
// restored before returning.
func (s *searchContext[C, P]) search(skip, depth int) error {
	s.stats.Nodes++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	// Trailing trivial components are interchangeable placeholders, so only
	// the first of them is ever branched on.
	active := len(s.list)
	for i, c := range s.list {
		if c.IsTrivial() {
			active = i + 1
			break
		}
	}

	// Advance to the first canonical point outside the current union.
	k := skip
	var v P
	for {
		v = s.uni.Point(k)
		if !InUnion(v, s.list) {
			break
		}
		k++
	}
	if k > s.stats.MaxSkip {
		s.stats.MaxSkip = k
	}

	for i := 0; i < active; i++ {
		prev := s.list[i]

		if s.opts.Pruning && prev.IsMaximal() {
			// Prime index: the only further enlargement is the whole
			// universe, handled below as a dead branch anyway.
			s.stats.Pruned++
			continue
		}

		next := prev.Enlarge(v)
		if next.Index() == 1 {
			// Saturated to the whole universe; dead end for this slot.
			continue
		}
		if prev.IsGenuine() {
			// Termination rests on the index dropping to a proper divisor.
			if next.Index() <= 0 || next.Index() >= prev.Index() || prev.Index()%next.Index() != 0 {
				return fmt.Errorf("%w: enlarging %v by %v gave index %d (was %d)",
					ErrInvariantViolation, prev, v, next.Index(), prev.Index())
			}
		}

		s.list[i] = next
		err := s.descend(k, depth, v)
		s.list[i] = prev
		if err != nil {
			return err
		}
	}
	return nil
}

// descend handles one enlarged list: record it if it is an acceptable
// covering, recurse if it still is not a cover.
func (s *searchContext[C, P]) descend(skip, depth int, v P) error {
	if !IsCover(s.uni, s.list) {
		// v is covered by the component just enlarged, so the guarantee
		// extends to skip+1 points.
		return s.search(skip+1, depth+1)
	}
	if IsFull(s.uni, s.list) && IsMinimal(s.uni, s.list) {
		s.accept(v, depth)
	}
	return nil
}

// accept records a full, minimal covering: the point that completed it, the
// canonical copy in the result set, the pattern statistics, and a discovery
// notification. Duplicate coverings only refresh the useful-point record.
func (s *searchContext[C, P]) accept(v P, depth int) {
	s.useful.Set(fmt.Sprintf("%v", v), true)

	canon, inserted := s.res.Insert(s.list)
	if !inserted {
		return
	}

	pattern := PatternOf(canon)
	count, first := s.table.Record(pattern)

	log := s.opts.Logger.WithUniverse(s.uni.Name()).WithDepth(depth)
	if first {
		log.Infow("new pattern discovered",
			"pattern", pattern.String(),
			"weight", Weight(canon).RatString(),
		)
	}
	if s.opts.Verbose {
		log.Infow("covering accepted",
			"covering", fmt.Sprintf("%v", canon),
			"pattern", pattern.String(),
			"pattern_count", count,
		)
	} else {
		log.Debugw("covering accepted",
			"covering", fmt.Sprintf("%v", canon),
			"pattern", pattern.String(),
			"pattern_count", count,
		)
	}
}

// finish freezes the diagnostics for the report.
func (s *searchContext[C, P]) finish() Stats {
	stats := s.stats
	for el := s.useful.Front(); el != nil; el = el.Next() {
		stats.UsefulPoints = append(stats.UsefulPoints, el.Key)
	}
	return stats
}

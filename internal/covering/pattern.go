package covering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Pattern is the sorted tuple of indices of a covering. It identifies the
// shape of a covering independently of which concrete components achieve it
// and is the key for occurrence statistics.
type Pattern []int64

// PatternOf returns the ascending index pattern of a list of components.
// Non-genuine components carry no index and are ignored.
func PatternOf[C Ordered[C]](list []C) Pattern {
	p := make(Pattern, 0, len(list))
	for _, c := range list {
		if c.IsGenuine() {
			p = append(p, c.Index())
		}
	}
	sort.Slice(p, func(i, j int) bool { return p[i] < p[j] })
	return p
}

// String renders the pattern as "(2, 4, 4)".
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// PatternTable counts how many accepted coverings realize each pattern,
// preserving the order in which patterns were first discovered.
type PatternTable struct {
	counts *orderedmap.OrderedMap[string, int]
}

// NewPatternTable returns an empty pattern table.
func NewPatternTable() *PatternTable {
	return &PatternTable{counts: orderedmap.NewOrderedMap[string, int]()}
}

// Record counts one occurrence of p. It returns the updated count and
// whether this was the first covering with that pattern.
func (t *PatternTable) Record(p Pattern) (count int, first bool) {
	key := p.String()
	count, _ = t.counts.Get(key)
	count++
	t.counts.Set(key, count)
	return count, count == 1
}

// Count returns the number of coverings recorded for p.
func (t *PatternTable) Count(p Pattern) int {
	count, _ := t.counts.Get(p.String())
	return count
}

// Len returns the number of distinct patterns recorded.
func (t *PatternTable) Len() int {
	return t.counts.Len()
}

// Each calls fn for every pattern in first-discovery order.
func (t *PatternTable) Each(fn func(pattern string, count int)) {
	for el := t.counts.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

package covering

import "strings"

// Canonical returns a copy of list sorted by the component total order.
// Two coverings are the same up to permutation exactly when their canonical
// forms have equal keys.
func Canonical[C Ordered[C]](list []C) []C {
	out := make([]C, len(list))
	copy(out, list)
	// Insertion sort keeps this dependency-free and the lists are tiny.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// ListKey returns the deduplication key of a canonical list.
func ListKey[C Ordered[C]](list []C) string {
	keys := make([]string, len(list))
	for i, c := range list {
		keys[i] = c.Key()
	}
	return strings.Join(keys, "|")
}

// ResultSet accumulates accepted coverings, deduplicated by canonical form.
// Lists are stored in insertion (discovery) order.
type ResultSet[C Ordered[C]] struct {
	seen  map[string]bool
	lists [][]C
}

// NewResultSet returns an empty result set.
func NewResultSet[C Ordered[C]]() *ResultSet[C] {
	return &ResultSet[C]{seen: make(map[string]bool)}
}

// Insert adds the canonical form of list if it is not already present.
// It returns the canonical copy and whether it was newly inserted.
func (r *ResultSet[C]) Insert(list []C) ([]C, bool) {
	canon := Canonical(list)
	key := ListKey(canon)
	if r.seen[key] {
		return canon, false
	}
	r.seen[key] = true
	r.lists = append(r.lists, canon)
	return canon, true
}

// Contains reports whether the canonical form of list is present.
func (r *ResultSet[C]) Contains(list []C) bool {
	return r.seen[ListKey(Canonical(list))]
}

// Len returns the number of stored coverings.
func (r *ResultSet[C]) Len() int {
	return len(r.lists)
}

// Lists returns the stored coverings in discovery order. The returned slice
// is shared with the set; callers must not mutate it.
func (r *ResultSet[C]) Lists() [][]C {
	return r.lists
}

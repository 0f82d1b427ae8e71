package covering

import (
	"math/big"

	"github.com/dbsmedya/mincover/internal/numutil"
)

// InUnion reports whether p lies in at least one component of list.
func InUnion[C Component[C, P], P any](p P, list []C) bool {
	for _, c := range list {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

// Weight returns the exact total weight of the genuine components of list.
// A covering has weight >= 1; weight exactly 1 characterizes a partition.
func Weight[C Ordered[C]](list []C) *big.Rat {
	total := new(big.Rat)
	for _, c := range list {
		if c.IsGenuine() {
			total.Add(total, c.Weight())
		}
	}
	return total
}

// IndexLCM returns the least common multiple of the indices of the genuine
// components of list, or 1 if there are none.
func IndexLCM[C Ordered[C]](list []C) int64 {
	m := int64(1)
	for _, c := range list {
		if c.IsGenuine() {
			m = numutil.LCM(m, c.Index())
		}
	}
	return m
}

// IsCover reports whether the genuine components of list cover the universe.
// The weight bound is checked first: a union of density below 1 cannot
// cover, and the test-point scan is the expensive part.
func IsCover[C Component[C, P], P any](u Universe[C, P], list []C) bool {
	return coverWithout(u, list, -1)
}

// coverWithout is IsCover with the component at position omit deleted
// (omit < 0 deletes nothing).
func coverWithout[C Component[C, P], P any](u Universe[C, P], list []C, omit int) bool {
	genuine := make([]C, 0, len(list))
	for i, c := range list {
		if i != omit && c.IsGenuine() {
			genuine = append(genuine, c)
		}
	}
	if Weight(genuine).Cmp(numutil.One()) < 0 {
		return false
	}
	m := IndexLCM(genuine)
	for _, p := range u.TestPoints(m) {
		if !InUnion(p, genuine) {
			return false
		}
	}
	return true
}

// IsFull reports whether list, assumed to cover, is full: every component
// is genuine and no single component can be deleted without breaking the
// cover. Deleting can only preserve the cover when the weight exceeds 1.
func IsFull[C Component[C, P], P any](u Universe[C, P], list []C) bool {
	for _, c := range list {
		if !c.IsGenuine() {
			return false
		}
	}
	if Weight(list).Cmp(numutil.One()) == 0 {
		return true
	}
	for i := range list {
		if coverWithout(u, list, i) {
			return false
		}
	}
	return true
}

// IsMinimal reports whether list, assumed to cover, is minimal: no single
// component can be deleted or replaced by a proper subcomponent without
// breaking the cover.
func IsMinimal[C Component[C, P], P any](u Universe[C, P], list []C) bool {
	for i := range list {
		if !isOneMinimal(u, list, i) {
			return false
		}
	}
	return true
}

// isOneMinimal reports whether the component at position i cannot be
// replaced by a proper subcomponent while preserving the cover.
func isOneMinimal[C Component[C, P], P any](u Universe[C, P], list []C, i int) bool {
	c := list[i]

	// Weight shortcut: replacing c by a proper subcomponent removes at
	// least half of its weight, which is impossible if that would push the
	// total below 1.
	excess := new(big.Rat).Sub(Weight(list), numutil.One())
	excess.Mul(excess, big.NewRat(2, 1))
	if c.Weight().Cmp(excess) > 0 {
		return true
	}

	// Private points of c: test points no other component contains. Any
	// replacement of c must still contain all of them.
	m := IndexLCM(list)
	var private []P
	for _, p := range u.TestPoints(m) {
		if !coveredByOther(p, list, c) {
			private = append(private, p)
		}
	}
	if len(private) == 0 {
		// c is completely redundant.
		return false
	}

	// c is minimal exactly when the smallest component containing its
	// private points is c itself.
	return u.SpanIndex(m, private) == c.Index()
}

// coveredByOther reports whether some genuine component of list other than
// c (by algebraic equality, so duplicates of c do not count) contains p.
func coveredByOther[C Component[C, P], P any](p P, list []C, c C) bool {
	for _, other := range list {
		if other.IsGenuine() && !other.Equal(c) && other.Contains(p) {
			return true
		}
	}
	return false
}

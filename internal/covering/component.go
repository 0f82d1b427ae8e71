package covering

import "math/big"

// Component is the algebraic building block of a covering: a finite-index
// subgroup of Z^2 or a residue class of Z. The type parameter C is the
// concrete component type itself and P its universe's point type.
//
// Components are immutable values. Enlarge returns the smallest component
// containing the receiver and one extra point; for a genuine component its
// index must drop to a proper divisor, which is what makes the search
// terminate.
type Component[C, P any] interface {
	// IsTrivial reports whether this is the empty placeholder component
	// (index infinity, containing no point).
	IsTrivial() bool

	// IsGenuine reports whether the component has finite index: full rank
	// over Z^2, positive modulus over Z. Only genuine components count
	// toward covers, weights, and patterns.
	IsGenuine() bool

	// IsMaximal reports whether the component cannot be enlarged except to
	// the whole universe, i.e. its index is prime. Maximal components are
	// pruned from the branch set.
	IsMaximal() bool

	// Index returns the index (Z^2) or modulus (Z) of a genuine component,
	// and 0 for components of infinite index.
	Index() int64

	// Weight returns the density of a genuine component as an exact
	// rational, and nil for components of infinite index.
	Weight() *big.Rat

	// Enlarge returns the smallest component containing the receiver and p.
	// p must not already be contained in the receiver.
	Enlarge(p P) C

	// Contains reports whether p lies in the component.
	Contains(p P) bool

	// Equal reports algebraic equality, independent of representation.
	Equal(other C) bool

	// Less defines the canonical total order used to sort accepted
	// coverings into their deduplication form.
	Less(other C) bool

	// Key returns a canonical encoding; two components are Equal exactly
	// when their keys coincide.
	Key() string

	String() string
}

// Ordered is the subset of Component that does not mention the point type.
// Result bookkeeping (canonical sorting, dedup keys, patterns, weights) only
// needs these operations, so reports and result sets are generic over
// Ordered and stay free of the point parameter.
type Ordered[C any] interface {
	IsGenuine() bool
	Index() int64
	Weight() *big.Rat
	Equal(other C) bool
	Less(other C) bool
	Key() string
	String() string
}

// Universe ties a component type to the infinite set it covers. Universes
// may cache enumeration state internally and are not safe for concurrent
// use; the search is strictly single-threaded.
type Universe[C Component[C, P], P any] interface {
	// Name identifies the universe in logs and reports.
	Name() string

	// Trivial returns the empty placeholder component.
	Trivial() C

	// Whole returns the index-1 component, the whole universe.
	Whole() C

	// Point returns the k-th point of the canonical enumeration, k >= 0.
	// The enumeration is deterministic and exhaustive.
	Point(k int) P

	// TestPoints returns a finite set of points such that a list of
	// genuine components whose indices all divide m covers the universe
	// exactly when it covers every test point.
	TestPoints(m int64) []P

	// SpanIndex returns the index of the smallest component containing
	// every given point, knowing that some component of index dividing m
	// contains them all. points must be non-empty.
	SpanIndex(m int64, points []P) int64

	// MinNontrivialSize returns the smallest list size worth searching.
	// Below it (but above 1) no minimal covering exists; this is a domain
	// fact owned by the universe, not derived by the driver.
	MinNontrivialSize() int
}

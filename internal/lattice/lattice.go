// Package lattice implements finite-index sublattices of Z^2 as covering
// components, together with the Z^2 universe: primitive vectors enumerated
// by height and the projective line P^1(Z/N) the covering predicates reduce
// to.
//
// A sublattice is encoded as a triple (N, c, d): the lattice of vectors
// (x, y) with x*d - y*c divisible by N, where (c, d) is a primitive
// direction and N the index in Z^2. N = 0 encodes the lower ranks: the
// span of (c, d) alone (rank 1), or the zero subgroup (rank 0, the trivial
// placeholder) when c = d = 0.
package lattice

import (
	"fmt"
	"math/big"

	"github.com/dbsmedya/mincover/internal/numutil"
)

// Vector is a point of the Z^2 universe: an integer vector considered up
// to sign. Canonical vectors have a positive first nonzero coordinate.
type Vector struct {
	X, Y int64
}

// String renders the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Wedge returns the wedge product v ∧ w = v.X*w.Y - v.Y*w.X. A vector lies
// in the lattice (N, c, d) exactly when its wedge with (c, d) is divisible
// by N.
func Wedge(v, w Vector) int64 {
	return v.X*w.Y - v.Y*w.X
}

// Lattice is a subgroup of Z^2 in normalized (N, c, d) form. The zero
// value is the trivial (rank 0) lattice. Lattices are immutable values and
// normalized on construction, so Equal is plain struct equality.
type Lattice struct {
	n    int64 // index; 0 for rank below 2
	c, d int64 // primitive direction; (0, 0) only for the trivial lattice
}

// Trivial returns the rank 0 placeholder lattice.
func Trivial() Lattice {
	return Lattice{}
}

// Span returns the rank 1 lattice generated by the primitive vector v.
func Span(v Vector) Lattice {
	c, d := normalizeSign(v.X, v.Y)
	return Lattice{n: 0, c: c, d: d}
}

// New returns the index-n lattice with direction (c, d), normalized to the
// canonical representative of (c : d) in P^1(Z/n). n must be positive.
func New(n, c, d int64) Lattice {
	c, d = p1Normalize(n, c, d)
	return Lattice{n: n, c: c, d: d}
}

// Whole returns the index-1 lattice, all of Z^2.
func Whole() Lattice {
	return New(1, 0, 1)
}

// Rank returns 2 for a finite-index lattice, 1 for a single-direction
// span, and 0 for the trivial lattice.
func (l Lattice) Rank() int {
	if l.n > 0 {
		return 2
	}
	if l.c == 0 && l.d == 0 {
		return 0
	}
	return 1
}

// IsTrivial reports whether l is the rank 0 placeholder.
func (l Lattice) IsTrivial() bool {
	return l.n == 0 && l.c == 0 && l.d == 0
}

// IsGenuine reports whether l has finite index (full rank).
func (l Lattice) IsGenuine() bool {
	return l.n > 0
}

// IsMaximal reports whether l has prime index. Enlarging such a lattice by
// any vector outside it saturates it to the whole plane.
func (l Lattice) IsMaximal() bool {
	return l.n > 0 && numutil.IsPrime(l.n)
}

// Index returns the index of l in Z^2, or 0 when the index is infinite.
func (l Lattice) Index() int64 {
	return l.n
}

// Weight returns 1/psi(N) for a genuine lattice: the density of its
// primitive vectors among all primitive vectors of Z^2. Nil otherwise.
func (l Lattice) Weight() *big.Rat {
	if l.n == 0 {
		return nil
	}
	return big.NewRat(1, numutil.Psi(l.n))
}

// Contains reports whether the vector v lies in l.
func (l Lattice) Contains(v Vector) bool {
	if l.IsTrivial() {
		return false
	}
	w := v.X*l.d - v.Y*l.c
	if l.n == 0 {
		return w == 0
	}
	return w%l.n == 0
}

// Enlarge returns the smallest lattice containing l and the primitive
// vector v. The trivial lattice grows to the span of v; otherwise the
// index drops to gcd(N, v ∧ (c, d)), keeping the direction.
func (l Lattice) Enlarge(v Vector) Lattice {
	if l.IsTrivial() {
		return Span(v)
	}
	n := numutil.GCD(l.n, Wedge(Vector{l.c, l.d}, v))
	if n == 0 {
		// v is parallel to the existing direction; nothing changes.
		return l
	}
	return New(n, l.c, l.d)
}

// Equal reports algebraic equality. Normalization makes this structural.
func (l Lattice) Equal(o Lattice) bool {
	return l == o
}

// Less orders lattices by descending rank, then ascending index, then the
// normalized direction pair. This is the canonical order accepted
// coverings are sorted by.
func (l Lattice) Less(o Lattice) bool {
	if l.Rank() != o.Rank() {
		return l.Rank() > o.Rank()
	}
	if l.n != o.n {
		return l.n < o.n
	}
	if l.c != o.c {
		return l.c < o.c
	}
	return l.d < o.d
}

// Key returns the canonical encoding of l.
func (l Lattice) Key() string {
	return l.String()
}

// String renders l in the L(c:d;N) form.
func (l Lattice) String() string {
	return fmt.Sprintf("L(%d:%d;%d)", l.c, l.d, l.n)
}

// normalizeSign flips (c, d) so the first nonzero coordinate is positive.
func normalizeSign(c, d int64) (int64, int64) {
	if c < 0 || (c == 0 && d < 0) {
		return -c, -d
	}
	return c, d
}

// p1Normalize returns the canonical representative of the projective class
// (c : d) in P^1(Z/n): the lexicographically smallest unit multiple of
// (c mod n, d mod n). Requires gcd(c, d, n) = 1, which every reduced
// lattice direction satisfies.
func p1Normalize(n, c, d int64) (int64, int64) {
	if n == 1 {
		return 0, 0
	}
	c = mod(c, n)
	d = mod(d, n)
	bestC, bestD := c, d
	for u := int64(2); u < n; u++ {
		if numutil.GCD(u, n) != 1 {
			continue
		}
		uc, ud := u*c%n, u*d%n
		if uc < bestC || (uc == bestC && ud < bestD) {
			bestC, bestD = uc, ud
		}
	}
	return bestC, bestD
}

// mod returns a mod n in [0, n).
func mod(a, n int64) int64 {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

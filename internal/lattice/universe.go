package lattice

import "github.com/dbsmedya/mincover/internal/numutil"

// Universe is the Z^2 universe: primitive vectors up to sign, enumerated
// in height order. It caches the enumeration and the P^1(Z/m) test-point
// sets between predicate calls; it is not safe for concurrent use.
type Universe struct {
	points     []Vector
	height     int64
	testPoints map[int64][]Vector
}

// NewUniverse returns a fresh Z^2 universe.
func NewUniverse() *Universe {
	return &Universe{
		// Height 1 in canonical order; later heights are generated on
		// demand by grow.
		points:     []Vector{{1, 0}, {0, 1}, {1, 1}, {1, -1}},
		height:     1,
		testPoints: make(map[int64][]Vector),
	}
}

// Name identifies the universe in logs and reports.
func (u *Universe) Name() string {
	return "lattice"
}

// Trivial returns the rank 0 placeholder lattice.
func (u *Universe) Trivial() Lattice {
	return Trivial()
}

// Whole returns the index-1 lattice.
func (u *Universe) Whole() Lattice {
	return Whole()
}

// MinNontrivialSize returns 3: no minimal covering of Z^2 by 2 sublattices
// exists (two proper sublattices have total density below 1).
func (u *Universe) MinNontrivialSize() int {
	return 3
}

// Point returns the k-th primitive vector of the canonical enumeration:
// ascending height (max-norm), and within one height ascending first
// coordinate with the positive second coordinate first.
func (u *Universe) Point(k int) Vector {
	for len(u.points) <= k {
		u.grow()
	}
	return u.points[k]
}

// grow appends every primitive vector of the next height.
func (u *Universe) grow() {
	h := u.height + 1
	u.height = h
	for a := int64(1); a < h; a++ {
		if numutil.GCD(a, h) == 1 {
			u.points = append(u.points, Vector{a, h}, Vector{a, -h})
		}
	}
	for b := int64(1); b < h; b++ {
		if numutil.GCD(h, b) == 1 {
			u.points = append(u.points, Vector{h, b}, Vector{h, -b})
		}
	}
}

// TestPoints returns representatives of P^1(Z/m). A list of full-rank
// lattices whose indices divide m covers Z^2 exactly when it covers every
// representative: membership of a primitive vector in such a lattice only
// depends on its projective class mod m.
func (u *Universe) TestPoints(m int64) []Vector {
	if pts, ok := u.testPoints[m]; ok {
		return pts
	}
	var pts []Vector
	if m == 1 {
		pts = []Vector{{0, 0}}
	} else {
		seen := make(map[Vector]bool)
		for c := int64(0); c < m; c++ {
			for d := int64(0); d < m; d++ {
				if numutil.GCD(numutil.GCD(c, d), m) != 1 {
					continue
				}
				nc, nd := p1Normalize(m, c, d)
				rep := Vector{nc, nd}
				if !seen[rep] {
					seen[rep] = true
					pts = append(pts, rep)
				}
			}
		}
	}
	u.testPoints[m] = pts
	return pts
}

// SpanIndex returns the index of the smallest lattice containing every
// given point, for points known to lie in a common lattice of index
// dividing m: the gcd of m with the pairwise wedges against the first
// point.
func (u *Universe) SpanIndex(m int64, points []Vector) int64 {
	d := m
	for _, w := range points[1:] {
		d = numutil.GCD(d, Wedge(points[0], w))
	}
	return d
}

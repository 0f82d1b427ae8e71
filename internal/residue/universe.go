package residue

import "github.com/dbsmedya/mincover/internal/numutil"

// Universe is the Z universe. Its canonical point enumeration is simply
// 0, 1, 2, …: every progression is a bi-infinite periodic set, so covering
// the non-negative integers is the same as covering Z.
type Universe struct {
	testPoints map[int64][]int64
}

// NewUniverse returns a fresh Z universe.
func NewUniverse() *Universe {
	return &Universe{testPoints: make(map[int64][]int64)}
}

// Name identifies the universe in logs and reports.
func (u *Universe) Name() string {
	return "residue"
}

// Trivial returns the empty placeholder progression.
func (u *Universe) Trivial() Progression {
	return Trivial()
}

// Whole returns the modulus-1 progression.
func (u *Universe) Whole() Progression {
	return Whole()
}

// MinNontrivialSize returns 2: {0 mod 2, 1 mod 2} is a minimal covering.
func (u *Universe) MinNontrivialSize() int {
	return 2
}

// Point returns the k-th canonical point, the integer k.
func (u *Universe) Point(k int) int64 {
	return int64(k)
}

// TestPoints returns 0..m-1. A list of genuine progressions whose moduli
// divide m covers Z exactly when it covers one full period.
func (u *Universe) TestPoints(m int64) []int64 {
	if pts, ok := u.testPoints[m]; ok {
		return pts
	}
	pts := make([]int64, m)
	for i := range pts {
		pts[i] = int64(i)
	}
	u.testPoints[m] = pts
	return pts
}

// SpanIndex returns the modulus of the smallest progression containing
// every given point, for points known to lie in a common class of modulus
// dividing m: the gcd of m with the differences against the first point.
func (u *Universe) SpanIndex(m int64, points []int64) int64 {
	d := m
	for _, x := range points[1:] {
		d = numutil.GCD(d, x-points[0])
	}
	return d
}

// Package sequences enumerates the candidate index sequences of strongly
// minimal lattice coverings of Z^2: weakly increasing lists [N_1..N_n]
// whose psi-weights sum to exactly 1 and that pass a battery of necessary
// conditions. The search engine finds the coverings themselves; this
// solver predicts which index patterns are possible and is cross-checked
// against the search for small sizes.
package sequences

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/dbsmedya/mincover/internal/numutil"
)

// psiMax bounds the lookup tables: psi values and indices are considered
// up to (exclusive) this bound. Sufficient for every size the search
// itself can handle.
const psiMax = 100

// psiInv maps a psi value to every index N < psiMax achieving it. psi is
// not monotone (psi(6) = 12 > 8 = psi(7)), so the table is the only
// practical way to invert it.
var psiInv = buildPsiInv()

func buildPsiInv() map[int64][]int64 {
	inv := make(map[int64][]int64)
	for n := int64(1); n < psiMax; n++ {
		p := numutil.Psi(n)
		if p < psiMax {
			inv[p] = append(inv[p], n)
		}
	}
	return inv
}

// SolveWeights returns every weakly increasing length-n list of psi values
// (each at least minPsi, each actually attained by some index) whose
// reciprocals sum exactly to total. The recursion bounds the smallest
// entry by requiring n/psi >= total and descends on the remainder.
func SolveWeights(n int, total *big.Rat, minPsi int64) [][]int64 {
	if n == 0 || total.Sign() <= 0 {
		return nil
	}
	var out [][]int64
	for psi := minPsi; psi < psiMax; psi++ {
		if len(psiInv[psi]) == 0 {
			continue
		}
		// t = psi*total - n decides how 1/psi relates to total/n.
		t := new(big.Rat).Mul(big.NewRat(psi, 1), total)
		t.Sub(t, big.NewRat(int64(n), 1))
		if t.Sign() > 0 {
			break
		}
		if t.Sign() == 0 {
			seq := make([]int64, n)
			for i := range seq {
				seq[i] = psi
			}
			out = append(out, seq)
			continue
		}
		if n == 1 {
			continue
		}
		rest := new(big.Rat).Sub(total, big.NewRat(1, psi))
		for _, tail := range SolveWeights(n-1, rest, psi) {
			seq := append([]int64{psi}, tail...)
			out = append(out, seq)
		}
	}
	return out
}

// Expand replaces each psi value in psis by every index with that value,
// returning the full cartesian product.
func Expand(psis []int64) [][]int64 {
	out := [][]int64{nil}
	for _, p := range psis {
		choices := psiInv[p]
		if len(choices) == 0 {
			return nil
		}
		next := make([][]int64, 0, len(out)*len(choices))
		for _, prefix := range out {
			for _, n := range choices {
				seq := make([]int64, len(prefix), len(prefix)+1)
				copy(seq, prefix)
				next = append(next, append(seq, n))
			}
		}
		out = next
	}
	return out
}

// Valid reports whether the sorted index list could be the pattern of a
// strongly minimal covering. The conditions are necessary, not sufficient;
// they are known to cut the candidate list down to the true patterns for
// every size up to 8.
func Valid(list []int64) bool {
	// (1) The psi-weights must sum to exactly 1.
	weight := new(big.Rat)
	for _, n := range list {
		weight.Add(weight, big.NewRat(1, numutil.Psi(n)))
	}
	if weight.Cmp(numutil.One()) != 0 {
		return false
	}

	// (2) No two indices may be coprime: components with coprime indices
	// intersect, which a partition cannot afford.
	if anyCoprimePair(list, list) {
		return false
	}

	// (3) For every prime p of the support, at least p+1 indices must be
	// divisible by p; and when exactly p copies of the index p itself are
	// present, the cofactors of the remaining p-divisible indices must not
	// contain a coprime pair.
	lcm := int64(1)
	for _, n := range list {
		lcm = numutil.LCM(lcm, n)
	}
	for _, p := range numutil.PrimeFactors(lcm) {
		divisible := int64(0)
		for _, n := range list {
			if n%p == 0 {
				divisible++
			}
		}
		if divisible <= p {
			return false
		}
		if count(list, p) == p {
			cof := cofactors(list, p, p)
			if anyCoprimePair(cof, cof) {
				return false
			}
		}
	}

	n2 := count(list, 2)
	n3 := count(list, 3)
	n4 := count(list, 4)
	n6 := count(list, 6)

	// (4) [2, 4, 6, 6, 6, 6, 6, ...] is impossible.
	if n2 > 0 && n4 > 0 && n6 > 4 {
		return false
	}

	// (5) [2,2,4,...] and [2,4,4,4,...]: the rest must be multiples of 4
	// with no coprime cofactor pair.
	if (n2 == 2 && n4 == 1) || (n2 == 1 && n4 == 3) {
		if !restDivisible(list, 4, 2, 4) {
			return false
		}
	}

	// (6) [2,4,4,...]: the rest must be even with no coprime cofactor pair.
	if n2 == 1 && n4 == 2 {
		if !restDivisible(list, 2, 2, 4) {
			return false
		}
	}

	// (7) [2,2,6,6,6,...] and [2,4,4,6,6,6,...]: the rest must be
	// multiples of 6 with no coprime cofactor pair.
	if n2 == 2 && n6 == 3 {
		if !restDivisible(list, 6, 2, 6) {
			return false
		}
	}
	if n2 == 1 && n4 == 2 && n6 == 3 {
		if !restDivisible(list, 6, 2, 4, 6) {
			return false
		}
	}

	// (8) [3,3,3,6,6,...]: the rest must be multiples of 6 with no coprime
	// cofactor pair.
	if n3 == 3 && n6 == 2 {
		if !restDivisible(list, 6, 3, 6) {
			return false
		}
	}

	// (9) [3,3,6,6,6,6,...]: same condition.
	if n3 == 2 && n6 >= 4 {
		if !restDivisible(list, 6, 3, 6) {
			return false
		}
	}

	return true
}

// AllIndexSequences returns every candidate index sequence for strongly
// minimal coverings of Z^2 of size n, sorted. Sizes up to 3 are written
// down directly. Negative sizes are the caller's mistake.
func AllIndexSequences(n int) ([][]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("sequences: size must be non-negative, got %d", n)
	}
	switch n {
	case 0:
		return nil, nil
	case 1:
		return [][]int64{{1}}, nil
	case 2:
		return nil, nil
	case 3:
		return [][]int64{{2, 2, 2}}, nil
	}

	// psi >= 3 rules out index 1, which cannot occur alongside others.
	psiLists := SolveWeights(n, numutil.One(), 3)

	seen := make(map[string]bool)
	var out [][]int64
	for _, psis := range psiLists {
		for _, list := range Expand(psis) {
			sorted := append([]int64(nil), list...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
			key := fmt.Sprint(sorted)
			if seen[key] {
				continue
			}
			seen[key] = true
			if Valid(sorted) {
				out = append(out, sorted)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

// count returns how many entries of list equal v.
func count(list []int64, v int64) int64 {
	var c int64
	for _, n := range list {
		if n == v {
			c++
		}
	}
	return c
}

// cofactors returns n/p for every n in list divisible by p and different
// from the excluded value.
func cofactors(list []int64, p, exclude int64) []int64 {
	var out []int64
	for _, n := range list {
		if n%p == 0 && n != exclude {
			out = append(out, n/p)
		}
	}
	return out
}

// anyCoprimePair reports whether some a in as and b in bs have gcd 1.
func anyCoprimePair(as, bs []int64) bool {
	for _, a := range as {
		for _, b := range bs {
			if numutil.GCD(a, b) == 1 {
				return true
			}
		}
	}
	return false
}

// restDivisible checks that every entry outside the excluded values is
// divisible by d and that the resulting cofactors contain no coprime pair.
func restDivisible(list []int64, d int64, exclude ...int64) bool {
	var cof []int64
	for _, n := range list {
		if contains(exclude, n) {
			continue
		}
		if n%d != 0 {
			return false
		}
		cof = append(cof, n/d)
	}
	return !anyCoprimePair(cof, cof)
}

func contains(vals []int64, v int64) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// less orders index sequences lexicographically.
func less(a, b []int64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

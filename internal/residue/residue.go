// Package residue implements residue classes (arithmetic progressions) of
// Z as covering components, together with the Z universe enumerated as
// 0, 1, 2, ….
//
// A progression is encoded by a modulus and a representative: modulus N > 0
// for the genuine class a + NZ, modulus 0 for the singleton {a} that arises
// when the trivial placeholder is enlarged by its first point.
package residue

import (
	"fmt"
	"math/big"

	"github.com/dbsmedya/mincover/internal/numutil"
)

// Progression is a residue class of Z in normalized form. The zero value
// is the trivial placeholder containing no integer. Progressions are
// immutable values; Equal is plain struct equality.
type Progression struct {
	mod int64 // modulus; 0 for a singleton
	res int64 // representative, reduced mod the modulus when positive
	set bool  // false only for the trivial placeholder
}

// Trivial returns the empty placeholder progression.
func Trivial() Progression {
	return Progression{}
}

// Singleton returns the one-element progression {x}.
func Singleton(x int64) Progression {
	return Progression{mod: 0, res: x, set: true}
}

// New returns the residue class a mod n, n > 0.
func New(n, a int64) Progression {
	return Progression{mod: n, res: mod(a, n), set: true}
}

// Whole returns the modulus-1 progression, all of Z.
func Whole() Progression {
	return New(1, 0)
}

// IsTrivial reports whether p is the empty placeholder.
func (p Progression) IsTrivial() bool {
	return !p.set
}

// IsGenuine reports whether p has a positive modulus.
func (p Progression) IsGenuine() bool {
	return p.set && p.mod > 0
}

// IsMaximal reports whether p has prime modulus. Enlarging such a class by
// any integer outside it saturates it to all of Z.
func (p Progression) IsMaximal() bool {
	return p.IsGenuine() && numutil.IsPrime(p.mod)
}

// Index returns the modulus of a genuine progression, or 0 when infinite
// (trivial and singleton progressions).
func (p Progression) Index() int64 {
	if p.IsGenuine() {
		return p.mod
	}
	return 0
}

// Weight returns 1/N for a genuine progression, nil otherwise.
func (p Progression) Weight() *big.Rat {
	if !p.IsGenuine() {
		return nil
	}
	return big.NewRat(1, p.mod)
}

// Contains reports whether the integer x lies in p.
func (p Progression) Contains(x int64) bool {
	if !p.set {
		return false
	}
	if p.mod == 0 {
		return x == p.res
	}
	return mod(x-p.res, p.mod) == 0
}

// Enlarge returns the smallest progression containing p and x. The trivial
// placeholder grows to the singleton {x}; otherwise the modulus drops to
// gcd(N, x - a).
func (p Progression) Enlarge(x int64) Progression {
	if !p.set {
		return Singleton(x)
	}
	n := numutil.GCD(p.mod, x-p.res)
	if n == 0 {
		// x equals the singleton's element; nothing changes.
		return p
	}
	return New(n, x)
}

// Equal reports algebraic equality.
func (p Progression) Equal(o Progression) bool {
	return p == o
}

// Less orders progressions by ascending modulus with the trivial
// placeholder first and singletons before genuine classes, breaking ties
// by representative.
func (p Progression) Less(o Progression) bool {
	if p.set != o.set {
		return !p.set
	}
	if p.mod != o.mod {
		return p.mod < o.mod
	}
	return p.res < o.res
}

// Key returns the canonical encoding of p.
func (p Progression) Key() string {
	return p.String()
}

// String renders p in the <a;N> form of the covering literature, with
// <a> for singletons and <-> for the trivial placeholder.
func (p Progression) String() string {
	switch {
	case !p.set:
		return "<->"
	case p.mod == 0:
		return fmt.Sprintf("<%d>", p.res)
	default:
		return fmt.Sprintf("<%d;%d>", p.res, p.mod)
	}
}

// mod returns a mod n in [0, n).
func mod(a, n int64) int64 {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

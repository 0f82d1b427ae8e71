// Package numutil provides the small number-theory helpers used across
// mincover: gcd/lcm arithmetic, primality, factorization, and the psi
// function that counts the projective line over Z/NZ.
package numutil

import "math/big"

// Abs returns the absolute value of a.
func Abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the non-negative least common multiple of a and b.
// LCM(0, x) is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a) / GCD(a, b) * Abs(b)
}

// IsPrime reports whether n is a prime number. Trial division is plenty:
// every index the search handles fits comfortably in a few decimal digits.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the distinct prime factors of n in ascending order.
// PrimeFactors(1) and PrimeFactors(0) return nil.
func PrimeFactors(n int64) []int64 {
	n = Abs(n)
	var factors []int64
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Psi returns psi(n) = n * prod_{p | n} (1 + 1/p), the number of points of
// the projective line over Z/nZ (equivalently the index of Gamma_0(n)).
// Psi(1) = 1. Panics if n < 1; callers only evaluate psi on genuine indices.
func Psi(n int64) int64 {
	if n < 1 {
		panic("numutil: Psi of non-positive argument")
	}
	psi := n
	for _, p := range PrimeFactors(n) {
		psi = psi / p * (p + 1)
	}
	return psi
}

// One returns a fresh rational 1. Weight arithmetic is done exactly with
// big.Rat so that weight-one coverings compare equal without float noise.
func One() *big.Rat {
	return big.NewRat(1, 1)
}

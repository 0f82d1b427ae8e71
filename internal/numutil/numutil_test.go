package numutil

import (
	"reflect"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{4, 6, 12},
		{2, 3, 6},
		{6, 6, 6},
		{1, 9, 9},
		{0, 9, 0},
		{-4, 6, 12},
	}
	for _, tt := range tests {
		if got := LCM(tt.a, tt.b); got != tt.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
	composites := []int64{-7, 0, 1, 4, 6, 9, 15, 49, 91}
	for _, n := range composites {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true, want false", n)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    int64
		want []int64
	}{
		{1, nil},
		{2, []int64{2}},
		{12, []int64{2, 3}},
		{36, []int64{2, 3}},
		{30, []int64{2, 3, 5}},
		{49, []int64{7}},
		{-12, []int64{2, 3}},
	}
	for _, tt := range tests {
		if got := PrimeFactors(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PrimeFactors(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPsi(t *testing.T) {
	// psi(n) = n * prod_{p|n} (1 + 1/p), the size of P^1(Z/n).
	tests := []struct {
		n, want int64
	}{
		{1, 1},
		{2, 3},
		{3, 4},
		{4, 6},
		{5, 6},
		{6, 12},
		{7, 8},
		{8, 12},
		{9, 12},
		{12, 24},
	}
	for _, tt := range tests {
		if got := Psi(tt.n); got != tt.want {
			t.Errorf("Psi(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPsi_NotMonotone(t *testing.T) {
	// psi(6) = 12 > 8 = psi(7); callers must not assume monotonicity.
	if Psi(6) <= Psi(7) {
		t.Errorf("expected Psi(6) > Psi(7), got %d and %d", Psi(6), Psi(7))
	}
}

func TestPsi_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Psi(0) to panic")
		}
	}()
	Psi(0)
}

func TestOne(t *testing.T) {
	one := One()
	if one.RatString() != "1" {
		t.Errorf("One() = %s, want 1", one.RatString())
	}
	// Must be a fresh value each call; callers mutate it.
	one.SetInt64(2)
	if One().RatString() != "1" {
		t.Error("One() shares state between calls")
	}
}

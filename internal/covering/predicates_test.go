package covering

import (
	"testing"

	"github.com/dbsmedya/mincover/internal/residue"
)

func classes(specs ...[2]int64) []residue.Progression {
	list := make([]residue.Progression, len(specs))
	for i, s := range specs {
		list[i] = residue.New(s[0], s[1])
	}
	return list
}

func TestWeight(t *testing.T) {
	list := classes([2]int64{2, 0}, [2]int64{4, 1}, [2]int64{4, 3})
	if got := Weight(list).RatString(); got != "1" {
		t.Errorf("Weight = %s, want 1", got)
	}

	// Trivial placeholders carry no weight.
	withTrivial := append([]residue.Progression{residue.Trivial()}, list...)
	if got := Weight(withTrivial).RatString(); got != "1" {
		t.Errorf("Weight with placeholder = %s, want 1", got)
	}
}

func TestIndexLCM(t *testing.T) {
	list := classes([2]int64{2, 0}, [2]int64{6, 1})
	if got := IndexLCM(list); got != 6 {
		t.Errorf("IndexLCM = %d, want 6", got)
	}
	if got := IndexLCM([]residue.Progression{residue.Trivial()}); got != 1 {
		t.Errorf("IndexLCM of placeholders = %d, want 1", got)
	}
}

func TestIsCover(t *testing.T) {
	u := residue.NewUniverse()

	tests := []struct {
		name string
		list []residue.Progression
		want bool
	}{
		{"parity partition", classes([2]int64{2, 0}, [2]int64{2, 1}), true},
		{"partition 2,4,4", classes([2]int64{2, 0}, [2]int64{4, 1}, [2]int64{4, 3}), true},
		{"missing class", classes([2]int64{2, 0}, [2]int64{4, 1}), false},
		{"weight below one", classes([2]int64{3, 0}, [2]int64{3, 1}), false},
		{"overlapping cover", classes([2]int64{2, 0}, [2]int64{2, 1}, [2]int64{4, 1}), true},
		{"weight one but no cover", classes([2]int64{2, 0}, [2]int64{4, 0}, [2]int64{4, 2}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCover(u, tt.list); got != tt.want {
				t.Errorf("IsCover(%v) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	u := residue.NewUniverse()

	// A partition is full.
	if !IsFull(u, classes([2]int64{2, 0}, [2]int64{2, 1})) {
		t.Error("parity partition must be full")
	}

	// A redundant component breaks fullness.
	if IsFull(u, classes([2]int64{2, 0}, [2]int64{2, 1}, [2]int64{4, 1})) {
		t.Error("cover with a deletable component must not be full")
	}

	// A trivial placeholder breaks fullness.
	list := append(classes([2]int64{2, 0}, [2]int64{2, 1}), residue.Trivial())
	if IsFull(u, list) {
		t.Error("cover with a placeholder must not be full")
	}
}

func TestIsMinimal(t *testing.T) {
	u := residue.NewUniverse()

	// Partitions are minimal: zero excess weight forbids any shrinking.
	if !IsMinimal(u, classes([2]int64{2, 0}, [2]int64{4, 1}, [2]int64{4, 3})) {
		t.Error("partition 0(2),1(4),3(4) must be minimal")
	}

	// A redundant component has no private points.
	if IsMinimal(u, classes([2]int64{2, 0}, [2]int64{2, 1}, [2]int64{4, 1})) {
		t.Error("cover with a redundant component must not be minimal")
	}

	// Sparsifiable: 1(2) can shrink to 1(4) while 3(4) keeps the rest.
	if IsMinimal(u, classes([2]int64{2, 1}, [2]int64{4, 3}, [2]int64{2, 0})) {
		t.Error("sparsifiable cover must not be minimal")
	}
}

func TestInUnion(t *testing.T) {
	list := classes([2]int64{2, 0}, [2]int64{4, 1})
	if !InUnion(int64(4), list) {
		t.Error("4 must lie in the union")
	}
	if !InUnion(int64(5), list) {
		t.Error("5 must lie in the union")
	}
	if InUnion(int64(3), list) {
		t.Error("3 must not lie in the union")
	}
}

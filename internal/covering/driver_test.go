package covering

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/mincover/internal/config"
	"github.com/dbsmedya/mincover/internal/lattice"
	"github.com/dbsmedya/mincover/internal/logger"
	"github.com/dbsmedya/mincover/internal/numutil"
	"github.com/dbsmedya/mincover/internal/residue"
)

func TestMinimalCoverings_NegativeSize(t *testing.T) {
	_, err := MinimalCoverings(residue.NewUniverse(), -1)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestMinimalCoverings_SizeZero(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Coverings) != 0 || report.Strong != 0 {
		t.Errorf("size 0 must yield an empty report, got %d coverings", len(report.Coverings))
	}
}

func TestMinimalCoverings_SizeOne(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Coverings) != 1 || report.Strong != 1 {
		t.Fatalf("size 1 must yield the whole universe, got %d coverings", len(report.Coverings))
	}
	if got := report.Coverings[0][0].String(); got != "<0;1>" {
		t.Errorf("covering = %s, want <0;1>", got)
	}
	if report.Patterns.Count(Pattern{1}) != 1 {
		t.Error("pattern (1) must be recorded")
	}
}

func TestMinimalCoverings_ResidueSizeTwo(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The parity partition is the only minimal covering of Z by 2 classes.
	if len(report.Coverings) != 1 {
		t.Fatalf("got %d coverings, want 1", len(report.Coverings))
	}
	if report.Strong != 1 {
		t.Errorf("Strong = %d, want 1", report.Strong)
	}
	if got := ListKey(report.Coverings[0]); got != "<0;2>|<1;2>" {
		t.Errorf("covering = %s, want <0;2>|<1;2>", got)
	}
	if report.Patterns.Count(Pattern{2, 2}) != 1 {
		t.Error("pattern (2, 2) must be recorded once")
	}
	if report.Stats.Nodes == 0 {
		t.Error("Stats.Nodes must be positive after a search")
	}
	if len(report.Stats.UsefulPoints) == 0 {
		t.Error("Stats.UsefulPoints must record the completing points")
	}
}

func TestMinimalCoverings_ResidueSizeThree(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exactly three minimal coverings, all partitions: two of pattern
	// (2, 4, 4) and the mod 3 partition.
	if len(report.Coverings) != 3 {
		t.Fatalf("got %d coverings, want 3", len(report.Coverings))
	}
	if report.Strong != 3 {
		t.Errorf("Strong = %d, want 3", report.Strong)
	}
	if got := report.Patterns.Count(Pattern{2, 4, 4}); got != 2 {
		t.Errorf("count((2, 4, 4)) = %d, want 2", got)
	}
	if got := report.Patterns.Count(Pattern{3, 3, 3}); got != 1 {
		t.Errorf("count((3, 3, 3)) = %d, want 1", got)
	}
}

func TestMinimalCoverings_ResidueSizeFour(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The partitions of Z into 4 classes, counted by pattern.
	wantCounts := []struct {
		pattern Pattern
		count   int
	}{
		{Pattern{2, 4, 8, 8}, 4},
		{Pattern{2, 6, 6, 6}, 2},
		{Pattern{3, 3, 6, 6}, 3},
		{Pattern{4, 4, 4, 4}, 1},
	}
	for _, w := range wantCounts {
		if got := report.Patterns.Count(w.pattern); got != w.count {
			t.Errorf("count(%s) = %d, want %d", w.pattern, got, w.count)
		}
	}

	one := numutil.One()
	for _, list := range report.Coverings {
		if Weight(list).Cmp(one) < 0 {
			t.Errorf("covering %s has weight %s below 1", ListKey(list), Weight(list).RatString())
		}
	}
	// Strong coverings are exactly the weight-1 prefix.
	for i, list := range report.Coverings {
		strong := Weight(list).Cmp(one) == 0
		if strong != (i < report.Strong) {
			t.Errorf("covering %d: weight %s disagrees with strong split at %d",
				i, Weight(list).RatString(), report.Strong)
		}
	}
}

func TestMinimalCoverings_LatticeSizeOne(t *testing.T) {
	report, err := MinimalCoverings(lattice.NewUniverse(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Coverings) != 1 || report.Strong != 1 {
		t.Fatalf("got %d coverings, want 1", len(report.Coverings))
	}
	if got := report.Coverings[0][0].String(); got != "L(0:0;1)" {
		t.Errorf("covering = %s, want L(0:0;1)", got)
	}
}

func TestMinimalCoverings_LatticeSizeTwo(t *testing.T) {
	// Two proper sublattices have total density at most 2/3.
	report, err := MinimalCoverings(lattice.NewUniverse(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Coverings) != 0 {
		t.Errorf("got %d coverings, want 0", len(report.Coverings))
	}
}

func TestMinimalCoverings_LatticeSizeThree(t *testing.T) {
	report, err := MinimalCoverings(lattice.NewUniverse(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The three index 2 sublattices form the unique minimal covering.
	if len(report.Coverings) != 1 {
		t.Fatalf("got %d coverings, want 1", len(report.Coverings))
	}
	if report.Strong != 1 {
		t.Errorf("Strong = %d, want 1", report.Strong)
	}
	if got := ListKey(report.Coverings[0]); got != "L(0:1;2)|L(1:0;2)|L(1:1;2)" {
		t.Errorf("covering = %s, want the three index-2 lattices", got)
	}
	if report.Patterns.Count(Pattern{2, 2, 2}) != 1 {
		t.Error("pattern (2, 2, 2) must be recorded once")
	}
	if got := Weight(report.Coverings[0]).RatString(); got != "1" {
		t.Errorf("weight = %s, want 1", got)
	}
}

func TestMinimalCoverings_LatticeSizeFour(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping size-4 lattice enumeration in short mode")
	}

	report, err := MinimalCoverings(lattice.NewUniverse(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The partitions: three of pattern (2, 2, 4, 4) (choice of which
	// index-2 lattice splits) and the four index-3 lattices.
	if got := report.Patterns.Count(Pattern{2, 2, 4, 4}); got != 3 {
		t.Errorf("count((2, 2, 4, 4)) = %d, want 3", got)
	}
	if got := report.Patterns.Count(Pattern{3, 3, 3, 3}); got != 1 {
		t.Errorf("count((3, 3, 3, 3)) = %d, want 1", got)
	}
	if report.Strong < 4 {
		t.Errorf("Strong = %d, want at least 4", report.Strong)
	}

	one := numutil.One()
	for _, list := range report.Coverings {
		if Weight(list).Cmp(one) < 0 {
			t.Errorf("covering %s has weight below 1", ListKey(list))
		}
	}
}

func TestMinimalCoverings_PruningDoesNotChangeResults(t *testing.T) {
	pruned, err := MinimalCoverings(residue.NewUniverse(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unpruned, err := MinimalCoverings(residue.NewUniverse(), 3, WithPruning(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pruned.Coverings) != len(unpruned.Coverings) {
		t.Fatalf("pruned found %d coverings, unpruned %d",
			len(pruned.Coverings), len(unpruned.Coverings))
	}
	for i := range pruned.Coverings {
		if ListKey(pruned.Coverings[i]) != ListKey(unpruned.Coverings[i]) {
			t.Errorf("covering %d differs: %s vs %s", i,
				ListKey(pruned.Coverings[i]), ListKey(unpruned.Coverings[i]))
		}
	}
	if unpruned.Stats.Pruned != 0 {
		t.Errorf("unpruned run reported %d pruned branches", unpruned.Stats.Pruned)
	}
	if pruned.Stats.Pruned == 0 {
		t.Error("pruned run must report pruned branches")
	}
}

// checkPartition verifies that each strongly minimal covering is an exact
// partition: every test point lies in exactly one component.
func checkPartition[C Component[C, P], P any](t *testing.T, u Universe[C, P], report *Report[C]) {
	t.Helper()

	if report.Strong == 0 {
		t.Fatal("no strongly minimal coverings to check")
	}
	for _, list := range report.StrongCoverings() {
		for _, p := range u.TestPoints(IndexLCM(list)) {
			hits := 0
			for _, c := range list {
				if c.Contains(p) {
					hits++
				}
			}
			if hits != 1 {
				t.Errorf("covering %s: point %v lies in %d components, want 1",
					ListKey(list), p, hits)
			}
		}
	}
}

func TestMinimalCoverings_StrongCoveringsAreDisjoint(t *testing.T) {
	ru := residue.NewUniverse()
	report, err := MinimalCoverings(ru, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkPartition(t, ru, report)

	lu := lattice.NewUniverse()
	lreport, err := MinimalCoverings(lu, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkPartition(t, lu, lreport)
}

func TestMinimalCoverings_VerboseLogsDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.log")
	log, err := logger.New(&config.LoggingConfig{
		Level:  "debug",
		Format: "json",
		Output: path,
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	_, err = MinimalCoverings(residue.NewUniverse(), 2,
		WithVerbose(true), WithLogger(log))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "covering accepted") {
		t.Error("verbose run must log accepted coverings")
	}
	if !strings.Contains(out, `"depth"`) {
		t.Error("acceptance entries must carry recursion-depth context")
	}
}

func TestReport_StrongAndOverlapSplit(t *testing.T) {
	report, err := MinimalCoverings(residue.NewUniverse(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(report.StrongCoverings()); got != report.Strong {
		t.Errorf("StrongCoverings() has %d entries, want %d", got, report.Strong)
	}
	total := len(report.StrongCoverings()) + len(report.OverlapCoverings())
	if total != len(report.Coverings) {
		t.Errorf("split sizes %d do not add up to %d", total, len(report.Coverings))
	}
}

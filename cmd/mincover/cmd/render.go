package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/mincover/internal/covering"
)

// outputWriter is used for printing output, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

// renderReport prints the full enumeration report: header, coverings
// (strongly minimal first), pattern statistics and search diagnostics.
func renderReport[C covering.Ordered[C]](r *covering.Report[C]) {
	printHeader("Minimal Coverings: %s, n=%d", r.Universe, r.Size)

	fmt.Fprintln(outputWriter)
	printSection("Summary")
	fmt.Fprintf(outputWriter, "  Coverings found:  %d\n", len(r.Coverings))
	fmt.Fprintf(outputWriter, "  Strongly minimal: %d\n", r.Strong)
	fmt.Fprintf(outputWriter, "  Distinct patterns: %d\n", r.Patterns.Len())

	if len(r.Coverings) > 0 {
		fmt.Fprintln(outputWriter)
		printSection("Coverings (by weight)")
		for i, list := range r.Coverings {
			marker := ""
			if i < r.Strong {
				marker = color.Green.Sprint(" [strong]")
			}
			fmt.Fprintf(outputWriter, "  [%d] %s | weight %s%s\n",
				i+1, describeList(list), covering.Weight(list).RatString(), marker)
		}
	}

	if r.Patterns.Len() > 0 {
		fmt.Fprintln(outputWriter)
		printSection("Index Patterns (discovery order)")
		printPatternTable(r.Patterns)
	}

	fmt.Fprintln(outputWriter)
	printSection("Diagnostics")
	fmt.Fprintf(outputWriter, "  Nodes visited:   %d\n", r.Stats.Nodes)
	fmt.Fprintf(outputWriter, "  Branches pruned: %d\n", r.Stats.Pruned)
	fmt.Fprintf(outputWriter, "  Max depth:       %d\n", r.Stats.MaxDepth)
	fmt.Fprintf(outputWriter, "  Max skip:        %d\n", r.Stats.MaxSkip)
	if len(r.Stats.UsefulPoints) > 0 {
		fmt.Fprintf(outputWriter, "  Useful points:   %s\n",
			strings.Join(r.Stats.UsefulPoints, ", "))
	}
}

// describeList joins the component descriptions of one covering.
func describeList[C covering.Ordered[C]](list []C) string {
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// printPatternTable renders the pattern statistics as an aligned two-column
// table. runewidth keeps the columns straight for any pattern text.
func printPatternTable(t *covering.PatternTable) {
	patternWidth := runewidth.StringWidth("Pattern")
	t.Each(func(pattern string, count int) {
		if w := runewidth.StringWidth(pattern); w > patternWidth {
			patternWidth = w
		}
	})

	fmt.Fprintf(outputWriter, "  %s  %s\n",
		runewidth.FillRight("Pattern", patternWidth), "Coverings")
	fmt.Fprintf(outputWriter, "  %s  %s\n",
		strings.Repeat("-", patternWidth), strings.Repeat("-", len("Coverings")))
	t.Each(func(pattern string, count int) {
		fmt.Fprintf(outputWriter, "  %s  %d\n",
			runewidth.FillRight(pattern, patternWidth), count)
	})
}

// printHeader prints a formatted header
func printHeader(format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := len(title) + 4
	fmt.Fprintln(outputWriter, strings.Repeat("=", width))
	fmt.Fprintf(outputWriter, "  %s\n", color.Bold.Sprint(title))
	fmt.Fprintln(outputWriter, strings.Repeat("=", width))
}

// printSection prints a section header
func printSection(title string) {
	fmt.Fprintf(outputWriter, "[%s]\n", color.Cyan.Sprint(title))
	fmt.Fprintln(outputWriter, strings.Repeat("-", len(title)+2))
}

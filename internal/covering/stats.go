package covering

// Stats carries the diagnostic counters of one search. They exist for
// reporting only and never influence the result set.
type Stats struct {
	// MaxSkip is the largest enumeration position the point scan reached.
	MaxSkip int

	// MaxDepth is the deepest recursion level reached.
	MaxDepth int

	// Nodes counts search calls (enlargement steps explored).
	Nodes int

	// Pruned counts branches skipped by the maximal-component prune.
	Pruned int

	// UsefulPoints lists, in first-use order, the rendered universe points
	// that completed at least one accepted covering.
	UsefulPoints []string
}

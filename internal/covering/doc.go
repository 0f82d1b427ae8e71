// Package covering implements the exhaustive enumeration of minimal
// coverings of an infinite universe by a fixed number of algebraic
// components: finite-index sublattices of Z^2 or residue classes of Z.
//
// The package is generic over the component type. A universe (see the
// Universe interface) supplies the canonical enumeration of its points,
// the finite test-point sets the covering predicates reduce to, and the
// span computation used by the minimality test. Two concrete universes
// live in the internal/lattice and internal/residue packages.
//
// The search itself is a depth-first backtracking recursion over a single
// shared covering list: one component is enlarged in place, the branch is
// explored, and the component is restored before the next branch. Accepted
// coverings are snapshotted into a result set deduplicated by canonical
// (sorted) form. All mutable state is owned by one MinimalCoverings call;
// nothing survives the call except the returned report.
package covering

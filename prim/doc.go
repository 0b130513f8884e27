// Package prim defines primitive crystal structures and generates their
// symmetry: factor group, point group, and the integral site representation
// of every factor-group operation.
//
// What:
//
//   - Site is one basis site: fractional coordinates plus allowed occupants.
//   - Prim owns a lattice and a basis, and on construction generates:
//     the factor group (lattice point-group operations combined with the
//     fractional translations that map the basis onto itself, quotiented by
//     lattice translations), the point group (distinct rotation parts), and
//     one cell.Rep per factor-group operation.
//   - MakeRep converts an arbitrary symmetry operation into its action on
//     integral site coordinates; it is how cluster-group representations
//     are derived for local-orbit construction.
//
// Why:
//
//	Everything downstream — supercell permutation tables, cluster orbits,
//	invariant groups — consumes the factor group and its site
//	representation. Generating them in one place keeps the operation order
//	(which is part of the public contract: "first matching operation"
//	tie-breaks) fixed for the lifetime of the Prim.
//
// Prim is immutable after construction and safe to share across goroutines.
//
// Complexity:
//
//   - New: O(|PG|·B³) with B basis sites, on top of the point-group search.
//
// Errors:
//
//   - ErrEmptyBasis: the basis has no sites.
//   - ErrNotASymmetry: MakeRep received an operation that does not map the
//     structure onto itself.
package prim

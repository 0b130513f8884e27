// Package supercell builds supercells of a primitive structure: linear index
// converters with periodic wrapping, the site-permutation representation of
// supercell symmetry, and canonical-form operators on supercell lattices.
//
// What:
//
//   - UnitCellIndexConverter / UnitCellCoordIndexConverter are total
//     bijections between linear indices and integral coordinates within a
//     supercell; any out-of-lattice tuple is reduced into the supercell by
//     exact integer arithmetic. This reduction is what implements periodic
//     boundary conditions for every consumer.
//   - SupercellSymInfo owns the supercell factor group (the subgroup of the
//     prim factor group leaving the super-lattice invariant) and two
//     permutation tables: one permutation per internal lattice translation,
//     one per factor-group operation.
//   - SupercellSymOp pairs a factor-group operation with an internal
//     translation and exposes the combined site permutation.
//   - IsCanonical, MakeCanonicalForm, ToCanonical, FromCanonical and
//     MakeEquivalents operate on supercell lattices under the prim point
//     group.
//
// Permutation convention:
//
//	Every permutation obeys perm[new] = old: applying the operation moves
//	the value at index old to index new. Composition is value-flow,
//	group.Compose(p, q)[n] = q[p[n]].
//
// Site index layout is sublattice-major: l = b·N + unitcell_index, with N
// the number of unit cells in the supercell.
//
// Complexity:
//
//   - Converter construction: O(N) plus the bounding-box scan.
//   - MakeTranslationPermutations: O(N²·B); MakeFactorGroupPermutations:
//     O(|H|·N·B).
//
// Errors:
//
//   - ErrBadSublatticeCount: a converter was requested with no sublattices.
//   - ErrPrimMismatch: a superlattice built on a different prim lattice.
//   - lattice.ErrSingularTransformation, lattice.ErrNotFound pass through
//     from the lattice layer.
package supercell

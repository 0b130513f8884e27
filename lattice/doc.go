// Package lattice provides real-space lattices, superlattice relations, and
// symmetry operations acting on them.
//
// What:
//
//   - Lattice wraps a 3×3 column matrix (columns are lattice vectors) with an
//     attached comparison tolerance.
//   - Superlattice captures the relation S = L·T for an integer matrix T.
//   - SymOp is a rigid symmetry operation (rotation + cartesian translation +
//     time reversal) with composition and an action on lattices.
//   - Canonical forms: CanonicalCheck, CanonicalEquivalent and
//     CanonicalOperationIndex select the unique maximum of a lattice's
//     point-group orbit under the package ordering.
//   - MakePointGroup generates the lattice point group from the metric tensor.
//
// Ordering:
//
//	Compare orders lattices by entrywise lexicographic comparison of their
//	column matrices at a tolerance. The ordering is total on orientation
//	matrices and is used consistently by every canonical-form operator in
//	this module.
//
// Complexity:
//
//   - Compare, Compose, CopyApply: O(1) (fixed 3×3 arithmetic).
//   - MakePointGroup: O(k³) over candidate integer columns, k ≤ 125 per
//     column for a reasonably reduced cell.
//
// Errors:
//
//   - ErrBadDimensions: a matrix or vector is not 3×3 / length 3.
//   - ErrSingularLattice: the column matrix is singular at tolerance.
//   - ErrNotSuperlattice: S is not an integer multiple of L.
//   - ErrSingularTransformation: an integer transformation matrix has
//     determinant zero.
//   - ErrNotFound: no point-group operation maps a lattice onto its
//     canonical form (malformed point group).
package lattice

// Package cell defines integral site coordinates and the action of a
// symmetry operation on them.
//
// What:
//
//   - UnitCell is an integer 3-tuple (i, j, k) naming a lattice translation.
//   - UnitCellCoord pairs a sublattice index b with a UnitCell, naming one
//     site of a periodic crystal.
//   - Rep encodes one symmetry operation restricted to its action on
//     UnitCellCoord: an integer point matrix plus a per-sublattice target
//     and translation.
//
// All types are plain values with componentwise arithmetic; no tolerance is
// involved anywhere in this package.
//
// Complexity: every operation is O(1).
package cell

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CanonicalCheck reports whether l compares greater-or-equal to every
// point-group image of itself, i.e. whether l is the canonical form of its
// orbit under the package ordering.
func CanonicalCheck(l *Lattice, pointGroup []SymOp) bool {
	for _, op := range pointGroup {
		if Compare(l, CopyApply(op, l), l.tol) < 0 {
			return false
		}
	}
	return true
}

// CanonicalEquivalent returns the maximum of {g·l : g ∈ pointGroup} under
// the package ordering at tolerance tol. An empty point group yields a copy
// of l.
func CanonicalEquivalent(l *Lattice, pointGroup []SymOp, tol float64) *Lattice {
	if len(pointGroup) == 0 {
		out, _ := New(l.col, WithTol(l.tol))
		return out
	}
	best := CopyApply(pointGroup[0], l)
	for _, op := range pointGroup[1:] {
		if c := CopyApply(op, l); Compare(c, best, tol) > 0 {
			best = c
		}
	}
	return best
}

// CanonicalOperationIndex returns the index of the first operation in
// pointGroup (in the given order) that maps l onto its canonical form.
// The "first" rule is the tie-break contract; callers must not reorder
// pointGroup. Returns ErrNotFound if no operation works.
func CanonicalOperationIndex(l *Lattice, pointGroup []SymOp) (int, error) {
	canonical := CanonicalEquivalent(l, pointGroup, l.tol)
	for i, op := range pointGroup {
		if Equal(CopyApply(op, l), canonical, l.tol) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("CanonicalOperationIndex: %w", ErrNotFound)
}

// InvariantSubgroupIndices returns the indices of the operations that leave
// lattice s invariant: those with S⁻¹·R·S integer at the lattice tolerance.
func InvariantSubgroupIndices(s *Lattice, ops []SymOp) []int {
	var indices []int
	var m mat.Dense
	for i, op := range ops {
		m.Mul(s.inv, op.rotation)
		m.Mul(&m, s.col)
		if isIntegerMatrix(&m, s.tol) {
			indices = append(indices, i)
		}
	}
	return indices
}

func isIntegerMatrix(m *mat.Dense, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := m.At(i, j)
			if math.Abs(v-math.Round(v)) > tol {
				return false
			}
		}
	}
	return true
}

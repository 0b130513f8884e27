package supercell

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crysym/lattice"
)

// IsCanonical reports whether the supercell lattice compares
// greater-or-equal to all of its images under the prim point group.
func IsCanonical(sc *Supercell) bool {
	return lattice.CanonicalCheck(sc.superlattice.Superlattice(), sc.prim.PointGroup().Elements())
}

// MakeCanonicalForm returns a supercell sharing sc's prim whose lattice is
// the unique maximum of the point-group orbit of sc's lattice.
func MakeCanonicalForm(sc *Supercell) (*Supercell, error) {
	s := sc.superlattice.Superlattice()
	canonical := lattice.CanonicalEquivalent(s, sc.prim.PointGroup().Elements(), s.Tol())
	sl, err := lattice.NewSuperlattice(sc.superlattice.PrimLattice(), canonical)
	if err != nil {
		return nil, fmt.Errorf("MakeCanonicalForm: %w", err)
	}
	out, err := NewFromSuperlattice(sc.prim, sl)
	if err != nil {
		return nil, fmt.Errorf("MakeCanonicalForm: %w", err)
	}
	return out, nil
}

// ToCanonical returns the first point-group operation (parent order) that
// maps sc's lattice onto its canonical form. The "first" rule is the
// tie-break contract; the point group order is fixed by the prim.
func ToCanonical(sc *Supercell) (lattice.SymOp, error) {
	pg := sc.prim.PointGroup()
	ix, err := lattice.CanonicalOperationIndex(sc.superlattice.Superlattice(), pg.Elements())
	if err != nil {
		return lattice.SymOp{}, fmt.Errorf("ToCanonical: %w", err)
	}
	return pg.Element(ix), nil
}

// FromCanonical returns the first point-group operation that maps the
// canonical lattice onto sc's lattice. Returns lattice.ErrNotFound if no
// operation works (impossible for a well-formed point group).
func FromCanonical(sc *Supercell) (lattice.SymOp, error) {
	s := sc.superlattice.Superlattice()
	pg := sc.prim.PointGroup()
	canonical := lattice.CanonicalEquivalent(s, pg.Elements(), s.Tol())
	for i := 0; i < pg.Size(); i++ {
		if lattice.Equal(s, lattice.CopyApply(pg.Element(i), canonical), s.Tol()) {
			return pg.Element(i), nil
		}
	}
	return lattice.SymOp{}, fmt.Errorf("FromCanonical: %w", lattice.ErrNotFound)
}

// MakeEquivalents returns the distinct supercells whose lattices are
// generated by applying each point-group operation to sc's lattice, each
// put into representation-prepared form: canonicalised under the invariant
// subgroup of the transformed lattice. Results share sc's prim and are
// ordered ascending under the lattice ordering.
func MakeEquivalents(sc *Supercell) ([]*Supercell, error) {
	s := sc.superlattice.Superlattice()
	pointGroup := sc.prim.PointGroup().Elements()
	tol := s.Tol()

	// representation-prepare: canonicalise under the invariant subgroup of
	// the transformed lattice
	prepare := func(superlat *lattice.Lattice) *lattice.Lattice {
		indices := lattice.InvariantSubgroupIndices(superlat, pointGroup)
		invariant := make([]lattice.SymOp, 0, len(indices))
		for _, ix := range indices {
			invariant = append(invariant, pointGroup[ix])
		}
		return lattice.CanonicalEquivalent(superlat, invariant, tol)
	}

	var lats []*lattice.Lattice
	for _, op := range pointGroup {
		prepared := prepare(lattice.CopyApply(op, s))
		ix := sort.Search(len(lats), func(i int) bool {
			return lattice.Compare(lats[i], prepared, tol) >= 0
		})
		if ix < len(lats) && lattice.Compare(lats[ix], prepared, tol) == 0 {
			continue
		}
		lats = append(lats, nil)
		copy(lats[ix+1:], lats[ix:])
		lats[ix] = prepared
	}

	result := make([]*Supercell, 0, len(lats))
	for _, superlat := range lats {
		sl, err := lattice.NewSuperlattice(sc.superlattice.PrimLattice(), superlat)
		if err != nil {
			return nil, fmt.Errorf("MakeEquivalents: %w", err)
		}
		equiv, err := NewFromSuperlattice(sc.prim, sl)
		if err != nil {
			return nil, fmt.Errorf("MakeEquivalents: %w", err)
		}
		result = append(result, equiv)
	}
	return result, nil
}

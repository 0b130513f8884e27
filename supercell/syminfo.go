package supercell

import (
	"fmt"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// SupercellSymInfo is the site-permutation representation of the symmetry
// of one supercell: the supercell factor group plus one permutation per
// internal lattice translation and one per factor-group operation.
//
// SupercellSymInfo is immutable after construction; accessors return
// internal slices that must be treated as read-only.
type SupercellSymInfo struct {
	factorGroup             *group.SymGroup
	translationPermutations []group.Permutation
	factorGroupPermutations []group.Permutation
}

// MakeFactorGroup computes the subgroup of the prim factor group that
// leaves the super-lattice invariant, as a SymGroup whose head-group index
// is the sorted set of invariant operation indices.
func MakeFactorGroup(p *prim.Prim, superlattice lattice.Superlattice) (*group.SymGroup, error) {
	indices := lattice.InvariantSubgroupIndices(superlattice.Superlattice(), p.FactorGroup().Elements())
	sub, err := group.NewSubgroup(p.FactorGroup(), indices)
	if err != nil {
		return nil, fmt.Errorf("MakeFactorGroup: %w", err)
	}
	return sub, nil
}

// MakeTranslationPermutations builds one site permutation per internal
// lattice translation of the supercell, in unit-cell index order. Applying
// the translation carries the site at index old to index new; the table
// records perm[new] = old.
//
// The identity translation yields the identity permutation. Panics if a
// permutation ends up incompletely populated (programmer error).
func MakeTranslationPermutations(ijk *UnitCellIndexConverter, bijk *UnitCellCoordIndexConverter) []group.Permutation {
	translationPermutations := make([]group.Permutation, 0, ijk.TotalUnitCells())
	totalSites := bijk.TotalSites()

	for translationIx := 0; translationIx < ijk.TotalUnitCells(); translationIx++ {
		translation := ijk.UnitCell(translationIx)
		perm := make(group.Permutation, totalSites)
		for i := range perm {
			perm[i] = -1
		}
		for oldSite := 0; oldSite < totalSites; oldSite++ {
			oldCoord := bijk.Coord(oldSite)
			newSite := bijk.Index(oldCoord.Translate(translation))
			perm[newSite] = oldSite
		}
		// every site must have been assigned exactly once
		for newSite, oldSite := range perm {
			if oldSite < 0 {
				panic(fmt.Sprintf("supercell: translation %v left site %d unassigned", translation, newSite))
			}
		}
		translationPermutations = append(translationPermutations, perm)
	}
	return translationPermutations
}

// MakeFactorGroupPermutations builds one site permutation per head-group
// index (ascending, matching the supercell factor group's element order):
// perm[new] = old with new the image of site old under the operation's
// integral site representation.
//
// The combined action of a factor-group operation and an internal
// translation is the composition of the two tables; that composition is a
// consumer concern (see SupercellSymOp) and is not performed here.
func MakeFactorGroupPermutations(headGroupIndex []int, basisRep []cell.Rep, bijk *UnitCellCoordIndexConverter) []group.Permutation {
	factorGroupPermutations := make([]group.Permutation, 0, len(headGroupIndex))
	totalSites := bijk.TotalSites()

	for _, operationIx := range headGroupIndex {
		rep := basisRep[operationIx]
		perm := make(group.Permutation, totalSites)
		for oldSite := 0; oldSite < totalSites; oldSite++ {
			newCoord := rep.Apply(bijk.Coord(oldSite))
			perm[bijk.Index(newCoord)] = oldSite
		}
		factorGroupPermutations = append(factorGroupPermutations, perm)
	}
	return factorGroupPermutations
}

// NewSupercellSymInfo builds the complete symmetry info of a supercell.
func NewSupercellSymInfo(p *prim.Prim, superlattice lattice.Superlattice,
	ijk *UnitCellIndexConverter, bijk *UnitCellCoordIndexConverter) (*SupercellSymInfo, error) {

	factorGroup, err := MakeFactorGroup(p, superlattice)
	if err != nil {
		return nil, fmt.Errorf("NewSupercellSymInfo: %w", err)
	}
	return &SupercellSymInfo{
		factorGroup:             factorGroup,
		translationPermutations: MakeTranslationPermutations(ijk, bijk),
		factorGroupPermutations: MakeFactorGroupPermutations(factorGroup.HeadGroupIndex(), p.BasisRep(), bijk),
	}, nil
}

// FactorGroup returns the supercell factor group.
func (s *SupercellSymInfo) FactorGroup() *group.SymGroup { return s.factorGroup }

// TranslationPermutations returns the per-translation permutations, in
// unit-cell index order. Read-only.
func (s *SupercellSymInfo) TranslationPermutations() []group.Permutation {
	return s.translationPermutations
}

// FactorGroupPermutations returns the per-operation permutations, in
// factor-group element order. Read-only.
func (s *SupercellSymInfo) FactorGroupPermutations() []group.Permutation {
	return s.factorGroupPermutations
}

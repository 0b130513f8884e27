package supercell

import (
	"fmt"

	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// Supercell is an immutable supercell of a primitive structure: the
// superlattice relation, both index converters, and the full symmetry info.
type Supercell struct {
	prim         *prim.Prim
	superlattice lattice.Superlattice
	unitCells    *UnitCellIndexConverter
	sites        *UnitCellCoordIndexConverter
	symInfo      *SupercellSymInfo
}

// New creates the supercell of p with shape t (S = L·t).
func New(p *prim.Prim, t [3][3]int) (*Supercell, error) {
	sl, err := lattice.MakeSuperlattice(p.Lattice(), t)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return NewFromSuperlattice(p, sl)
}

// NewFromSuperlattice creates the supercell of p for an existing
// superlattice relation. Returns ErrPrimMismatch if the relation was built
// on a different prim lattice.
func NewFromSuperlattice(p *prim.Prim, sl lattice.Superlattice) (*Supercell, error) {
	if !lattice.Equal(sl.PrimLattice(), p.Lattice(), p.Lattice().Tol()) {
		return nil, fmt.Errorf("NewFromSuperlattice: %w", ErrPrimMismatch)
	}
	t := sl.TransformationMatrix()
	sites, err := NewUnitCellCoordIndexConverter(t, p.NSublattice())
	if err != nil {
		return nil, fmt.Errorf("NewFromSuperlattice: %w", err)
	}
	symInfo, err := NewSupercellSymInfo(p, sl, sites.UnitCellConverter(), sites)
	if err != nil {
		return nil, fmt.Errorf("NewFromSuperlattice: %w", err)
	}
	return &Supercell{
		prim:         p,
		superlattice: sl,
		unitCells:    sites.UnitCellConverter(),
		sites:        sites,
		symInfo:      symInfo,
	}, nil
}

// Prim returns the primitive structure.
func (sc *Supercell) Prim() *prim.Prim { return sc.prim }

// Superlattice returns the superlattice relation.
func (sc *Supercell) Superlattice() lattice.Superlattice { return sc.superlattice }

// UnitCellConverter returns the unit-cell index converter.
func (sc *Supercell) UnitCellConverter() *UnitCellIndexConverter { return sc.unitCells }

// SiteConverter returns the site index converter.
func (sc *Supercell) SiteConverter() *UnitCellCoordIndexConverter { return sc.sites }

// SymInfo returns the supercell symmetry info.
func (sc *Supercell) SymInfo() *SupercellSymInfo { return sc.symInfo }

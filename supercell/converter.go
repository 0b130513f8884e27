package supercell

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/lattice"
)

// Sentinel errors for converter and supercell construction.
var (
	// ErrBadSublatticeCount indicates a converter with fewer than one
	// sublattice.
	ErrBadSublatticeCount = errors.New("supercell: sublattice count must be at least 1")

	// ErrPrimMismatch indicates a superlattice whose prim lattice is not the
	// prim's lattice.
	ErrPrimMismatch = errors.New("supercell: superlattice prim lattice differs from prim")
)

// UnitCellIndexConverter is a total bijection between linear unit-cell
// indices {0, …, N-1} and integral lattice translations within a supercell
// of shape T, N = |det T|. The forward map reduces any integer tuple into
// the supercell first, implementing periodic boundary conditions.
//
// All arithmetic is exact: the reduction uses the integer adjugate of T and
// floor division, never floating-point rounding.
type UnitCellIndexConverter struct {
	t      [3][3]int
	adj    [3][3]int // adjugate, scaled so adj·T = det·I with det > 0
	det    int
	points []cell.UnitCell
	index  map[cell.UnitCell]int
}

// NewUnitCellIndexConverter creates the converter for supercell shape t.
// Unit cells are ordered lexicographically over their reduced (i, j, k)
// representatives. Returns lattice.ErrSingularTransformation if det t == 0.
func NewUnitCellIndexConverter(t [3][3]int) (*UnitCellIndexConverter, error) {
	det := lattice.DetInt(t)
	if det == 0 {
		return nil, fmt.Errorf("NewUnitCellIndexConverter: %w", lattice.ErrSingularTransformation)
	}
	c := &UnitCellIndexConverter{t: t, adj: adjugate(t), det: det}
	if det < 0 {
		c.det = -det
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				c.adj[i][j] = -c.adj[i][j]
			}
		}
	}

	// bounding box of the half-open parallelepiped spanned by T's columns
	var lo, hi [3]int
	for corner := 0; corner < 8; corner++ {
		var p [3]int
		for j := 0; j < 3; j++ {
			if corner&(1<<j) != 0 {
				for i := 0; i < 3; i++ {
					p[i] += t[i][j]
				}
			}
		}
		for i := 0; i < 3; i++ {
			if p[i] < lo[i] {
				lo[i] = p[i]
			}
			if p[i] > hi[i] {
				hi[i] = p[i]
			}
		}
	}

	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				u := cell.UnitCell{i, j, k}
				if c.contains(u) {
					c.points = append(c.points, u)
				}
			}
		}
	}
	if len(c.points) != c.det {
		panic(fmt.Sprintf("supercell: enumerated %d unit cells, want %d", len(c.points), c.det))
	}
	sort.Slice(c.points, func(a, b int) bool { return c.points[a].Compare(c.points[b]) < 0 })

	c.index = make(map[cell.UnitCell]int, c.det)
	for ix, u := range c.points {
		c.index[u] = ix
	}
	return c, nil
}

// contains reports whether u lies in the half-open cell: adj·u ∈ [0, det)³.
func (c *UnitCellIndexConverter) contains(u cell.UnitCell) bool {
	for i := 0; i < 3; i++ {
		a := c.adj[i][0]*u[0] + c.adj[i][1]*u[1] + c.adj[i][2]*u[2]
		if a < 0 || a >= c.det {
			return false
		}
	}
	return true
}

// TotalUnitCells returns N = |det T|.
func (c *UnitCellIndexConverter) TotalUnitCells() int { return c.det }

// Shape returns the supercell transformation matrix T.
func (c *UnitCellIndexConverter) Shape() [3][3]int { return c.t }

// UnitCell returns the reduced lattice translation at linear index ix.
// Panics on an out-of-range index (programmer error).
func (c *UnitCellIndexConverter) UnitCell(ix int) cell.UnitCell {
	if ix < 0 || ix >= c.det {
		panic(fmt.Sprintf("supercell: unit cell index %d of %d", ix, c.det))
	}
	return c.points[ix]
}

// Within reduces an arbitrary integer tuple into the supercell: the unique
// representative u' with u' ≡ u (mod T) and T⁻¹·u' ∈ [0, 1)³.
func (c *UnitCellIndexConverter) Within(u cell.UnitCell) cell.UnitCell {
	var q [3]int
	for i := 0; i < 3; i++ {
		a := c.adj[i][0]*u[0] + c.adj[i][1]*u[1] + c.adj[i][2]*u[2]
		q[i] = floorDiv(a, c.det)
	}
	for i := 0; i < 3; i++ {
		u[i] -= c.t[i][0]*q[0] + c.t[i][1]*q[1] + c.t[i][2]*q[2]
	}
	return u
}

// Index returns the linear index of u, reducing it into the supercell
// first.
func (c *UnitCellIndexConverter) Index(u cell.UnitCell) int {
	ix, ok := c.index[c.Within(u)]
	if !ok {
		// Within always lands on an enumerated representative
		panic(fmt.Sprintf("supercell: reduced unit cell %v not enumerated", c.Within(u)))
	}
	return ix
}

// UnitCellCoordIndexConverter is a total bijection between linear site
// indices {0, …, N·B-1} and integral site coordinates (b, i, j, k) within a
// supercell. Layout is sublattice-major: l = b·N + unitcell_index.
type UnitCellCoordIndexConverter struct {
	uc          *UnitCellIndexConverter
	nSublattice int
}

// NewUnitCellCoordIndexConverter creates the site converter for supercell
// shape t with nSublattice basis sites.
func NewUnitCellCoordIndexConverter(t [3][3]int, nSublattice int) (*UnitCellCoordIndexConverter, error) {
	if nSublattice < 1 {
		return nil, fmt.Errorf("NewUnitCellCoordIndexConverter: %d: %w", nSublattice, ErrBadSublatticeCount)
	}
	uc, err := NewUnitCellIndexConverter(t)
	if err != nil {
		return nil, fmt.Errorf("NewUnitCellCoordIndexConverter: %w", err)
	}
	return &UnitCellCoordIndexConverter{uc: uc, nSublattice: nSublattice}, nil
}

// TotalSites returns N·B.
func (c *UnitCellCoordIndexConverter) TotalSites() int {
	return c.uc.TotalUnitCells() * c.nSublattice
}

// NSublattice returns the number of basis sites B.
func (c *UnitCellCoordIndexConverter) NSublattice() int { return c.nSublattice }

// UnitCellConverter returns the underlying unit-cell converter.
func (c *UnitCellCoordIndexConverter) UnitCellConverter() *UnitCellIndexConverter { return c.uc }

// Coord returns the site coordinate at linear index l.
// Panics on an out-of-range index (programmer error).
func (c *UnitCellCoordIndexConverter) Coord(l int) cell.UnitCellCoord {
	n := c.uc.TotalUnitCells()
	if l < 0 || l >= n*c.nSublattice {
		panic(fmt.Sprintf("supercell: site index %d of %d", l, n*c.nSublattice))
	}
	return cell.UnitCellCoord{Sublattice: l / n, Cell: c.uc.UnitCell(l % n)}
}

// Index returns the linear index of coord, reducing its unit cell into the
// supercell first. Panics on an out-of-range sublattice (programmer error).
func (c *UnitCellCoordIndexConverter) Index(coord cell.UnitCellCoord) int {
	if coord.Sublattice < 0 || coord.Sublattice >= c.nSublattice {
		panic(fmt.Sprintf("supercell: sublattice %d of %d", coord.Sublattice, c.nSublattice))
	}
	return coord.Sublattice*c.uc.TotalUnitCells() + c.uc.Index(coord.Cell)
}

// adjugate returns adj(m) with adj(m)·m = det(m)·I.
func adjugate(m [3][3]int) [3][3]int {
	return [3][3]int{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

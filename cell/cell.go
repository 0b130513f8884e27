package cell

import "fmt"

// UnitCell is an integral lattice translation (i, j, k).
type UnitCell [3]int

// Add returns the componentwise sum u + v.
func (u UnitCell) Add(v UnitCell) UnitCell {
	return UnitCell{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

// Sub returns the componentwise difference u - v.
func (u UnitCell) Sub(v UnitCell) UnitCell {
	return UnitCell{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

// Neg returns -u.
func (u UnitCell) Neg() UnitCell {
	return UnitCell{-u[0], -u[1], -u[2]}
}

// Compare orders unit cells lexicographically on (i, j, k).
// Returns -1, 0, or +1.
func (u UnitCell) Compare(v UnitCell) int {
	for i := 0; i < 3; i++ {
		if u[i] < v[i] {
			return -1
		}
		if u[i] > v[i] {
			return 1
		}
	}
	return 0
}

// UnitCellCoord names one site: sublattice index b plus a UnitCell.
type UnitCellCoord struct {
	// Sublattice is the basis-site index b, b ≥ 0.
	Sublattice int

	// Cell is the integral lattice translation of the site.
	Cell UnitCell
}

// NewCoord creates a UnitCellCoord from b and (i, j, k).
func NewCoord(b, i, j, k int) UnitCellCoord {
	return UnitCellCoord{Sublattice: b, Cell: UnitCell{i, j, k}}
}

// UnitCell returns the integral lattice translation of the site.
func (c UnitCellCoord) UnitCell() UnitCell { return c.Cell }

// Translate returns the coordinate shifted by u.
func (c UnitCellCoord) Translate(u UnitCell) UnitCellCoord {
	return UnitCellCoord{Sublattice: c.Sublattice, Cell: c.Cell.Add(u)}
}

// Compare orders coordinates lexicographically on (b, i, j, k).
// Returns -1, 0, or +1.
func (c UnitCellCoord) Compare(d UnitCellCoord) int {
	if c.Sublattice < d.Sublattice {
		return -1
	}
	if c.Sublattice > d.Sublattice {
		return 1
	}
	return c.Cell.Compare(d.Cell)
}

// Rep is one symmetry operation restricted to its action on UnitCellCoord.
//
// The action on c = (b, u) is (Sublattice[b], PointMatrix·u + Translation[b]).
// Rep values are built by the prim layer from cartesian symmetry operations;
// this package treats the encoding as given.
type Rep struct {
	// PointMatrix is the integer fractional-coordinate rotation part.
	PointMatrix [3][3]int

	// Sublattice maps each sublattice index to its image.
	Sublattice []int

	// Translation holds the integral translation the operation adds for each
	// sublattice.
	Translation []UnitCell
}

// Apply transforms a single coordinate. Panics if the sublattice index is
// outside the representation (programmer error).
func (r Rep) Apply(c UnitCellCoord) UnitCellCoord {
	if c.Sublattice < 0 || c.Sublattice >= len(r.Sublattice) {
		panic(fmt.Sprintf("cell: Rep.Apply: sublattice %d outside representation of size %d",
			c.Sublattice, len(r.Sublattice)))
	}
	m := r.PointMatrix
	u := c.Cell
	rotated := UnitCell{
		m[0][0]*u[0] + m[0][1]*u[1] + m[0][2]*u[2],
		m[1][0]*u[0] + m[1][1]*u[1] + m[1][2]*u[2],
		m[2][0]*u[0] + m[2][1]*u[1] + m[2][2]*u[2],
	}
	return UnitCellCoord{
		Sublattice: r.Sublattice[c.Sublattice],
		Cell:       rotated.Add(r.Translation[c.Sublattice]),
	}
}

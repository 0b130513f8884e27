package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Superlattice is the relation S = L·T between a primitive lattice L and a
// supercell lattice S, where T is an integer matrix with |det T| ≥ 1.
type Superlattice struct {
	prim  *Lattice
	super *Lattice
	t     [3][3]int
}

// NewSuperlattice checks the relation S = L·T and records the integer
// transformation matrix T. Returns ErrNotSuperlattice if T is not integer
// at the prim lattice tolerance.
func NewSuperlattice(prim, super *Lattice) (Superlattice, error) {
	var t mat.Dense
	t.Mul(prim.inv, super.col)
	var ti [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := t.At(i, j)
			n := math.Round(v)
			if math.Abs(v-n) > prim.tol {
				return Superlattice{}, fmt.Errorf("NewSuperlattice: T[%d][%d]=%v: %w", i, j, v, ErrNotSuperlattice)
			}
			ti[i][j] = int(n)
		}
	}
	if DetInt(ti) == 0 {
		return Superlattice{}, fmt.Errorf("NewSuperlattice: %w", ErrSingularTransformation)
	}
	return Superlattice{prim: prim, super: super, t: ti}, nil
}

// MakeSuperlattice builds the superlattice S = L·T from an integer
// transformation matrix T. Returns ErrSingularTransformation if det T == 0.
func MakeSuperlattice(prim *Lattice, t [3][3]int) (Superlattice, error) {
	if DetInt(t) == 0 {
		return Superlattice{}, fmt.Errorf("MakeSuperlattice: %w", ErrSingularTransformation)
	}
	tm := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tm.Set(i, j, float64(t[i][j]))
		}
	}
	var s mat.Dense
	s.Mul(prim.col, tm)
	super, err := New(&s, WithTol(prim.tol))
	if err != nil {
		return Superlattice{}, fmt.Errorf("MakeSuperlattice: %w", err)
	}
	return Superlattice{prim: prim, super: super, t: t}, nil
}

// Superlattice returns the supercell lattice S.
func (s Superlattice) Superlattice() *Lattice { return s.super }

// PrimLattice returns the primitive lattice L.
func (s Superlattice) PrimLattice() *Lattice { return s.prim }

// TransformationMatrix returns the integer matrix T with S = L·T.
func (s Superlattice) TransformationMatrix() [3][3]int { return s.t }

// Size returns the number of primitive unit cells in the supercell, |det T|.
func (s Superlattice) Size() int {
	d := DetInt(s.t)
	if d < 0 {
		return -d
	}
	return d
}

// Tol returns the comparison tolerance, shared with the primitive lattice.
func (s Superlattice) Tol() float64 { return s.prim.tol }

// DetInt returns the determinant of an integer 3×3 matrix.
func DetInt(m [3][3]int) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

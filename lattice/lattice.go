package lattice

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the default comparison tolerance for real-valued lattice
// quantities, in the same units as the lattice vectors.
const DefaultTol = 1e-5

// Sentinel errors for lattice construction and superlattice relations.
var (
	// ErrBadDimensions indicates a matrix or vector of the wrong shape.
	ErrBadDimensions = errors.New("lattice: expected 3x3 matrix or length-3 vector")

	// ErrSingularLattice indicates a column matrix with zero volume.
	ErrSingularLattice = errors.New("lattice: column matrix is singular")

	// ErrNotSuperlattice indicates S is not an integer multiple of L.
	ErrNotSuperlattice = errors.New("lattice: not a superlattice of the given lattice")

	// ErrSingularTransformation indicates an integer transformation matrix
	// with determinant zero.
	ErrSingularTransformation = errors.New("lattice: transformation matrix is singular")

	// ErrNotFound indicates that no point-group operation relates a lattice
	// to its canonical form.
	ErrNotFound = errors.New("lattice: operation not found")
)

// Option configures a Lattice before creation.
type Option func(*Lattice)

// WithTol sets the comparison tolerance of the Lattice.
func WithTol(tol float64) Option {
	return func(l *Lattice) { l.tol = tol }
}

// Lattice is an immutable real-space lattice.
//
// The column matrix holds the three lattice vectors as columns. All
// comparisons involving this lattice use its tolerance.
type Lattice struct {
	col *mat.Dense // 3×3 column matrix; columns are lattice vectors
	inv *mat.Dense // cached inverse of col
	tol float64
}

// New creates a Lattice from a 3×3 column matrix.
// The matrix is copied; the Lattice never aliases caller memory.
// Returns ErrBadDimensions or ErrSingularLattice on invalid input.
func New(columns mat.Matrix, opts ...Option) (*Lattice, error) {
	r, c := columns.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("New: %dx%d: %w", r, c, ErrBadDimensions)
	}
	l := &Lattice{col: mat.DenseCopyOf(columns), tol: DefaultTol}
	for _, opt := range opts {
		opt(l)
	}
	var inv mat.Dense
	if err := inv.Inverse(l.col); err != nil {
		return nil, fmt.Errorf("New: %w", ErrSingularLattice)
	}
	if math.Abs(mat.Det(l.col)) <= l.tol {
		return nil, fmt.Errorf("New: %w", ErrSingularLattice)
	}
	l.inv = &inv
	return l, nil
}

// FromColumns creates a Lattice from three lattice vectors a, b, c.
func FromColumns(a, b, c [3]float64, opts ...Option) (*Lattice, error) {
	col := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		col.Set(i, 0, a[i])
		col.Set(i, 1, b[i])
		col.Set(i, 2, c[i])
	}
	return New(col, opts...)
}

// ColumnMatrix returns a copy of the 3×3 column matrix.
func (l *Lattice) ColumnMatrix() *mat.Dense {
	return mat.DenseCopyOf(l.col)
}

// InverseMatrix returns a copy of the inverse of the column matrix.
func (l *Lattice) InverseMatrix() *mat.Dense {
	return mat.DenseCopyOf(l.inv)
}

// Tol returns the comparison tolerance of the lattice.
func (l *Lattice) Tol() float64 { return l.tol }

// Volume returns the (unsigned) volume of the unit cell.
func (l *Lattice) Volume() float64 { return math.Abs(mat.Det(l.col)) }

// FracToCart converts fractional coordinates to cartesian coordinates.
func (l *Lattice) FracToCart(frac mat.Vector) *mat.VecDense {
	var out mat.VecDense
	out.MulVec(l.col, frac)
	return &out
}

// CartToFrac converts cartesian coordinates to fractional coordinates.
func (l *Lattice) CartToFrac(cart mat.Vector) *mat.VecDense {
	var out mat.VecDense
	out.MulVec(l.inv, cart)
	return &out
}

// Compare orders two lattices by entrywise lexicographic comparison of
// their column matrices (row-major traversal) at the given tolerance.
// Returns -1, 0, or +1. Entries closer than tol compare equal.
func Compare(a, b *Lattice, tol float64) int {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := a.col.At(i, j) - b.col.At(i, j)
			if d < -tol {
				return -1
			}
			if d > tol {
				return 1
			}
		}
	}
	return 0
}

// Equal reports whether two lattices have equal column matrices at tol.
func Equal(a, b *Lattice, tol float64) bool {
	return Compare(a, b, tol) == 0
}

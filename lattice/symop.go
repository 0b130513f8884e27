package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SymOp is a rigid symmetry operation: a 3×3 cartesian rotation (possibly
// improper), a cartesian translation, and a time-reversal flag.
//
// SymOp values are immutable; constructors copy their inputs.
type SymOp struct {
	rotation     *mat.Dense
	translation  *mat.VecDense
	timeReversal bool
}

// NewSymOp creates a SymOp. A nil translation means the zero vector.
// Inputs are copied.
func NewSymOp(rotation mat.Matrix, translation mat.Vector, timeReversal bool) SymOp {
	op := SymOp{
		rotation:     mat.DenseCopyOf(rotation),
		timeReversal: timeReversal,
	}
	if translation == nil {
		op.translation = mat.NewVecDense(3, nil)
	} else {
		op.translation = mat.VecDenseCopyOf(translation)
	}
	return op
}

// IdentityOp returns the identity operation.
func IdentityOp() SymOp {
	ident := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	return NewSymOp(ident, nil, false)
}

// TranslationOp returns a pure translation: identity rotation, no time
// reversal.
func TranslationOp(translation mat.Vector) SymOp {
	ident := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	return NewSymOp(ident, translation, false)
}

// Rotation returns a copy of the rotation matrix.
func (op SymOp) Rotation() *mat.Dense { return mat.DenseCopyOf(op.rotation) }

// Translation returns a copy of the cartesian translation.
func (op SymOp) Translation() *mat.VecDense { return mat.VecDenseCopyOf(op.translation) }

// TimeReversal reports whether the operation reverses time.
func (op SymOp) TimeReversal() bool { return op.timeReversal }

// Compose returns a∘b, the operation that applies b first and then a:
// rotation = Ra·Rb, translation = Ra·tb + ta, time reversal = xor.
func Compose(a, b SymOp) SymOp {
	var r mat.Dense
	r.Mul(a.rotation, b.rotation)
	var t mat.VecDense
	t.MulVec(a.rotation, b.translation)
	t.AddVec(&t, a.translation)
	return SymOp{
		rotation:     &r,
		translation:  &t,
		timeReversal: a.timeReversal != b.timeReversal,
	}
}

// CopyApply applies the rotation part of op to a lattice, returning the
// transformed lattice with the same tolerance. Translations do not act on
// lattices.
func CopyApply(op SymOp, l *Lattice) *Lattice {
	var col mat.Dense
	col.Mul(op.rotation, l.col)
	out, err := New(&col, WithTol(l.tol))
	if err != nil {
		// A rigid rotation cannot make a non-singular lattice singular.
		panic("lattice: CopyApply produced a singular lattice: " + err.Error())
	}
	return out
}

// OpEqual reports whether two operations are equal at tolerance tol:
// rotations and translations entrywise, time reversal exactly.
func OpEqual(a, b SymOp, tol float64) bool {
	if a.timeReversal != b.timeReversal {
		return false
	}
	for i := 0; i < 3; i++ {
		if math.Abs(a.translation.AtVec(i)-b.translation.AtVec(i)) > tol {
			return false
		}
		for j := 0; j < 3; j++ {
			if math.Abs(a.rotation.At(i, j)-b.rotation.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// EqualModLattice returns an equality predicate on SymOp that compares
// rotations entrywise and translations modulo lattice translations of l.
// Factor-group elements compose closed only up to a lattice translation;
// this is the predicate to match their products against the element list.
func EqualModLattice(l *Lattice) func(a, b SymOp) bool {
	return func(a, b SymOp) bool {
		if a.timeReversal != b.timeReversal {
			return false
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if math.Abs(a.rotation.At(i, j)-b.rotation.At(i, j)) > l.tol {
					return false
				}
			}
		}
		var d mat.VecDense
		d.SubVec(a.translation, b.translation)
		frac := l.CartToFrac(&d)
		for i := 0; i < 3; i++ {
			v := frac.AtVec(i)
			if math.Abs(v-math.Round(v)) > l.tol {
				return false
			}
		}
		return true
	}
}

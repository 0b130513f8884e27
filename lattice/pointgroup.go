package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pointGroupSearchRange bounds the entries of candidate integer matrices in
// MakePointGroup. ±2 covers every reasonably reduced cell shape.
const pointGroupSearchRange = 2

// MakePointGroup generates the point group of the lattice: every rigid
// rotation (proper or improper) that maps the lattice onto itself.
//
// A candidate is an integer matrix W with Wᵀ·G·W = G, where G = LᵀL is the
// metric tensor; the cartesian operation is then R = L·W·L⁻¹. Candidates are
// assembled column by column from integer vectors that preserve the diagonal
// metric entries, then checked against the off-diagonal entries.
//
// The result order is fixed by the enumeration and must not be reordered:
// canonical-form operators use "first matching operation" as a tie-break.
//
// Complexity: O(k³) over candidate columns; k is small for reduced cells.
func MakePointGroup(l *Lattice) []SymOp {
	var g mat.Dense
	g.Mul(l.col.T(), l.col)

	scale := 0.0
	for i := 0; i < 3; i++ {
		if d := math.Abs(g.At(i, i)); d > scale {
			scale = d
		}
	}
	eps := l.tol * math.Max(1, scale)

	// candidate columns per position: integer vectors preserving G[j][j]
	candidates := make([][][3]int, 3)
	for j := 0; j < 3; j++ {
		for a := -pointGroupSearchRange; a <= pointGroupSearchRange; a++ {
			for b := -pointGroupSearchRange; b <= pointGroupSearchRange; b++ {
				for c := -pointGroupSearchRange; c <= pointGroupSearchRange; c++ {
					v := [3]int{a, b, c}
					if math.Abs(metricProduct(&g, v, v)-g.At(j, j)) <= eps {
						candidates[j] = append(candidates[j], v)
					}
				}
			}
		}
	}

	var ops []SymOp
	linv := l.inv
	for _, c0 := range candidates[0] {
		for _, c1 := range candidates[1] {
			if math.Abs(metricProduct(&g, c0, c1)-g.At(0, 1)) > eps {
				continue
			}
			for _, c2 := range candidates[2] {
				if math.Abs(metricProduct(&g, c0, c2)-g.At(0, 2)) > eps {
					continue
				}
				if math.Abs(metricProduct(&g, c1, c2)-g.At(1, 2)) > eps {
					continue
				}
				w := [3][3]int{
					{c0[0], c1[0], c2[0]},
					{c0[1], c1[1], c2[1]},
					{c0[2], c1[2], c2[2]},
				}
				if d := DetInt(w); d != 1 && d != -1 {
					continue
				}
				wm := mat.NewDense(3, 3, nil)
				for i := 0; i < 3; i++ {
					for jj := 0; jj < 3; jj++ {
						wm.Set(i, jj, float64(w[i][jj]))
					}
				}
				var r mat.Dense
				r.Mul(l.col, wm)
				r.Mul(&r, linv)
				ops = append(ops, SymOp{
					rotation:    mat.DenseCopyOf(&r),
					translation: mat.NewVecDense(3, nil),
				})
			}
		}
	}
	return ops
}

// metricProduct computes aᵀ·G·b for integer vectors a, b.
func metricProduct(g *mat.Dense, a, b [3]int) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += float64(a[i]) * g.At(i, j) * float64(b[j])
		}
	}
	return sum
}

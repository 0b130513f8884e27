package clust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// fccA is the conventional cube edge of the test FCC prim; the
// nearest-neighbour distance is fccA/√2 and the second-neighbour distance
// is fccA.
const fccA = 4.0

func fccNN() float64 { return fccA / math.Sqrt2 }

// fccPrim returns a primitive FCC structure with one sublattice.
func fccPrim(t *testing.T) *prim.Prim {
	t.Helper()
	l, err := lattice.FromColumns(
		[3]float64{0, fccA / 2, fccA / 2},
		[3]float64{fccA / 2, 0, fccA / 2},
		[3]float64{fccA / 2, fccA / 2, 0},
	)
	require.NoError(t, err)
	p, err := prim.New(l, []prim.Site{prim.NewSite([3]float64{0, 0, 0}, "A", "B")})
	require.NoError(t, err)
	require.Equal(t, 48, p.FactorGroup().Size())
	return p
}

// rocksaltPrim returns a cubic structure with two distinguishable
// sublattices.
func rocksaltPrim(t *testing.T) *prim.Prim {
	t.Helper()
	l, err := lattice.FromColumns(
		[3]float64{2, 0, 0},
		[3]float64{0, 2, 0},
		[3]float64{0, 0, 2},
	)
	require.NoError(t, err)
	p, err := prim.New(l, []prim.Site{
		prim.NewSite([3]float64{0, 0, 0}, "Na"),
		prim.NewSite([3]float64{0.5, 0.5, 0.5}, "Cl"),
	})
	require.NoError(t, err)
	return p
}

package clust_test

import (
	"testing"

	"github.com/katalvlaran/crysym/clust"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// BenchmarkMakePrimPeriodicOrbits measures pair-orbit enumeration on a
// primitive FCC crystal with 48 operations.
func BenchmarkMakePrimPeriodicOrbits(b *testing.B) {
	l, err := lattice.FromColumns(
		[3]float64{0, fccA / 2, fccA / 2},
		[3]float64{fccA / 2, 0, fccA / 2},
		[3]float64{fccA / 2, fccA / 2, 0},
	)
	if err != nil {
		b.Fatal(err)
	}
	p, err := prim.New(l, []prim.Site{prim.NewSite([3]float64{0, 0, 0}, "A", "B")})
	if err != nil {
		b.Fatal(err)
	}
	reps := p.BasisRep()
	maxLength := []float64{0, 0, fccNN()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clust.MakePrimPeriodicOrbits(p, reps, clust.AllSitesFilter(), maxLength, nil); err != nil {
			b.Fatal(err)
		}
	}
}

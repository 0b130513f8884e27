package clust_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/clust"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// ExampleMakePrimPeriodicOrbits enumerates the null, point, and
// nearest-neighbour pair orbits of a primitive FCC crystal.
func ExampleMakePrimPeriodicOrbits() {
	a := 4.0
	l, _ := lattice.FromColumns(
		[3]float64{0, a / 2, a / 2},
		[3]float64{a / 2, 0, a / 2},
		[3]float64{a / 2, a / 2, 0},
	)
	p, _ := prim.New(l, []prim.Site{prim.NewSite([3]float64{0, 0, 0}, "A", "B")})

	nn := a / math.Sqrt2
	orbits, _ := clust.MakePrimPeriodicOrbits(p, p.BasisRep(), clust.AllSitesFilter(),
		[]float64{0, 0, nn}, nil)

	for _, orbit := range orbits {
		fmt.Printf("size %d: %d equivalent clusters\n", orbit[0].Size(), len(orbit))
	}
	// Output:
	// size 0: 1 equivalent clusters
	// size 1: 1 equivalent clusters
	// size 2: 6 equivalent clusters
}

package clust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/clust"
)

// TestNewInvariants verifies size and sorted pairwise distances.
func TestNewInvariants(t *testing.T) {
	p := fccPrim(t)

	null := clust.IntegralCluster{}
	assert.Equal(t, 0, clust.NewInvariants(null, p).Size())
	assert.Empty(t, clust.NewInvariants(null, p).Distances())
	assert.Equal(t, 0.0, clust.NewInvariants(null, p).MaxLength())

	pair := clust.NewCluster(cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 0, 0, 1))
	inv := clust.NewInvariants(pair, p)
	require.Len(t, inv.Distances(), 1)
	assert.InDelta(t, fccNN(), inv.MaxLength(), 1e-10, "integer coord (0,0,1) is a nearest neighbour")
}

// TestNewInvariants_SymmetryEquivalentClustersAgree verifies the pruning
// property: equivalent clusters share invariants.
func TestNewInvariants_SymmetryEquivalentClustersAgree(t *testing.T) {
	p := fccPrim(t)
	pair := clust.NewCluster(cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 0, 0, 1))
	base := clust.NewInvariants(pair, p)

	for i, rep := range p.BasisRep() {
		image := clust.PrimPeriodicCopyApply(rep, pair)
		assert.Equal(t, 0,
			clust.CompareInvariants(base, clust.NewInvariants(image, p), p.Lattice().Tol()),
			"op %d image must have equal invariants", i)
	}
}

// TestCompareInvariants verifies the size-then-distances order with
// tolerance.
func TestCompareInvariants(t *testing.T) {
	p := fccPrim(t)
	single := clust.NewInvariants(clust.NewCluster(cell.NewCoord(0, 0, 0, 0)), p)
	near := clust.NewInvariants(clust.NewCluster(
		cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 0, 0, 1)), p)
	far := clust.NewInvariants(clust.NewCluster(
		cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 1, 1, -1)), p)

	tol := p.Lattice().Tol()
	assert.Equal(t, -1, clust.CompareInvariants(single, near, tol), "size dominates")
	assert.Equal(t, -1, clust.CompareInvariants(near, far, tol), "shorter pair orders first")
	assert.Equal(t, 1, clust.CompareInvariants(far, near, tol))
	assert.Equal(t, 0, clust.CompareInvariants(near, near, tol))
}

// TestNewLocalInvariants verifies the phenomenal distance component.
func TestNewLocalInvariants(t *testing.T) {
	p := fccPrim(t)
	phenomenal := clust.NewCluster(cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 0, 0, 1))
	site := clust.NewCluster(cell.NewCoord(0, 1, 0, 0))

	inv := clust.NewLocalInvariants(site, phenomenal, p)
	require.Len(t, inv.PhenomenalDistances(), 2, "one distance per phenomenal site")
	assert.LessOrEqual(t, inv.PhenomenalDistances()[0], inv.PhenomenalDistances()[1], "sorted ascending")

	// a lattice translation of the cluster changes the local invariants
	shifted := site.Copy()
	shifted.Translate(cell.UnitCell{3, 0, 0})
	shiftedInv := clust.NewLocalInvariants(shifted, phenomenal, p)
	assert.NotEqual(t, 0,
		clust.CompareInvariants(inv, shiftedInv, p.Lattice().Tol()),
		"local invariants must see the distance to the phenomenal cluster")
}

// TestSiteDistance verifies cartesian distances from integer coordinates.
func TestSiteDistance(t *testing.T) {
	p := fccPrim(t)
	origin := cell.NewCoord(0, 0, 0, 0)
	assert.InDelta(t, fccNN(), clust.SiteDistance(p, origin, cell.NewCoord(0, 1, 0, 0)), 1e-10)
	assert.InDelta(t, fccNN(), clust.SiteDistance(p, origin, cell.NewCoord(0, 1, -1, 0)), 1e-10)
	assert.InDelta(t, fccA, clust.SiteDistance(p, origin, cell.NewCoord(0, 1, 1, -1)), 1e-10,
		"(1,1,-1) is a second neighbour")
}

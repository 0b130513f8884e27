package clust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/clust"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

func nnPair() clust.IntegralCluster {
	return clust.NewCluster(cell.NewCoord(0, 0, 0, 0), cell.NewCoord(0, 0, 0, 1))
}

// TestPrimPeriodicCopyApply verifies the sort-and-translate normalisation.
func TestPrimPeriodicCopyApply(t *testing.T) {
	p := fccPrim(t)
	identity := p.BasisRep()[0] // factor group order starts wherever; find identity instead
	for _, rep := range p.BasisRep() {
		if rep.PointMatrix == [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			identity = rep
			break
		}
	}

	shifted := nnPair()
	shifted.Translate(cell.UnitCell{5, -2, 1})
	got := clust.PrimPeriodicCopyApply(identity, shifted)
	assert.Equal(t, cell.UnitCell{0, 0, 0}, got[0].UnitCell(),
		"the first element lands in the origin unit cell")
	assert.True(t, got.Equal(nnPair()), "a translated cluster folds back to the origin coset")

	empty := clust.IntegralCluster{}
	assert.Equal(t, 0, clust.PrimPeriodicCopyApply(identity, empty).Size())
}

// TestPrimPeriodicFracTranslation verifies the coset-restoring translation.
func TestPrimPeriodicFracTranslation(t *testing.T) {
	p := fccPrim(t)
	pair := nnPair()

	for i, rep := range p.BasisRep() {
		frac := clust.PrimPeriodicFracTranslation(rep, pair)
		moved := clust.CopyApply(rep, pair)
		moved.Sort()
		moved.Translate(frac)
		assert.Equal(t, cell.UnitCell{0, 0, 0}, moved[0].UnitCell(),
			"op %d: translation must restore the origin coset", i)
	}

	assert.Equal(t, cell.UnitCell{0, 0, 0},
		clust.PrimPeriodicFracTranslation(p.BasisRep()[0], clust.IntegralCluster{}))
}

// TestMakePrimPeriodicOrbit verifies orbit closure and ordering for the FCC
// nearest-neighbour pair.
func TestMakePrimPeriodicOrbit(t *testing.T) {
	p := fccPrim(t)
	orbit := clust.MakePrimPeriodicOrbit(nnPair(), p.BasisRep())

	assert.Len(t, orbit, 6, "12 NN directions fold to 6 pairs modulo translation")
	for i := 1; i < len(orbit); i++ {
		assert.True(t, clust.Less(orbit[i-1], orbit[i]), "orbit is an ascending ordered set")
	}
	for _, e := range orbit {
		assert.Equal(t, cell.UnitCell{0, 0, 0}, e[0].UnitCell(), "every element is origin-normalised")
	}
}

// TestEquivalenceMap_PartitionsReps verifies the cosets partition the
// representation and every orbit element is reachable from the seed.
func TestEquivalenceMap_PartitionsReps(t *testing.T) {
	p := fccPrim(t)
	reps := p.BasisRep()
	orbit := clust.MakePrimPeriodicOrbit(nnPair(), reps)
	eqMap := group.MakeEquivalenceMap(orbit, reps, clust.Less, clust.PrimPeriodicCopyApply)

	require.Len(t, eqMap, len(orbit))
	seen := map[int]bool{}
	for i, coset := range eqMap {
		assert.NotEmpty(t, coset, "every orbit element is reachable from the seed")
		for _, j := range coset {
			assert.False(t, seen[j], "rep %d appears in two cosets", j)
			seen[j] = true
			assert.True(t, clust.PrimPeriodicCopyApply(reps[j], orbit[0]).Equal(orbit[i]),
				"rep %d must map the prototype onto orbit element %d", j, i)
		}
	}
	assert.Len(t, seen, len(reps), "the cosets cover the whole representation")
}

// TestMakeClusterGroup_FCCDimer verifies the dimer group holds 8
// operations including the bond-midpoint inversion with its non-zero
// cartesian translation L·(0,0,1).
func TestMakeClusterGroup_FCCDimer(t *testing.T) {
	p := fccPrim(t)
	g, err := clust.MakeClusterGroup(nnPair(), p.FactorGroup(), p.Lattice(), p.BasisRep())
	require.NoError(t, err)

	assert.Equal(t, 8, g.Size(), "|stab| = |G| / |orbit| = 48/6")
	assert.Same(t, p.FactorGroup(), g.Parent())

	identity := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	var inversionMat mat.Dense
	inversionMat.Scale(-1, identity)
	wantTranslation := p.Lattice().FracToCart(mat.NewVecDense(3, []float64{0, 0, 1}))

	foundIdentity, foundInversion := false, false
	for i := 0; i < g.Size(); i++ {
		op := g.Element(i)
		if mat.EqualApprox(op.Rotation(), identity, 1e-8) &&
			mat.Norm(op.Translation(), 2) < 1e-8 {
			foundIdentity = true
		}
		if mat.EqualApprox(op.Rotation(), &inversionMat, 1e-8) &&
			mat.EqualApprox(op.Translation(), wantTranslation, 1e-8) {
			foundInversion = true
		}
	}
	assert.True(t, foundIdentity, "the identity fixes the dimer with zero translation")
	assert.True(t, foundInversion, "the inversion carries the bond translation L·(0,0,1)")
}

// TestMakeClusterGroups_FixesOrbitElements verifies every
// cluster-group element maps its orbit element's cartesian site set onto
// itself.
func TestMakeClusterGroups_FixesOrbitElements(t *testing.T) {
	p := fccPrim(t)
	reps := p.BasisRep()
	orbit := clust.MakePrimPeriodicOrbit(nnPair(), reps)

	groups, err := clust.MakeClusterGroups(orbit, p.FactorGroup(), p.Lattice(), reps)
	require.NoError(t, err)
	require.Len(t, groups, len(orbit))

	for i, g := range groups {
		assert.Equal(t, 8, g.Size(), "conjugate stabilisers share the order")
		for e := 0; e < g.Size(); e++ {
			op := g.Element(e)
			assertFixesSiteSet(t, p, op, orbit[i])
		}
	}
}

// TestMakeClusterGroup_EmptyCluster verifies the factor group passes
// through for the null cluster.
func TestMakeClusterGroup_EmptyCluster(t *testing.T) {
	p := fccPrim(t)
	g, err := clust.MakeClusterGroup(clust.IntegralCluster{}, p.FactorGroup(), p.Lattice(), p.BasisRep())
	require.NoError(t, err)
	assert.Same(t, p.FactorGroup(), g)
}

// TestMakePrimPeriodicOrbits_FCCPairs verifies the null, single-site,
// and nearest-neighbour pair orbits.
func TestMakePrimPeriodicOrbits_FCCPairs(t *testing.T) {
	p := fccPrim(t)
	reps := p.BasisRep()

	orbits, err := clust.MakePrimPeriodicOrbits(p, reps, clust.AllSitesFilter(),
		[]float64{0, 0, fccNN()}, nil)
	require.NoError(t, err)
	require.Len(t, orbits, 3, "null + single site + NN pair")

	assert.Equal(t, 0, orbits[0][0].Size())
	assert.Equal(t, 1, orbits[1][0].Size())
	assert.Equal(t, 2, orbits[2][0].Size())

	assert.Len(t, orbits[1], 1, "one sublattice, one single-site class")
	assert.Len(t, orbits[2], 6)
	assert.Equal(t, cell.UnitCell{0, 0, 0}, orbits[2][0][0].UnitCell(),
		"the pair representative is origin-normalised")
	inv := clust.NewInvariants(orbits[2][0], p)
	assert.InDelta(t, fccNN(), inv.MaxLength(), 1e-10)

	// representatives are canonical, branch sizes bounded by len(maxLength)-1
	for _, orbit := range orbits {
		require.NotEmpty(t, orbit)
		canonical := group.MakeCanonicalElement(orbit[0], reps, clust.Less, clust.PrimPeriodicCopyApply)
		assert.True(t, canonical.Equal(orbit[0]), "representative must be the canonical element")
		assert.LessOrEqual(t, orbit[0].Size(), 2, "branch size bound |max_length|-1")
	}
}

// TestMakePrimPeriodicOrbits_Coverage verifies completeness on the pair
// branch: every admissible pair lies in some returned orbit.
func TestMakePrimPeriodicOrbits_Coverage(t *testing.T) {
	p := fccPrim(t)
	reps := p.BasisRep()
	orbits, err := clust.MakePrimPeriodicOrbits(p, reps, clust.AllSitesFilter(),
		[]float64{0, 0, fccA}, nil)
	require.NoError(t, err)

	// collect every normalised pair within the bound
	origin := cell.NewCoord(0, 0, 0, 0)
	for _, site := range clust.MaxLengthNeighborhood(fccA)(p, clust.AllSitesFilter()) {
		if site == origin {
			continue
		}
		pair := clust.NewCluster(origin, site)
		canonical := group.MakeCanonicalElement(pair, reps, clust.Less, clust.PrimPeriodicCopyApply)

		found := false
		for _, orbit := range orbits {
			for _, e := range orbit {
				if e.Equal(canonical) {
					found = true
					break
				}
			}
		}
		assert.True(t, found, "pair with site %v must be covered by an orbit", site)
	}
}

// TestMakePrimPeriodicOrbits_Rocksalt verifies multi-sublattice single-site
// classes.
func TestMakePrimPeriodicOrbits_Rocksalt(t *testing.T) {
	p := rocksaltPrim(t)
	orbits, err := clust.MakePrimPeriodicOrbits(p, p.BasisRep(), clust.AllSitesFilter(),
		[]float64{0, 0}, nil)
	require.NoError(t, err)
	require.Len(t, orbits, 3, "null + Na sites + Cl sites")
	assert.Equal(t, 1, orbits[1][0].Size())
	assert.Equal(t, 1, orbits[2][0].Size())
	assert.NotEqual(t, orbits[1][0][0].Sublattice, orbits[2][0][0].Sublattice,
		"distinguishable sublattices stay in separate orbits")
}

// TestMakePrimPeriodicOrbits_CustomGenerators verifies the filter bypass
// with subclusters.
func TestMakePrimPeriodicOrbits_CustomGenerators(t *testing.T) {
	p := fccPrim(t)
	triplet := clust.NewCluster(
		cell.NewCoord(0, 0, 0, 0),
		cell.NewCoord(0, 0, 0, 1),
		cell.NewCoord(0, 0, 1, 0),
	)

	// max_length of size 1 admits nothing beyond the null cluster on its own
	orbits, err := clust.MakePrimPeriodicOrbits(p, p.BasisRep(), clust.AllSitesFilter(),
		[]float64{0},
		[]clust.OrbitGenerator{{Prototype: triplet, IncludeSubclusters: true}})
	require.NoError(t, err)

	require.Len(t, orbits, 4, "null, single, NN pair, NN triangle — filters bypassed")
	sizes := []int{}
	for _, orbit := range orbits {
		sizes = append(sizes, orbit[0].Size())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, sizes)
}

// TestMakePrimPeriodicOrbits_EmptyRep verifies the validation contract.
func TestMakePrimPeriodicOrbits_EmptyRep(t *testing.T) {
	p := fccPrim(t)
	_, err := clust.MakePrimPeriodicOrbits(p, nil, clust.AllSitesFilter(), []float64{0, 0}, nil)
	assert.ErrorIs(t, err, clust.ErrEmptyRepresentation)
}

// assertFixesSiteSet applies a cartesian operation to every site of the
// cluster and asserts the resulting point set equals the original.
func assertFixesSiteSet(t *testing.T, p *prim.Prim, op lattice.SymOp, c clust.IntegralCluster) {
	t.Helper()
	for _, site := range c {
		var image mat.VecDense
		image.MulVec(op.Rotation(), clust.SiteCart(p, site))
		image.AddVec(&image, op.Translation())

		matched := false
		for _, other := range c {
			var d mat.VecDense
			d.SubVec(&image, clust.SiteCart(p, other))
			if mat.Norm(&d, 2) < 1e-8 {
				matched = true
				break
			}
		}
		assert.True(t, matched, "image of site %v must be a cluster site", site)
	}
}

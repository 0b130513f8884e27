package clust

import (
	"fmt"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// LocalCopyApply transforms a local cluster: apply the operation
// elementwise and sort. No translation to the origin is performed — the
// phenomenal cluster breaks translational symmetry, so local clusters do
// not quotient by lattice translation.
func LocalCopyApply(op cell.Rep, clust IntegralCluster) IntegralCluster {
	if clust.Size() == 0 {
		return clust.Copy()
	}
	out := CopyApply(op, clust)
	out.Sort()
	return out
}

// MakeLocalOrbit closes one local cluster under the representation,
// returning the orbit as an ascending ordered set.
//
// reps must be consistent with a group of operations that fix the
// phenomenal cluster; this is a caller contract and is not checked.
func MakeLocalOrbit(orbitElement IntegralCluster, reps []cell.Rep) []IntegralCluster {
	return group.MakeOrbit(orbitElement, reps, Less, LocalCopyApply)
}

// MakeLocalClusterGroups returns, per orbit element, the subgroup of the
// phenomenal group that fixes the element. No translation parts are added:
// local clusters are fixed literally, not up to translation.
//
// reps must be the phenomenal group's site representation, in element
// order; this is a caller contract and is not checked.
func MakeLocalClusterGroups(orbit []IntegralCluster, phenomenalGroup *group.SymGroup,
	lat *lattice.Lattice, reps []cell.Rep) ([]*group.SymGroup, error) {

	eqMap := group.MakeEquivalenceMap(orbit, reps, Less, LocalCopyApply)

	mult, inv, err := phenomenalGroup.MultiplicationTable(lattice.EqualModLattice(lat))
	if err != nil {
		return nil, fmt.Errorf("MakeLocalClusterGroups: %w", err)
	}
	subgroupIndices := group.MakeInvariantSubgroups(eqMap, mult, inv)

	clusterGroups := make([]*group.SymGroup, 0, len(orbit))
	for i, sub := range subgroupIndices {
		g, err := group.NewSubgroup(phenomenalGroup, sub)
		if err != nil {
			return nil, fmt.Errorf("MakeLocalClusterGroups: orbit element %d: %w", i, err)
		}
		clusterGroups = append(clusterGroups, g)
	}
	return clusterGroups, nil
}

// MakeLocalOrbits enumerates local-cluster orbits around a phenomenal
// cluster, branch by branch.
//
// cutoffRadius[branch] bounds the phenomenal-site-to-cluster-site distance
// for clusters of size branch (entry 0 is ignored); maxLength plays the
// same role as in MakePrimPeriodicOrbits. includePhenomenalSites controls
// whether phenomenal sites may appear in local clusters.
func MakeLocalOrbits(p *prim.Prim, reps []cell.Rep, siteFilter SiteFilter,
	maxLength []float64, customGenerators []OrbitGenerator,
	phenomenal IntegralCluster, cutoffRadius []float64,
	includePhenomenalSites bool) ([][]IntegralCluster, error) {

	if len(reps) == 0 {
		return nil, fmt.Errorf("MakeLocalOrbits: %w", ErrEmptyRepresentation)
	}
	if len(cutoffRadius) < len(maxLength) {
		return nil, fmt.Errorf("MakeLocalOrbits: %d radii for %d branches: %w",
			len(cutoffRadius), len(maxLength), ErrCutoffRadiusSize)
	}

	engine := branchingEngine{
		p:         p,
		maxLength: maxLength,
		makeInvariants: func(c IntegralCluster) Invariants {
			return NewLocalInvariants(c, phenomenal, p)
		},
		makeCanonical: func(c IntegralCluster) IntegralCluster {
			return group.MakeCanonicalElement(c, reps, Less, LocalCopyApply)
		},
		candidateSites: func(branch int) []cell.UnitCellCoord {
			return CutoffRadiusNeighborhood(phenomenal, cutoffRadius[branch], includePhenomenalSites)(p, siteFilter)
		},
	}
	final := engine.run(customGenerators)

	orbits := make([][]IntegralCluster, 0, len(final.pairs))
	for _, pair := range final.pairs {
		orbits = append(orbits, MakeLocalOrbit(pair.clust, reps))
	}
	return orbits, nil
}

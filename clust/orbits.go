package clust

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/lattice"
	"github.com/katalvlaran/crysym/prim"
)

// Sentinel errors for orbit enumeration.
var (
	// ErrEmptyRepresentation indicates an empty symmetry representation.
	ErrEmptyRepresentation = errors.New("clust: representation must contain at least one operation")

	// ErrCutoffRadiusSize indicates fewer cutoff radii than orbit branches.
	ErrCutoffRadiusSize = errors.New("clust: cutoff radius list shorter than max length list")
)

// PrimPeriodicCopyApply transforms a cluster under prim-periodic symmetry:
// apply the operation elementwise, sort, then translate the whole cluster
// so the first (smallest) element sits in the origin unit cell. The result
// is the canonical representative within its translation coset. The empty
// cluster passes through unchanged.
func PrimPeriodicCopyApply(op cell.Rep, clust IntegralCluster) IntegralCluster {
	if clust.Size() == 0 {
		return clust.Copy()
	}
	out := CopyApply(op, clust)
	out.Sort()
	out.Translate(out[0].UnitCell().Neg())
	return out
}

// PrimPeriodicFracTranslation returns the lattice translation that must be
// applied after the operation to bring the transformed cluster back to the
// origin coset: sort, record the first element's unit cell, apply and sort,
// and return initial minus final. The empty cluster yields (0, 0, 0).
func PrimPeriodicFracTranslation(op cell.Rep, clust IntegralCluster) cell.UnitCell {
	if clust.Size() == 0 {
		return cell.UnitCell{}
	}
	c := clust.Copy()
	c.Sort()
	posInit := c[0].UnitCell()
	Apply(op, c)
	c.Sort()
	posFinal := c[0].UnitCell()
	return posInit.Sub(posFinal)
}

// MakePrimPeriodicOrbit closes one cluster under the representation,
// returning the orbit as an ascending ordered set.
func MakePrimPeriodicOrbit(orbitElement IntegralCluster, reps []cell.Rep) []IntegralCluster {
	return group.MakeOrbit(orbitElement, reps, Less, PrimPeriodicCopyApply)
}

// MakeClusterGroups returns, per orbit element, the SymGroup of
// factor-group operations that leave the element invariant up to a
// translation, each element augmented with the cartesian translation
// L·frac that makes it literally fix the cluster. The rotation part of the
// translation factor is the identity.
//
// reps must be the factor group's site representation, in factor-group
// order; this is a caller contract and is not checked.
func MakeClusterGroups(orbit []IntegralCluster, factorGroup *group.SymGroup,
	lat *lattice.Lattice, reps []cell.Rep) ([]*group.SymGroup, error) {

	// eqMap[i] holds the group indices mapping the first orbit element onto
	// the i-th orbit element.
	eqMap := group.MakeEquivalenceMap(orbit, reps, Less, PrimPeriodicCopyApply)

	mult, inv, err := factorGroup.MultiplicationTable(lattice.EqualModLattice(lat))
	if err != nil {
		return nil, fmt.Errorf("MakeClusterGroups: %w", err)
	}
	subgroupIndices := group.MakeInvariantSubgroups(eqMap, mult, inv)

	clusterGroups := make([]*group.SymGroup, 0, len(orbit))
	for i, sub := range subgroupIndices {
		elements := make([]lattice.SymOp, 0, len(sub))
		for _, j := range sub {
			frac := PrimPeriodicFracTranslation(reps[j], orbit[i])
			cart := lat.FracToCart(fracVec(frac))
			elements = append(elements, lattice.Compose(lattice.TranslationOp(cart), factorGroup.Element(j)))
		}
		g, err := group.NewSubgroupWithElements(factorGroup, elements, sub)
		if err != nil {
			return nil, fmt.Errorf("MakeClusterGroups: orbit element %d: %w", i, err)
		}
		clusterGroups = append(clusterGroups, g)
	}
	return clusterGroups, nil
}

// MakeClusterGroup returns the group that leaves a single cluster
// invariant, with the cartesian translation attached to each accepted
// operation. The empty cluster returns the factor group unchanged.
func MakeClusterGroup(cluster IntegralCluster, factorGroup *group.SymGroup,
	lat *lattice.Lattice, reps []cell.Rep) (*group.SymGroup, error) {

	if cluster.Size() == 0 {
		return factorGroup, nil
	}
	c := cluster.Copy()
	c.Sort()

	var elements []lattice.SymOp
	var indices []int
	for i := 0; i < factorGroup.Size(); i++ {
		tclust := CopyApply(reps[i], c)
		tclust.Sort()

		frac := c[0].UnitCell().Sub(tclust[0].UnitCell())
		tclust.Translate(frac)

		if tclust.Equal(c) {
			cart := lat.FracToCart(fracVec(frac))
			elements = append(elements, lattice.Compose(lattice.TranslationOp(cart), factorGroup.Element(i)))
			indices = append(indices, i)
		}
	}
	g, err := group.NewSubgroupWithElements(factorGroup, elements, indices)
	if err != nil {
		return nil, fmt.Errorf("MakeClusterGroup: %w", err)
	}
	return g, nil
}

// MakePrimPeriodicOrbits enumerates cluster orbits branch by branch under
// prim-periodic symmetry.
//
// maxLength[branch] bounds the pairwise site distance for clusters of size
// branch; entries 0 and 1 are ignored and len(maxLength) fixes the maximum
// cluster size. The null cluster is always included. Custom generators are
// inserted after the branch loop, bypassing all filters.
//
// The result is one orbit per unique canonical cluster, ordered by
// invariants then cluster order.
func MakePrimPeriodicOrbits(p *prim.Prim, reps []cell.Rep, siteFilter SiteFilter,
	maxLength []float64, customGenerators []OrbitGenerator) ([][]IntegralCluster, error) {

	if len(reps) == 0 {
		return nil, fmt.Errorf("MakePrimPeriodicOrbits: %w", ErrEmptyRepresentation)
	}

	engine := branchingEngine{
		p:         p,
		maxLength: maxLength,
		makeInvariants: func(c IntegralCluster) Invariants {
			return NewInvariants(c, p)
		},
		makeCanonical: func(c IntegralCluster) IntegralCluster {
			return group.MakeCanonicalElement(c, reps, Less, PrimPeriodicCopyApply)
		},
		candidateSites: func(branch int) []cell.UnitCellCoord {
			if branch == 1 {
				return OriginNeighborhood()(p, siteFilter)
			}
			return MaxLengthNeighborhood(maxLength[branch])(p, siteFilter)
		},
	}
	final := engine.run(customGenerators)

	orbits := make([][]IntegralCluster, 0, len(final.pairs))
	for _, pair := range final.pairs {
		orbits = append(orbits, MakePrimPeriodicOrbit(pair.clust, reps))
	}
	return orbits, nil
}

// branchingEngine is the branch-and-filter loop shared by the prim-periodic
// and local engines; the two differ only in invariants, canonicalisation,
// and candidate-site generation.
type branchingEngine struct {
	p              *prim.Prim
	maxLength      []float64
	makeInvariants func(IntegralCluster) Invariants
	makeCanonical  func(IntegralCluster) IntegralCluster
	candidateSites func(branch int) []cell.UnitCellCoord
}

// run collects the unique canonical clusters, branch by branch, then
// inserts the custom generators.
func (e *branchingEngine) run(customGenerators []OrbitGenerator) *clusterSet {
	tol := e.p.Lattice().Tol()
	final := newClusterSet(tol)
	prevBranch := newClusterSet(tol)

	// the null cluster is always included
	null := IntegralCluster{}
	final.insert(e.makeInvariants(null), null)
	prevBranch.insert(e.makeInvariants(null), null)

	for branch := 1; branch < len(e.maxLength); branch++ {
		candidates := e.candidateSites(branch)

		var clusterFilter ClusterFilterFunc
		if branch == 1 {
			clusterFilter = AllClustersFilter()
		} else {
			clusterFilter = MaxLengthClusterFilter(e.maxLength[branch])
		}

		// grow every previous-branch cluster by one candidate site; the set
		// comparator deduplicates equivalents
		currBranch := newClusterSet(tol)
		for _, pair := range prevBranch.pairs {
			for _, site := range candidates {
				if pair.clust.Contains(site) {
					continue
				}
				testCluster := append(pair.clust.Copy(), site)
				invariants := e.makeInvariants(testCluster)
				if !clusterFilter(e.p, invariants, testCluster) {
					continue
				}
				currBranch.insert(invariants, e.makeCanonical(testCluster))
			}
		}

		final.merge(prevBranch)
		prevBranch = currBranch
	}
	final.merge(prevBranch)

	// custom generators bypass the filters on purpose
	for _, generator := range customGenerators {
		testCluster := e.makeCanonical(generator.Prototype)
		final.insert(e.makeInvariants(testCluster), testCluster)

		if generator.IncludeSubclusters {
			for counter := NewSubClusterCounter(generator.Prototype); counter.Valid(); counter.Next() {
				sub := e.makeCanonical(counter.Value())
				final.insert(e.makeInvariants(sub), sub)
			}
		}
	}
	return final
}

func fracVec(u cell.UnitCell) *mat.VecDense {
	return mat.NewVecDense(3, []float64{float64(u[0]), float64(u[1]), float64(u[2])})
}

package clust

import (
	"sort"

	"github.com/katalvlaran/crysym/prim"
)

// Invariants is the cheap comparable summary of a cluster: size plus the
// sorted pairwise site distances, and, in the local form, the sorted
// distances from cluster sites to phenomenal sites. Two symmetry-equivalent
// clusters always have equal invariants, so comparing invariants first
// prunes most canonicalisation work.
type Invariants struct {
	size       int
	distances  []float64
	phenomenal []float64
}

// NewInvariants summarises a cluster under prim-periodic symmetry.
func NewInvariants(c IntegralCluster, p *prim.Prim) Invariants {
	return Invariants{size: c.Size(), distances: pairDistances(c, p)}
}

// NewLocalInvariants summarises a cluster relative to a phenomenal cluster:
// the pairwise distances plus every cluster-site-to-phenomenal-site
// distance, both sorted.
func NewLocalInvariants(c, phenomenal IntegralCluster, p *prim.Prim) Invariants {
	inv := Invariants{size: c.Size(), distances: pairDistances(c, p)}
	for _, site := range c {
		for _, ph := range phenomenal {
			inv.phenomenal = append(inv.phenomenal, SiteDistance(p, site, ph))
		}
	}
	sort.Float64s(inv.phenomenal)
	return inv
}

// Size returns the cluster size.
func (v Invariants) Size() int { return v.size }

// Distances returns the sorted pairwise distances. Read-only.
func (v Invariants) Distances() []float64 { return v.distances }

// PhenomenalDistances returns the sorted site-to-phenomenal distances.
// Read-only; empty for the prim-periodic form.
func (v Invariants) PhenomenalDistances() []float64 { return v.phenomenal }

// MaxLength returns the largest pairwise distance, 0 for clusters with
// fewer than two sites.
func (v Invariants) MaxLength() float64 {
	if len(v.distances) == 0 {
		return 0
	}
	return v.distances[len(v.distances)-1]
}

// CompareInvariants orders invariants at tolerance tol: size, then pairwise
// distances, then phenomenal distances, each lexicographically with
// tolerance-equal entries treated as ties. Returns -1, 0, or +1.
func CompareInvariants(a, b Invariants, tol float64) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	if cmp := compareFloats(a.distances, b.distances, tol); cmp != 0 {
		return cmp
	}
	return compareFloats(a.phenomenal, b.phenomenal, tol)
}

func compareFloats(a, b []float64, tol float64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		d := a[i] - b[i]
		if d < -tol {
			return -1
		}
		if d > tol {
			return 1
		}
	}
	return 0
}

func pairDistances(c IntegralCluster, p *prim.Prim) []float64 {
	var out []float64
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			out = append(out, SiteDistance(p, c[i], c[j]))
		}
	}
	sort.Float64s(out)
	return out
}

// clusterPair is one entry of the branch sets: invariants paired with the
// canonical cluster they summarise.
type clusterPair struct {
	inv   Invariants
	clust IntegralCluster
}

// clusterSet is an ordered set of clusterPair, ordered by invariants at
// tolerance then by the cluster total order. Equal entries collapse.
type clusterSet struct {
	tol   float64
	pairs []clusterPair
}

func newClusterSet(tol float64) *clusterSet {
	return &clusterSet{tol: tol}
}

func (s *clusterSet) compare(a, b clusterPair) int {
	if cmp := CompareInvariants(a.inv, b.inv, s.tol); cmp != 0 {
		return cmp
	}
	return a.clust.Compare(b.clust)
}

func (s *clusterSet) insert(inv Invariants, c IntegralCluster) {
	pair := clusterPair{inv: inv, clust: c}
	ix := sort.Search(len(s.pairs), func(i int) bool { return s.compare(s.pairs[i], pair) >= 0 })
	if ix < len(s.pairs) && s.compare(s.pairs[ix], pair) == 0 {
		return
	}
	s.pairs = append(s.pairs, clusterPair{})
	copy(s.pairs[ix+1:], s.pairs[ix:])
	s.pairs[ix] = pair
}

func (s *clusterSet) merge(o *clusterSet) {
	for _, pair := range o.pairs {
		s.insert(pair.inv, pair.clust)
	}
}

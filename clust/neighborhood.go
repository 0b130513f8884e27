package clust

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/prim"
)

// SiteFilter selects which sublattices participate in cluster generation.
type SiteFilter func(p *prim.Prim, sublattice int) bool

// AllSitesFilter admits every sublattice.
func AllSitesFilter() SiteFilter {
	return func(*prim.Prim, int) bool { return true }
}

// CandidateSitesFunc generates the candidate sites for one orbit branch.
type CandidateSitesFunc func(p *prim.Prim, filter SiteFilter) []cell.UnitCellCoord

// ClusterFilterFunc selects which clusters a branch admits.
type ClusterFilterFunc func(p *prim.Prim, inv Invariants, c IntegralCluster) bool

// AllClustersFilter admits every cluster.
func AllClustersFilter() ClusterFilterFunc {
	return func(*prim.Prim, Invariants, IntegralCluster) bool { return true }
}

// MaxLengthClusterFilter admits clusters whose largest pairwise distance is
// at most maxLength (at the prim lattice tolerance). Clusters with fewer
// than two sites always pass.
func MaxLengthClusterFilter(maxLength float64) ClusterFilterFunc {
	return func(p *prim.Prim, inv Invariants, c IntegralCluster) bool {
		return c.Size() < 2 || inv.MaxLength() <= maxLength+p.Lattice().Tol()
	}
}

// OriginNeighborhood generates the filtered sites of the origin unit cell.
func OriginNeighborhood() CandidateSitesFunc {
	return func(p *prim.Prim, filter SiteFilter) []cell.UnitCellCoord {
		var sites []cell.UnitCellCoord
		for b := 0; b < p.NSublattice(); b++ {
			if filter(p, b) {
				sites = append(sites, cell.NewCoord(b, 0, 0, 0))
			}
		}
		return sites
	}
}

// MaxLengthNeighborhood generates every filtered site within maxLength of
// some site of the origin unit cell, ordered by (b, i, j, k).
func MaxLengthNeighborhood(maxLength float64) CandidateSitesFunc {
	return func(p *prim.Prim, filter SiteFilter) []cell.UnitCellCoord {
		var refs []*mat.VecDense
		for b := 0; b < p.NSublattice(); b++ {
			refs = append(refs, SiteCart(p, cell.NewCoord(b, 0, 0, 0)))
		}
		return ballSites(p, filter, refs, maxLength, nil)
	}
}

// CutoffRadiusNeighborhood generates every filtered site within
// cutoffRadius of some phenomenal site, ordered by (b, i, j, k). Phenomenal
// sites themselves are excluded unless includePhenomenalSites is set.
func CutoffRadiusNeighborhood(phenomenal IntegralCluster, cutoffRadius float64, includePhenomenalSites bool) CandidateSitesFunc {
	return func(p *prim.Prim, filter SiteFilter) []cell.UnitCellCoord {
		var refs []*mat.VecDense
		for _, site := range phenomenal {
			refs = append(refs, SiteCart(p, site))
		}
		var exclude IntegralCluster
		if !includePhenomenalSites {
			exclude = phenomenal
		}
		return ballSites(p, filter, refs, cutoffRadius, exclude)
	}
}

// ballSites enumerates the filtered sites within radius of any reference
// point, minus the excluded sites, sorted by (b, i, j, k).
func ballSites(p *prim.Prim, filter SiteFilter, refs []*mat.VecDense, radius float64, exclude IntegralCluster) []cell.UnitCellCoord {
	if len(refs) == 0 || radius < 0 {
		return nil
	}
	tol := p.Lattice().Tol()
	lo, hi := fracBounds(p, refs, radius)

	var sites []cell.UnitCellCoord
	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				for b := 0; b < p.NSublattice(); b++ {
					if !filter(p, b) {
						continue
					}
					coord := cell.NewCoord(b, i, j, k)
					if exclude.Contains(coord) {
						continue
					}
					x := SiteCart(p, coord)
					for _, ref := range refs {
						if vecDistance(x, ref) <= radius+tol {
							sites = append(sites, coord)
							break
						}
					}
				}
			}
		}
	}
	sort.Slice(sites, func(a, b int) bool { return sites[a].Compare(sites[b]) < 0 })
	return sites
}

// fracBounds computes an integer bounding box of unit cells that covers the
// union of balls of the given radius around the reference points, with one
// cell of slack for the basis offsets.
func fracBounds(p *prim.Prim, refs []*mat.VecDense, radius float64) (lo, hi [3]int) {
	linv := p.Lattice().InverseMatrix()

	// row norms of L⁻¹ convert a cartesian radius into per-axis fractional
	// extents
	var rowNorm [3]float64
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += linv.At(i, j) * linv.At(i, j)
		}
		rowNorm[i] = math.Sqrt(sum)
	}

	for i := 0; i < 3; i++ {
		lo[i] = math.MaxInt32
		hi[i] = math.MinInt32
	}
	for _, ref := range refs {
		var f mat.VecDense
		f.MulVec(linv, ref)
		for i := 0; i < 3; i++ {
			extent := rowNorm[i]*radius + 1
			if l := int(math.Floor(f.AtVec(i) - extent)); l < lo[i] {
				lo[i] = l
			}
			if h := int(math.Ceil(f.AtVec(i) + extent)); h > hi[i] {
				hi[i] = h
			}
		}
	}
	return lo, hi
}

// SiteCart returns the cartesian position of an integral site coordinate:
// L·(u + frac_b).
func SiteCart(p *prim.Prim, c cell.UnitCellCoord) *mat.VecDense {
	frac := p.Basis()[c.Sublattice].Frac()
	v := mat.NewVecDense(3, []float64{
		float64(c.Cell[0]) + frac[0],
		float64(c.Cell[1]) + frac[1],
		float64(c.Cell[2]) + frac[2],
	})
	return p.Lattice().FracToCart(v)
}

// SiteDistance returns the cartesian distance between two integral sites.
func SiteDistance(p *prim.Prim, a, b cell.UnitCellCoord) float64 {
	return vecDistance(SiteCart(p, a), SiteCart(p, b))
}

func vecDistance(a, b *mat.VecDense) float64 {
	var d mat.VecDense
	d.SubVec(a, b)
	return mat.Norm(&d, 2)
}

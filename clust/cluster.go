package clust

import (
	"sort"

	"github.com/katalvlaran/crysym/cell"
)

// IntegralCluster is an ordered sequence of integral site coordinates.
// The zero value is the null (empty) cluster.
type IntegralCluster []cell.UnitCellCoord

// NewCluster builds a cluster from site coordinates, in the given order.
func NewCluster(sites ...cell.UnitCellCoord) IntegralCluster {
	return append(IntegralCluster(nil), sites...)
}

// Size returns the number of sites.
func (c IntegralCluster) Size() int { return len(c) }

// Copy returns an independent copy of the cluster.
func (c IntegralCluster) Copy() IntegralCluster {
	return append(IntegralCluster(nil), c...)
}

// Sort orders the elements ascending on (b, i, j, k), in place.
func (c IntegralCluster) Sort() {
	sort.Slice(c, func(a, b int) bool { return c[a].Compare(c[b]) < 0 })
}

// Translate shifts every element's unit cell by u, in place.
func (c IntegralCluster) Translate(u cell.UnitCell) {
	for i := range c {
		c[i] = c[i].Translate(u)
	}
}

// Contains reports whether the cluster already holds the given site.
func (c IntegralCluster) Contains(site cell.UnitCellCoord) bool {
	for _, s := range c {
		if s == site {
			return true
		}
	}
	return false
}

// Compare is the deterministic total order on clusters: size first, then
// lexicographic over the sorted element sequences. Both sides are sorted
// before comparison; the receivers are not modified.
func (c IntegralCluster) Compare(d IntegralCluster) int {
	if len(c) != len(d) {
		if len(c) < len(d) {
			return -1
		}
		return 1
	}
	a := c.Copy()
	b := d.Copy()
	a.Sort()
	b.Sort()
	for i := range a {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// Equal reports elementwise equality after both sides are sorted.
func (c IntegralCluster) Equal(d IntegralCluster) bool { return c.Compare(d) == 0 }

// Less is the comparison function form of Compare, for the generic orbit
// algorithms.
func Less(a, b IntegralCluster) bool { return a.Compare(b) < 0 }

// Apply transforms every element by the symmetry operation, in place.
func Apply(op cell.Rep, c IntegralCluster) {
	for i := range c {
		c[i] = op.Apply(c[i])
	}
}

// CopyApply returns a transformed copy of the cluster.
func CopyApply(op cell.Rep, c IntegralCluster) IntegralCluster {
	out := c.Copy()
	Apply(op, out)
	return out
}

package prim

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/lattice"
)

// Sentinel errors for prim construction and representation building.
var (
	// ErrEmptyBasis indicates a basis with no sites.
	ErrEmptyBasis = errors.New("prim: basis must contain at least one site")

	// ErrNotASymmetry indicates an operation that does not map the
	// structure onto itself.
	ErrNotASymmetry = errors.New("prim: operation is not a symmetry of the structure")
)

// Site is one basis site of a primitive structure: fractional coordinates
// within the unit cell and the list of allowed occupants.
type Site struct {
	frac      [3]float64
	occupants []string
}

// NewSite creates a Site at fractional coordinates frac with the given
// allowed occupants.
func NewSite(frac [3]float64, occupants ...string) Site {
	return Site{frac: frac, occupants: append([]string(nil), occupants...)}
}

// Frac returns the fractional coordinates of the site.
func (s Site) Frac() [3]float64 { return s.frac }

// Occupants returns a copy of the allowed occupant list.
func (s Site) Occupants() []string { return append([]string(nil), s.occupants...) }

// occupantKey is the order-insensitive identity of an occupant list; two
// sites can map onto each other under symmetry only if their keys agree.
func (s Site) occupantKey() string {
	sorted := append([]string(nil), s.occupants...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

// Prim is an immutable primitive crystal structure with its symmetry.
type Prim struct {
	lat         *lattice.Lattice
	basis       []Site
	factorGroup *group.SymGroup
	pointGroup  *group.SymGroup
	basisRep    []cell.Rep
}

// New creates a Prim and generates its factor group, point group, and basis
// representation. The element order of both groups is fixed at construction
// and is part of the contract: canonical-form operators tie-break on "first
// matching operation".
func New(lat *lattice.Lattice, basis []Site) (*Prim, error) {
	if len(basis) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyBasis)
	}
	p := &Prim{lat: lat, basis: append([]Site(nil), basis...)}

	elements := p.makeFactorGroupElements()
	p.factorGroup = group.NewRootGroup(elements)
	p.pointGroup = group.NewRootGroup(distinctRotations(elements, lat.Tol()))

	p.basisRep = make([]cell.Rep, 0, len(elements))
	for i, op := range elements {
		rep, err := p.MakeRep(op)
		if err != nil {
			// every factor-group element maps the basis onto itself
			panic(fmt.Sprintf("prim: factor group element %d has no site representation: %v", i, err))
		}
		p.basisRep = append(p.basisRep, rep)
	}
	return p, nil
}

// Lattice returns the primitive lattice.
func (p *Prim) Lattice() *lattice.Lattice { return p.lat }

// Basis returns a copy of the basis.
func (p *Prim) Basis() []Site { return append([]Site(nil), p.basis...) }

// NSublattice returns the number of basis sites.
func (p *Prim) NSublattice() int { return len(p.basis) }

// FactorGroup returns the factor group as a root SymGroup.
func (p *Prim) FactorGroup() *group.SymGroup { return p.factorGroup }

// PointGroup returns the point group (distinct rotation parts of the factor
// group, with zero translations) as a root SymGroup.
func (p *Prim) PointGroup() *group.SymGroup { return p.pointGroup }

// BasisRep returns the integral site representation: one cell.Rep per
// factor-group element, in factor-group order.
func (p *Prim) BasisRep() []cell.Rep { return append([]cell.Rep(nil), p.basisRep...) }

// FactorGroupTables computes the multiplication and inverse tables of the
// factor group, matching products modulo lattice translations.
func (p *Prim) FactorGroupTables() (mult [][]int, inv []int, err error) {
	return p.factorGroup.MultiplicationTable(lattice.EqualModLattice(p.lat))
}

// makeFactorGroupElements combines every lattice point-group operation with
// each fractional translation that maps the basis onto itself, reduced to
// the unit cell.
func (p *Prim) makeFactorGroupElements() []lattice.SymOp {
	tol := p.lat.Tol()
	pg := lattice.MakePointGroup(p.lat)
	key0 := p.basis[0].occupantKey()

	var elements []lattice.SymOp
	for _, op := range pg {
		w, ok := p.fracPointMatrix(op)
		if !ok {
			// point-group operations are integer in fractional coordinates
			panic("prim: point group operation has non-integer fractional matrix")
		}

		// candidate translations: image of site 0 onto any compatible site
		var candidates [][3]float64
		img0 := mulIntMatVec(w, p.basis[0].frac)
		for _, site := range p.basis {
			if site.occupantKey() != key0 {
				continue
			}
			tau := [3]float64{}
			for i := 0; i < 3; i++ {
				tau[i] = reduceFrac(site.frac[i]-img0[i], tol)
			}
			dup := false
			for _, seen := range candidates {
				if fracEqual(seen, tau, tol) {
					dup = true
					break
				}
			}
			if !dup {
				candidates = append(candidates, tau)
			}
		}

		for _, tau := range candidates {
			if !p.mapsBasis(w, tau, tol) {
				continue
			}
			cart := p.lat.FracToCart(mat.NewVecDense(3, []float64{tau[0], tau[1], tau[2]}))
			elements = append(elements, lattice.NewSymOp(op.Rotation(), cart, false))
		}
	}
	return elements
}

// mapsBasis reports whether (W, τ) maps every basis site onto a compatible
// basis site modulo lattice translations.
func (p *Prim) mapsBasis(w [3][3]int, tau [3]float64, tol float64) bool {
	for _, site := range p.basis {
		x := mulIntMatVec(w, site.frac)
		for i := 0; i < 3; i++ {
			x[i] += tau[i]
		}
		if b, _ := p.matchSite(x, site.occupantKey(), tol); b < 0 {
			return false
		}
	}
	return true
}

// matchSite finds the basis site b with matching occupants such that
// x - frac(b) is integral, returning b and the integral shift.
// Returns b = -1 if no site matches.
func (p *Prim) matchSite(x [3]float64, key string, tol float64) (int, cell.UnitCell) {
	for b, site := range p.basis {
		if site.occupantKey() != key {
			continue
		}
		var shift cell.UnitCell
		ok := true
		for i := 0; i < 3; i++ {
			d := x[i] - site.frac[i]
			n := math.Round(d)
			if math.Abs(d-n) > tol {
				ok = false
				break
			}
			shift[i] = int(n)
		}
		if ok {
			return b, shift
		}
	}
	return -1, cell.UnitCell{}
}

// MakeRep converts a symmetry operation into its action on integral site
// coordinates. Returns ErrNotASymmetry if the operation's fractional matrix
// is not integral or some basis site has no image.
func (p *Prim) MakeRep(op lattice.SymOp) (cell.Rep, error) {
	tol := p.lat.Tol()
	w, ok := p.fracPointMatrix(op)
	if !ok {
		return cell.Rep{}, fmt.Errorf("MakeRep: non-integer point matrix: %w", ErrNotASymmetry)
	}
	tauVec := p.lat.CartToFrac(op.Translation())
	tau := [3]float64{tauVec.AtVec(0), tauVec.AtVec(1), tauVec.AtVec(2)}

	rep := cell.Rep{
		PointMatrix: w,
		Sublattice:  make([]int, len(p.basis)),
		Translation: make([]cell.UnitCell, len(p.basis)),
	}
	for b, site := range p.basis {
		x := mulIntMatVec(w, site.frac)
		for i := 0; i < 3; i++ {
			x[i] += tau[i]
		}
		target, shift := p.matchSite(x, site.occupantKey(), tol)
		if target < 0 {
			return cell.Rep{}, fmt.Errorf("MakeRep: sublattice %d has no image: %w", b, ErrNotASymmetry)
		}
		rep.Sublattice[b] = target
		rep.Translation[b] = shift
	}
	return rep, nil
}

// MakeGroupRep builds the site representation of an arbitrary operation
// list, in order. Used to derive local-orbit representations from cluster
// groups.
func (p *Prim) MakeGroupRep(g *group.SymGroup) ([]cell.Rep, error) {
	reps := make([]cell.Rep, 0, g.Size())
	for i := 0; i < g.Size(); i++ {
		rep, err := p.MakeRep(g.Element(i))
		if err != nil {
			return nil, fmt.Errorf("MakeGroupRep: element %d: %w", i, err)
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

// fracPointMatrix computes W = round(L⁻¹·R·L) and reports whether R is
// integral in fractional coordinates at the lattice tolerance.
func (p *Prim) fracPointMatrix(op lattice.SymOp) ([3][3]int, bool) {
	var m mat.Dense
	m.Mul(p.lat.InverseMatrix(), op.Rotation())
	m.Mul(&m, p.lat.ColumnMatrix())
	var w [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := m.At(i, j)
			n := math.Round(v)
			if math.Abs(v-n) > p.lat.Tol() {
				return w, false
			}
			w[i][j] = int(n)
		}
	}
	return w, true
}

// distinctRotations extracts the distinct rotation parts as zero-translation
// operations, preserving first-seen order.
func distinctRotations(elements []lattice.SymOp, tol float64) []lattice.SymOp {
	var out []lattice.SymOp
	for _, e := range elements {
		rot := lattice.NewSymOp(e.Rotation(), nil, e.TimeReversal())
		dup := false
		for _, seen := range out {
			if lattice.OpEqual(rot, seen, tol) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, rot)
		}
	}
	return out
}

// mulIntMatVec multiplies an integer matrix by a fractional vector.
func mulIntMatVec(m [3][3]int, v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}
	return out
}

// reduceFrac brings a fractional component into [0, 1), snapping values
// within tol of 1 back to 0.
func reduceFrac(v, tol float64) float64 {
	v -= math.Floor(v)
	if v > 1-tol {
		v = 0
	}
	return v
}

// fracEqual compares fractional 3-vectors componentwise modulo 1.
func fracEqual(a, b [3]float64, tol float64) bool {
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		if math.Abs(d-math.Round(d)) > tol {
			return false
		}
	}
	return true
}

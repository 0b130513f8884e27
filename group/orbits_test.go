package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysym/group"
)

func matVec(x, y, z float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{x, y, z})
}

// The toy action for the generic algorithms: the cyclic group Z4 rotating
// vertex labels of a square, acting on unordered diagonal pairs.

type pair [2]int

func normalizePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

func rotatePair(k int, p pair) pair {
	return normalizePair((p[0]+k)%4, (p[1]+k)%4)
}

func lessPair(a, b pair) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

var z4 = []int{0, 1, 2, 3}

// TestMakeOrbit verifies ordered-set closure with duplicate collapse.
func TestMakeOrbit(t *testing.T) {
	orbit := group.MakeOrbit(pair{0, 2}, z4, lessPair, rotatePair)
	assert.Equal(t, []pair{{0, 2}, {1, 3}}, orbit, "diagonals form a two-element orbit, ascending")
}

// TestMakeCanonicalElement verifies the smallest-image rule.
func TestMakeCanonicalElement(t *testing.T) {
	canonical := group.MakeCanonicalElement(pair{1, 3}, z4, lessPair, rotatePair)
	assert.Equal(t, pair{0, 2}, canonical)

	assert.Panics(t, func() {
		group.MakeCanonicalElement(pair{1, 3}, nil, lessPair, rotatePair)
	}, "empty representation is a programmer error")
}

// TestMakeEquivalenceMap verifies the partition of group elements over orbit
// elements.
func TestMakeEquivalenceMap(t *testing.T) {
	orbit := group.MakeOrbit(pair{0, 2}, z4, lessPair, rotatePair)
	eqMap := group.MakeEquivalenceMap(orbit, z4, lessPair, rotatePair)

	require.Len(t, eqMap, 2)
	assert.Equal(t, []int{0, 2}, eqMap[0], "identity and half-turn fix the first diagonal")
	assert.Equal(t, []int{1, 3}, eqMap[1], "quarter-turns map it to the other diagonal")

	total := 0
	for _, coset := range eqMap {
		total += len(coset)
	}
	assert.Equal(t, len(z4), total, "the cosets partition the group")
}

// TestMakeInvariantSubgroups verifies stabilisers via the Z4 multiplication
// table.
func TestMakeInvariantSubgroups(t *testing.T) {
	orbit := group.MakeOrbit(pair{0, 2}, z4, lessPair, rotatePair)
	eqMap := group.MakeEquivalenceMap(orbit, z4, lessPair, rotatePair)

	mult := make([][]int, 4)
	inv := make([]int, 4)
	for a := 0; a < 4; a++ {
		mult[a] = make([]int, 4)
		for b := 0; b < 4; b++ {
			mult[a][b] = (a + b) % 4
		}
		inv[a] = (4 - a) % 4
	}

	subs := group.MakeInvariantSubgroups(eqMap, mult, inv)
	require.Len(t, subs, 2)
	assert.Equal(t, group.SubgroupIndices{0, 2}, subs[0], "stabiliser of the first diagonal")
	assert.Equal(t, group.SubgroupIndices{0, 2}, subs[1], "conjugate stabiliser has the same size")

	// defining property: each stabiliser element fixes its orbit element
	for i, sub := range subs {
		for _, j := range sub {
			assert.Equal(t, orbit[i], rotatePair(z4[j], orbit[i]),
				"op %d must fix orbit element %d", j, i)
		}
	}
}

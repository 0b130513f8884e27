package group

import (
	"fmt"
	"sort"
)

// MakeOrbit closes {copyApply(op, seed) : op ∈ reps} under the total order
// given by less, returning an ascending ordered set. Elements comparing
// equal (neither less) are collapsed.
func MakeOrbit[E, R any](seed E, reps []R, less func(a, b E) bool, copyApply func(op R, e E) E) []E {
	var orbit []E
	for _, op := range reps {
		e := copyApply(op, seed)
		ix := sort.Search(len(orbit), func(i int) bool { return !less(orbit[i], e) })
		if ix < len(orbit) && !less(e, orbit[ix]) {
			continue // already present
		}
		orbit = append(orbit, e)
		copy(orbit[ix+1:], orbit[ix:])
		orbit[ix] = e
	}
	return orbit
}

// MakeCanonicalElement returns the smallest copyApply(op, e) over reps under
// less: the canonical representative of e's equivalence class.
// Panics on an empty reps list (programmer error).
func MakeCanonicalElement[E, R any](e E, reps []R, less func(a, b E) bool, copyApply func(op R, e E) E) E {
	if len(reps) == 0 {
		panic("group: MakeCanonicalElement: empty representation")
	}
	best := copyApply(reps[0], e)
	for _, op := range reps[1:] {
		if c := copyApply(op, e); less(c, best) {
			best = c
		}
	}
	return best
}

// MakeEquivalenceMap lists, for each orbit element i (in orbit order), every
// j with copyApply(reps[j], orbit[0]) equal to orbit[i]. Together the lists
// partition {0, …, |reps|-1}.
// Panics if some rep maps orbit[0] outside the orbit (caller-supplied
// inconsistency surfacing as programmer error).
func MakeEquivalenceMap[E, R any](orbit []E, reps []R, less func(a, b E) bool, copyApply func(op R, e E) E) [][]int {
	eqMap := make([][]int, len(orbit))
	if len(orbit) == 0 {
		return eqMap
	}
	for j, op := range reps {
		e := copyApply(op, orbit[0])
		ix := sort.Search(len(orbit), func(i int) bool { return !less(orbit[i], e) })
		if ix == len(orbit) || less(e, orbit[ix]) {
			panic(fmt.Sprintf("group: MakeEquivalenceMap: rep %d maps the prototype outside the orbit", j))
		}
		eqMap[ix] = append(eqMap[ix], j)
	}
	return eqMap
}

// MakeInvariantSubgroups returns, for each orbit element, the subgroup of
// parent-group indices that leave the element invariant, derived from the
// equivalence map and the group algebra: for a coset {j : g_j·e₀ = e_i},
// the stabiliser of e_i is {mult(j, inv(coset[0])) : j ∈ coset}.
//
// mult and inv are the tables of the full parent group (see
// SymGroup.MultiplicationTable).
func MakeInvariantSubgroups(eqMap [][]int, mult [][]int, inv []int) []SubgroupIndices {
	subgroups := make([]SubgroupIndices, 0, len(eqMap))
	for _, coset := range eqMap {
		sub := make(SubgroupIndices, 0, len(coset))
		if len(coset) > 0 {
			invFirst := inv[coset[0]]
			for _, j := range coset {
				sub = append(sub, mult[j][invFirst])
			}
			sort.Ints(sub)
		}
		subgroups = append(subgroups, sub)
	}
	return subgroups
}

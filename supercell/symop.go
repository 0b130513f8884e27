package supercell

import (
	"fmt"

	"github.com/katalvlaran/crysym/group"
)

// SupercellSymOp is one element of the supercell symmetry: a factor-group
// operation followed by an internal lattice translation. The combined site
// permutation is fixed at construction.
type SupercellSymOp struct {
	info             *SupercellSymInfo
	factorGroupIndex int
	translationIndex int
	perm             group.Permutation
}

// NewSupercellSymOp pairs factor-group operation factorGroupIndex with
// internal translation translationIndex. Panics on out-of-range indices
// (programmer error).
func NewSupercellSymOp(info *SupercellSymInfo, factorGroupIndex, translationIndex int) SupercellSymOp {
	if factorGroupIndex < 0 || factorGroupIndex >= len(info.factorGroupPermutations) {
		panic(fmt.Sprintf("supercell: factor group index %d of %d",
			factorGroupIndex, len(info.factorGroupPermutations)))
	}
	if translationIndex < 0 || translationIndex >= len(info.translationPermutations) {
		panic(fmt.Sprintf("supercell: translation index %d of %d",
			translationIndex, len(info.translationPermutations)))
	}
	// factor-group operation first, then the translation:
	// combined[new] = fgPerm[transPerm[new]]
	perm := group.Compose(
		info.translationPermutations[translationIndex],
		info.factorGroupPermutations[factorGroupIndex],
	)
	return SupercellSymOp{
		info:             info,
		factorGroupIndex: factorGroupIndex,
		translationIndex: translationIndex,
		perm:             perm,
	}
}

// FactorGroupIndex returns the index into the supercell factor group.
func (op SupercellSymOp) FactorGroupIndex() int { return op.factorGroupIndex }

// TranslationIndex returns the internal translation index.
func (op SupercellSymOp) TranslationIndex() int { return op.translationIndex }

// Permutation returns the combined site permutation. Read-only.
func (op SupercellSymOp) Permutation() group.Permutation { return op.perm }

// PermuteIndex returns the source site index whose value the operation
// moves into position s (the perm[new] = old convention).
func (op SupercellSymOp) PermuteIndex(s int) int { return op.perm[s] }

// SiteIndicesAreInvariant reports whether the operation maps the given site
// set into itself: no site leaves or enters. Applying the operation moves
// the value from PermuteIndex(s) to s, so the set is invariant iff every
// PermuteIndex(s) stays inside it.
func SiteIndicesAreInvariant(op SupercellSymOp, siteIndices map[int]struct{}) bool {
	for s := range siteIndices {
		if _, ok := siteIndices[op.PermuteIndex(s)]; !ok {
			return false
		}
	}
	return true
}

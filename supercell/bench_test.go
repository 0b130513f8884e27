package supercell_test

import (
	"testing"

	"github.com/katalvlaran/crysym/supercell"
)

// BenchmarkMakeTranslationPermutations measures the O(N²·B) permutation
// table construction on a 3×3×3 supercell.
func BenchmarkMakeTranslationPermutations(b *testing.B) {
	shape := [3][3]int{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}
	bijk, err := supercell.NewUnitCellCoordIndexConverter(shape, 1)
	if err != nil {
		b.Fatal(err)
	}
	ijk := bijk.UnitCellConverter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		supercell.MakeTranslationPermutations(ijk, bijk)
	}
}

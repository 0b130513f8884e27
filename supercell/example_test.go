package supercell_test

import (
	"fmt"

	"github.com/katalvlaran/crysym/cell"
	"github.com/katalvlaran/crysym/supercell"
)

// ExampleUnitCellIndexConverter demonstrates periodic reduction: any
// integer tuple maps into the supercell before lookup.
func ExampleUnitCellIndexConverter() {
	conv, _ := supercell.NewUnitCellIndexConverter([3][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}})

	fmt.Println(conv.TotalUnitCells())
	fmt.Println(conv.Within(cell.UnitCell{3, -1, 2}))
	fmt.Println(conv.Index(cell.UnitCell{3, -1, 2}) == conv.Index(cell.UnitCell{1, 1, 0}))
	// Output:
	// 4
	// [1 1 0]
	// true
}

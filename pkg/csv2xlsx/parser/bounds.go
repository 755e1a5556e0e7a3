package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// bounds is the bounding box of written cells, zero-based and inclusive.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func newBounds() bounds {
	return bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}
}

// add extends the box to include (row, col).
func (b *bounds) add(row, col int) {
	if b.minRow < 0 || row < b.minRow {
		b.minRow = row
	}
	if b.maxRow < 0 || row > b.maxRow {
		b.maxRow = row
	}
	if b.minCol < 0 || col < b.minCol {
		b.minCol = col
	}
	if b.maxCol < 0 || col > b.maxCol {
		b.maxCol = col
	}
}

func (b bounds) empty() bool {
	return b.minRow < 0
}

// columns is the number of columns from A up to the rightmost written cell.
func (b bounds) columns() int {
	if b.empty() {
		return 0
	}
	return b.maxCol + 1
}

// rangeRef returns the box in A1 notation, e.g. "A1:D10".
func (b bounds) rangeRef() string {
	if b.empty() {
		return ""
	}
	startCell, err := excelize.CoordinatesToCellName(b.minCol+1, b.minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(b.maxCol+1, b.maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// Package parser reads CSV sources and transcribes them into worksheets.
package parser

import "github.com/xuri/excelize/v2"

// Sheet dimension ceilings of the xlsx format.
const (
	// MaxRows is the number of rows a worksheet can hold.
	MaxRows = excelize.TotalRows
	// MaxColumns is the number of columns a worksheet can hold.
	MaxColumns = excelize.MaxColumns
)

// limits bounds one transcription. Tests shrink it; callers always get the format ceilings.
type limits struct {
	rows    int
	columns int
}

var defaultLimits = limits{rows: MaxRows, columns: MaxColumns}

// exceeded reports whether counter has reached max.
func exceeded(counter, max int) bool {
	return counter >= max
}

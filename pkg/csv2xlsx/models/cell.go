// Package models defines data structures for CSV to workbook conversion.
package models

// CellKind identifies which variant a CellValue holds.
type CellKind int

const (
	// CellEmpty means no cell is written.
	CellEmpty CellKind = iota
	// CellNumber holds a float64 value.
	CellNumber
	// CellText holds the original field text.
	CellText
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "empty"
	}
}

// CellValue is a classified CSV field.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Empty returns a CellValue that produces no cell.
func Empty() CellValue {
	return CellValue{Kind: CellEmpty}
}

// Number returns a numeric CellValue.
func Number(v float64) CellValue {
	return CellValue{Kind: CellNumber, Number: v}
}

// Text returns a text CellValue.
func Text(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// IsEmpty reports whether the value produces no cell.
func (v CellValue) IsEmpty() bool {
	return v.Kind == CellEmpty
}

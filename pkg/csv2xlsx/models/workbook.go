package models

// WorkbookSummary describes a saved workbook.
type WorkbookSummary struct {
	// Path is the output file path.
	Path string `json:"path"`
	// Sheets lists the worksheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

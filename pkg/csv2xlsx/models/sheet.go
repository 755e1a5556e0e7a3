package models

// SheetDescriptor names one CSV source and the worksheet it becomes.
type SheetDescriptor struct {
	// Path is the CSV file to read.
	Path string `json:"path" toml:"path"`
	// Name is the worksheet name.
	Name string `json:"name" toml:"name"`
	// TabColor is a color name or RGB hex string. Empty leaves the tab uncolored.
	TabColor string `json:"tab_color,omitempty" toml:"tab_color,omitempty"`
}

// SheetSummary reports what was written into one worksheet.
type SheetSummary struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows is the number of rows processed, header included.
	Rows int `json:"rows"`
	// Columns is the widest column count written.
	Columns int `json:"columns"`
	// Range is the A1 range covering the written cells, empty if none.
	Range string `json:"range,omitempty"`
	// RowsTruncated is set when the row limit cut the source short.
	RowsTruncated bool `json:"rows_truncated,omitempty"`
	// ColumnsTruncated is set when any record was cut at the column limit.
	ColumnsTruncated bool `json:"columns_truncated,omitempty"`
}

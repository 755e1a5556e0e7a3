package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ErrTextTooLong indicates a text cell longer than a cell can hold.
var ErrTextTooLong = errors.New("text exceeds cell limit")

// Worksheet is the target of a transcription.
// Coordinates are zero-based.
type Worksheet interface {
	SetName(name string) error
	// SetTabColor takes an RRGGBB hex string.
	SetTabColor(rgb string) error
	SetNumber(row, col int, v float64) error
	SetText(row, col int, s string) error
}

// ExcelSheet is a Worksheet backed by one sheet of an excelize workbook.
type ExcelSheet struct {
	f    *excelize.File
	name string
}

// NewExcelSheet wraps the existing sheet called name in f.
func NewExcelSheet(f *excelize.File, name string) *ExcelSheet {
	return &ExcelSheet{f: f, name: name}
}

// Name returns the current sheet name.
func (s *ExcelSheet) Name() string {
	return s.name
}

// SetName renames the sheet. Names follow the workbook rules
// (at most 31 characters, none of : \ / ? * [ ]).
func (s *ExcelSheet) SetName(name string) error {
	if name == s.name {
		return nil
	}
	if err := s.f.SetSheetName(s.name, name); err != nil {
		return err
	}
	s.name = name
	return nil
}

// SetTabColor stores rgb as opaque ARGB.
func (s *ExcelSheet) SetTabColor(rgb string) error {
	argb := "FF" + rgb
	return s.f.SetSheetProps(s.name, &excelize.SheetPropsOptions{TabColorRGB: &argb})
}

func (s *ExcelSheet) SetNumber(row, col int, v float64) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.f.SetCellFloat(s.name, cell, v, -1, 64)
}

// SetText writes a text cell. Text longer than excelize.TotalCellChars
// characters is rejected rather than cut.
func (s *ExcelSheet) SetText(row, col int, str string) error {
	if n := utf8.RuneCountInString(str); n > excelize.TotalCellChars {
		return fmt.Errorf("%w: %d characters, limit %d", ErrTextTooLong, n, excelize.TotalCellChars)
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.f.SetCellStr(s.name, cell, str)
}

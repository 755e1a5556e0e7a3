package csv2xlsx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/parser"
	"github.com/xuri/excelize/v2"
)

// Build converts each descriptor's CSV into a worksheet, in order, and saves
// the workbook to outputPath. The first failure aborts the whole conversion
// and leaves outputPath untouched.
func Build(descriptors []models.SheetDescriptor, outputPath string, opts Options) (*models.WorkbookSummary, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoSheets
	}
	if outputPath == "" {
		return nil, ErrNoOutput
	}
	names, err := sheetNames(descriptors)
	if err != nil {
		return nil, err
	}
	log := opts.logger()

	// One workbook for the whole call; every sheet is written into it
	f := excelize.NewFile()
	defer f.Close()

	book := &workbook{f: f, reserved: names}
	result := &models.WorkbookSummary{Path: outputPath}

	// Transcribe in order, stopping at the first failure
	for i, d := range descriptors {
		ws, err := book.addWorksheet(i)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", d.Name, err)
		}
		meta := parser.SheetMeta{Name: d.Name, TabColor: d.TabColor}
		sheet, err := parser.TranscribeFile(d.Path, ws, meta, log)
		if err != nil {
			return nil, sourceError(d, err)
		}
		log.WithField("sheet", sheet.Name).Debugf("wrote %d rows, %d columns %s", sheet.Rows, sheet.Columns, sheet.Range)
		result.Sheets = append(result.Sheets, sheet)
	}
	f.SetActiveSheet(0)

	// Save only after every sheet succeeded
	if err := save(f, outputPath); err != nil {
		return nil, NewSaveError(outputPath, err)
	}
	log.Infof("workbook saved at: %s", outputPath)
	return result, nil
}

// sheetNames returns the lower-cased descriptor names, rejecting duplicates.
func sheetNames(descriptors []models.SheetDescriptor) (map[string]bool, error) {
	names := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		key := strings.ToLower(d.Name)
		if names[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, d.Name)
		}
		names[key] = true
	}
	return names, nil
}

func sourceError(d models.SheetDescriptor, err error) error {
	var se *parser.SourceError
	if errors.As(err, &se) {
		switch se.Op {
		case parser.OpOpen:
			return &SourceOpenError{Sheet: d.Name, Path: d.Path, Err: se.Err}
		case parser.OpRead:
			return &SourceReadError{Sheet: d.Name, Path: d.Path, Err: se.Err}
		}
	}
	return fmt.Errorf("sheet %q: %w", d.Name, err)
}

// workbook hands out worksheets under placeholder names that the
// transcriber then renames.
type workbook struct {
	f        *excelize.File
	reserved map[string]bool
	next     int
}

// defaultSheet is the sheet every new excelize file starts with.
const defaultSheet = "Sheet1"

func (b *workbook) addWorksheet(index int) (*parser.ExcelSheet, error) {
	name := b.placeholder()
	if index == 0 {
		if err := b.f.SetSheetName(defaultSheet, name); err != nil {
			return nil, err
		}
		return parser.NewExcelSheet(b.f, name), nil
	}
	if _, err := b.f.NewSheet(name); err != nil {
		return nil, err
	}
	return parser.NewExcelSheet(b.f, name), nil
}

// placeholder returns a sheet name no descriptor uses.
func (b *workbook) placeholder() string {
	for {
		b.next++
		name := fmt.Sprintf("pending-%d", b.next)
		if !b.reserved[name] {
			return name
		}
	}
}

// save writes the workbook to a temp file beside path and renames it into
// place. path is untouched on failure.
func save(f *excelize.File, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return excelize.ErrWorkbookFileFormat
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".csv2xlsx-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

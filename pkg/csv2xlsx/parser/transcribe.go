package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SheetMeta is the display metadata applied to a worksheet.
type SheetMeta struct {
	Name     string
	TabColor string
}

// TranscribeFile opens the CSV at path and transcribes it into ws.
// The file is closed before returning.
func TranscribeFile(path string, ws Worksheet, meta SheetMeta, log logrus.FieldLogger) (models.SheetSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.SheetSummary{Name: meta.Name}, &SourceError{Op: OpOpen, Path: path, Err: err}
	}
	defer file.Close()

	summary, err := Transcribe(file, ws, meta, log)
	var se *SourceError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = path
	}
	return summary, err
}

// Transcribe reads CSV from r and writes it into ws: the first record as
// text header cells, the remaining records as classified cells.
// Content beyond MaxRows or MaxColumns is dropped with a warning.
func Transcribe(r io.Reader, ws Worksheet, meta SheetMeta, log logrus.FieldLogger) (models.SheetSummary, error) {
	return transcribe(r, ws, meta, log, defaultLimits)
}

// transcriber holds the state of one transcription.
type transcriber struct {
	ws      Worksheet
	log     logrus.FieldLogger
	lim     limits
	box     bounds
	summary models.SheetSummary
}

func transcribe(r io.Reader, ws Worksheet, meta SheetMeta, log logrus.FieldLogger, lim limits) (models.SheetSummary, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	t := &transcriber{
		ws:      ws,
		log:     log.WithField("sheet", meta.Name),
		lim:     lim,
		box:     newBounds(),
		summary: models.SheetSummary{Name: meta.Name},
	}
	t.log.Infof("importing %s...", meta.Name)

	// Name and color the sheet before any cell is written
	if err := ws.SetName(meta.Name); err != nil {
		return t.summary, fmt.Errorf("set sheet name %q: %w", meta.Name, err)
	}
	if meta.TabColor != "" {
		rgb, err := ParseTabColor(meta.TabColor)
		if err != nil {
			return t.summary, err
		}
		if err := ws.SetTabColor(rgb); err != nil {
			return t.summary, fmt.Errorf("set tab color %q: %w", meta.TabColor, err)
		}
	}

	err := t.run(newCSVReader(r))

	// Report the extent even on failure
	t.summary.Columns = t.box.columns()
	t.summary.Range = t.box.rangeRef()
	return t.summary, err
}

// newCSVReader returns a reader for comma-separated, RFC 4180 quoted input.
// Stray quotes are kept as field text instead of failing the record.
// A leading byte-order mark is consumed; a UTF-16 mark switches decoding.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

func (t *transcriber) run(cr *csv.Reader) error {
	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return &SourceError{Op: OpRead, Err: err}
	}
	row, err := t.writeHeader(header)
	if err != nil {
		return err
	}
	t.summary.Rows = row

	// Data records, one row each, until EOF or the row limit
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		// Checked only once another record exists, so an exact fit is not a cut
		if exceeded(row, t.lim.rows) {
			t.warnLimit("rows", t.lim.rows)
			t.summary.RowsTruncated = true
			return nil
		}
		if err != nil {
			return &SourceError{Op: OpRead, Err: err}
		}
		if err := t.writeRecord(row, record); err != nil {
			return err
		}
		row++
		t.summary.Rows = row
	}
}

// writeHeader writes header fields as text in row 0 and returns the next row index.
func (t *transcriber) writeHeader(header []string) (int, error) {
	next := 0
	for col, field := range header {
		if exceeded(col, t.lim.columns) {
			t.truncateColumns()
			break
		}
		next = 1
		if field == "" {
			continue
		}
		if err := t.ws.SetText(0, col, field); err != nil {
			return next, fmt.Errorf("write header %d: %w", col, err)
		}
		t.box.add(0, col)
	}
	return next, nil
}

func (t *transcriber) writeRecord(row int, record []string) error {
	for col, field := range record {
		if exceeded(col, t.lim.columns) {
			t.truncateColumns()
			break
		}
		v := Classify(field)
		var err error
		switch v.Kind {
		case models.CellEmpty:
			continue
		case models.CellNumber:
			err = t.ws.SetNumber(row, col, v.Number)
		case models.CellText:
			err = t.ws.SetText(row, col, v.Text)
		}
		if err != nil {
			return fmt.Errorf("write row %d column %d: %w", row, col, err)
		}
		t.box.add(row, col)
	}
	return nil
}

// truncateColumns records a column cut, warning the first time only.
func (t *transcriber) truncateColumns() {
	if !t.summary.ColumnsTruncated {
		t.warnLimit("columns", t.lim.columns)
	}
	t.summary.ColumnsTruncated = true
}

func (t *transcriber) warnLimit(what string, max int) {
	t.log.Warnf("maximum number of %s (%d) exceeded", what, max)
}

package csv2xlsx

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates a conversion was requested without any sheet descriptors.
var ErrNoSheets = errors.New("no sheets to convert")

// ErrNoOutput indicates an empty output path.
var ErrNoOutput = errors.New("no output path")

// ErrDuplicateSheet indicates two descriptors share a sheet name.
// Sheet names are compared case-insensitively.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// SourceOpenError reports a CSV source that could not be opened.
type SourceOpenError struct {
	Sheet string
	Path  string
	Err   error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("sheet %q: cannot open %s: %v", e.Sheet, e.Path, e.Err)
}

func (e *SourceOpenError) Unwrap() error {
	return e.Err
}

// SourceReadError reports a CSV source that failed or was malformed mid-read.
type SourceReadError struct {
	Sheet string
	Path  string
	Err   error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("sheet %q: cannot read %s: %v", e.Sheet, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// SaveError reports a workbook that could not be written to its output path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cannot save workbook %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError creates a new SaveError.
func NewSaveError(path string, err error) *SaveError {
	return &SaveError{
		Path: path,
		Err:  err,
	}
}

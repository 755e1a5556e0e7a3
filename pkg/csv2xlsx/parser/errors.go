package parser

import "fmt"

// Source operations that can fail.
const (
	OpOpen = "open"
	OpRead = "read"
)

// SourceError reports a failure to open or read a CSV source.
type SourceError struct {
	Op   string // OpOpen or OpRead
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s csv: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s csv %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

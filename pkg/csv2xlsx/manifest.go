package csv2xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
	"github.com/xuri/excelize/v2"
)

// Manifest lists the sheets of one workbook, loaded from a TOML file:
//
//	output = "report.xlsx"
//
//	[[sheet]]
//	path = "a.csv"
//	name = "Sheet1"
//	tab_color = "red"
type Manifest struct {
	// Output is the workbook path. Optional.
	Output string `toml:"output"`
	// Sheets are the worksheets in workbook order.
	Sheets []models.SheetDescriptor `toml:"sheet"`
}

// LoadManifest reads a TOML manifest. Relative paths inside it are resolved
// against the manifest's directory. Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var m Manifest
	dec := toml.NewDecoder(file).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if m.Output != "" {
		m.Output = resolve(dir, m.Output)
	}
	for i := range m.Sheets {
		if m.Sheets[i].Path == "" {
			return nil, fmt.Errorf("manifest %s: sheet %d has no path", path, i+1)
		}
		m.Sheets[i].Path = resolve(dir, m.Sheets[i].Path)
		if m.Sheets[i].Name == "" {
			m.Sheets[i].Name = DefaultSheetName(m.Sheets[i].Path)
		}
	}
	return &m, nil
}

// Descriptors returns the manifest's sheets in order.
func (m *Manifest) Descriptors() []models.SheetDescriptor {
	return append([]models.SheetDescriptor(nil), m.Sheets...)
}

// DefaultSheetName derives a sheet name from a CSV path: the base name
// without extension, with characters sheet names forbid replaced by "_",
// cut to the length a sheet name allows.
func DefaultSheetName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := []rune(strings.Trim(sheetNameReplacer.Replace(base), "'"))
	if len(name) > excelize.MaxSheetNameLength {
		name = name[:excelize.MaxSheetNameLength]
	}
	if len(name) == 0 {
		return "Sheet"
	}
	return string(name)
}

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

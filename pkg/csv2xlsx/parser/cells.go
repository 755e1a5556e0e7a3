package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
)

// Classify decides how a CSV field is stored.
// Decimal numbers become Number, NaN and the empty string become Empty,
// and everything else, infinities included, is kept as the original Text.
func Classify(field string) models.CellValue {
	if field == "" {
		return models.Empty()
	}
	if isHexLiteral(field) {
		return models.Text(field)
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return models.Text(field)
	}
	if math.IsNaN(f) {
		return models.Empty()
	}
	if math.IsInf(f, 0) {
		return models.Text(field)
	}
	return models.Number(f)
}

// isHexLiteral reports whether s uses the 0x prefix that ParseFloat accepts
// but decimal notation does not.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

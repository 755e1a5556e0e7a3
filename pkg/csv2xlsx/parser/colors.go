package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTabColor indicates a tab color that is neither a known name nor RGB hex.
var ErrInvalidTabColor = errors.New("invalid tab color")

// namedColors maps the supported color names to RGB hex.
var namedColors = map[string]string{
	"black":   "000000",
	"blue":    "0000FF",
	"brown":   "800000",
	"cyan":    "00FFFF",
	"gray":    "808080",
	"grey":    "808080",
	"green":   "008000",
	"lime":    "00FF00",
	"magenta": "FF00FF",
	"navy":    "000080",
	"orange":  "FF6600",
	"pink":    "FF00FF",
	"purple":  "800080",
	"red":     "FF0000",
	"silver":  "C0C0C0",
	"white":   "FFFFFF",
	"yellow":  "FFFF00",
}

// ParseTabColor converts a color name, "#RRGGBB" or "RRGGBB" to upper-case RRGGBB.
func ParseTabColor(color string) (string, error) {
	c := strings.TrimSpace(color)
	if rgb, ok := namedColors[strings.ToLower(c)]; ok {
		return rgb, nil
	}
	c = strings.TrimPrefix(c, "#")
	if len(c) != 6 || !isHex(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTabColor, color)
	}
	return strings.ToUpper(c), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		default:
			return false
		}
	}
	return true
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordgrid/internal/match"
)

// Tile and key colors.
var (
	colorCorrect = MustParseHexColor("#16a34a")
	colorPresent = MustParseHexColor("#f59e0b")
	colorAbsent  = MustParseHexColor("#334155")
	colorShake   = MustParseHexColor("#dc2626")
	colorEmpty   = MustParseHexColor("#1e293b")
)

// ParseHexColor converts a hex color string ("#16a34a" or "16a34a") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(v>>16&0xff), int32(v>>8&0xff), int32(v&0xff)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// statusColor returns the background for an evaluated tile or key.
func statusColor(s match.Status) tcell.Color {
	switch s {
	case match.Correct:
		return colorCorrect
	case match.Present:
		return colorPresent
	default:
		return colorAbsent
	}
}

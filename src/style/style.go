// Package style resolves the final color, line style and legend label of each
// series, plus the legend placement shared by both axes.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
)

// Palette is the fixed color cycle used when a series has no color override.
var Palette = []string{"b", "g", "r", "c", "m", "y", "k"}

// Line style codes.
const (
	Solid   = "-"
	Dashed  = "--"
	DashDot = "-."
	Dotted  = ":"
)

// RGBA is a parsed color.
type RGBA struct {
	R, G, B, A uint8
}

// Hex renders the color as #rrggbb.
func (c RGBA) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

var namedColors = map[string]RGBA{
	"b":       {0, 0, 255, 255},
	"g":       {0, 128, 0, 255},
	"r":       {255, 0, 0, 255},
	"c":       {0, 191, 191, 255},
	"m":       {191, 0, 191, 255},
	"y":       {191, 191, 0, 255},
	"k":       {0, 0, 0, 255},
	"w":       {255, 255, 255, 255},
	"blue":    {0, 0, 255, 255},
	"green":   {0, 128, 0, 255},
	"red":     {255, 0, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"brown":   {165, 42, 42, 255},
	"pink":    {255, 192, 203, 255},
	"olive":   {128, 128, 0, 255},
	"navy":    {0, 0, 128, 255},
}

// ColorNames lists the named colors accepted by ParseColor, palette codes first.
func ColorNames() []string {
	return []string{"b", "g", "r", "c", "m", "y", "k", "orange", "purple", "brown", "pink", "gray", "olive", "navy"}
}

// ParseColor accepts palette letters, a few basic names and #rgb / #rrggbb.
func ParseColor(s string) (RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if !strings.HasPrefix(v, "#") {
		return RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// ResolveColor returns the override when set, otherwise the palette entry for
// the series' position in the full selection list.
func ResolveColor(override string, index int) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	return Palette[index%len(Palette)]
}

// ResolveLineStyle returns the override when set; otherwise left-axis series
// are solid and right-axis series dashed.
func ResolveLineStyle(override string, side axis.Side) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	if side == axis.Right {
		return Dashed
	}
	return Solid
}

// ResolveLabel prefers the trimmed override over the catalog label.
func ResolveLabel(override, catalogLabel string) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	return catalogLabel
}

// LineStyles lists the accepted line style codes.
func LineStyles() []string { return []string{Solid, Dashed, DashDot, Dotted} }

// DashPattern maps a line style to an on/off dash array in pixels. Solid and
// unknown styles return nil.
func DashPattern(ls string) []float64 {
	switch strings.ToLower(strings.TrimSpace(ls)) {
	case Dashed, "dashed":
		return []float64{6, 4}
	case DashDot, "dashdot":
		return []float64{6, 3, 1.5, 3}
	case Dotted, "dotted":
		return []float64{1.5, 3}
	}
	return nil
}

package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
)

// DefaultFontFamily is go-chart's bundled font.
const DefaultFontFamily = "Roboto"

var fontSources = map[string][]byte{
	"go":           goregular.TTF,
	"go bold":      gobold.TTF,
	"go italic":    goitalic.TTF,
	"go medium":    gomedium.TTF,
	"go mono":      gomono.TTF,
	"go smallcaps": gosmallcaps.TTF,
}

var (
	fontMu    sync.Mutex
	fontCache = map[string]*truetype.Font{}
)

// FontFamilies lists the families that can be rendered, default first.
func FontFamilies() []string {
	return []string{DefaultFontFamily, "Go", "Go Bold", "Go Italic", "Go Medium", "Go Mono", "Go Smallcaps"}
}

// LoadFont returns the font for a family name. Unknown families fall back to
// the default font; the returned name is the family actually used.
func LoadFont(family string) (*truetype.Font, string, error) {
	key := strings.ToLower(strings.TrimSpace(family))
	fontMu.Lock()
	defer fontMu.Unlock()
	if f, ok := fontCache[key]; ok {
		return f, canonicalFamily(key), nil
	}
	src, ok := fontSources[key]
	if !ok {
		if key != "" && key != strings.ToLower(DefaultFontFamily) {
			logging.Debugf("font family %q not available, using %s", family, DefaultFontFamily)
		}
		f, err := chart.GetDefaultFont()
		if err != nil {
			return nil, "", fmt.Errorf("load default font: %w", err)
		}
		fontCache[key] = f
		return f, DefaultFontFamily, nil
	}
	f, err := truetype.Parse(src)
	if err != nil {
		return nil, "", fmt.Errorf("parse font %q: %w", family, err)
	}
	fontCache[key] = f
	return f, canonicalFamily(key), nil
}

func canonicalFamily(key string) string {
	for _, name := range FontFamilies() {
		if strings.ToLower(name) == key {
			return name
		}
	}
	return DefaultFontFamily
}

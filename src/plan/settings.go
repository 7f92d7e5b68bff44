package plan

import (
	"strconv"
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

// Defaults of a fresh session.
const (
	DefaultTitle      = "Dynamic Simulation Results"
	DefaultYLabel     = "Value"
	DefaultFontFamily = "Roboto"
	DefaultFontSize   = 10
)

// Settings are the user-editable display fields, kept as text where the user
// types them so that limits can be written back and hand-tuned.
type Settings struct {
	Title   string
	XLabel  string
	YLabel  string
	Y2Label string

	XLimits  axis.LimitFields
	YLimits  axis.LimitFields
	Y2Limits axis.LimitFields

	FontFamily string
	FontSize   string

	Grid     bool
	DualAxis bool

	Legend style.LegendFields
}

// DefaultSettings returns the settings a new session starts with.
func DefaultSettings() Settings {
	return Settings{
		Title:      DefaultTitle,
		YLabel:     DefaultYLabel,
		FontFamily: DefaultFontFamily,
		FontSize:   strconv.Itoa(DefaultFontSize),
		Grid:       true,
		Legend:     style.LegendFields{Location: string(style.Best), FrameOn: true},
	}
}

// ClearLimits blanks every limit field.
func (s *Settings) ClearLimits() {
	s.XLimits.Clear()
	s.YLimits.Clear()
	s.Y2Limits.Clear()
}

// ParseFontSize validates the font size field.
func (s Settings) ParseFontSize() (float64, error) {
	v := strings.TrimSpace(s.FontSize)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &InvalidInputError{Field: "font size", Value: s.FontSize, Err: err}
	}
	if n <= 0 {
		return 0, &InvalidInputError{Field: "font size", Value: s.FontSize}
	}
	return float64(n), nil
}

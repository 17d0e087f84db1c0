package report

import "github.com/segmentio/memvis/units"

const (
	// DefaultLength is the default width of the bar graphs.
	DefaultLength = 20

	// LabelWidth is the width labels are padded to.
	LabelWidth = 15
)

// Config carries the settings of a report. Fields are used as given, a zero
// Length draws empty bars and zero DecimalPlaces prints whole numbers; use
// DefaultConfig for the usual settings.
type Config struct {
	// Program selects the per-program report. The system-wide report is
	// built when it is empty.
	Program string

	// Length is the width of the bar graphs. Negative values draw empty bars.
	Length int

	// HumanReadable formats amounts with binary prefixes instead of raw
	// kibibyte counts.
	HumanReadable bool

	// DecimalPlaces of human readable amounts.
	DecimalPlaces int

	// Color draws bars with severity colors.
	Color bool
}

// DefaultConfig returns a system-wide configuration drawing DefaultLength
// wide bars with units.DefaultPrecision decimal places.
func DefaultConfig() Config {
	return Config{
		Length:        DefaultLength,
		DecimalPlaces: units.DefaultPrecision,
	}
}

package report

import (
	"fmt"

	"github.com/segmentio/memvis/bargraph"
	"github.com/segmentio/memvis/units"
)

// Kind tells what a report line measures.
type Kind string

const (
	System  Kind = "system"  // used memory of the whole system
	Process Kind = "process" // resident memory of one process
	Program Kind = "program" // resident memory of all processes of a program
)

// Line is the usage of one subject: used out of total kibibytes.
type Line struct {
	Kind  Kind
	Label string
	Used  uint64
	Total uint64
}

// Fraction returns Used / Total, or zero when Total is zero.
func (l Line) Fraction() float64 {
	if l.Total == 0 {
		return 0
	}
	return float64(l.Used) / float64(l.Total)
}

// Percent returns the fraction as a percentage.
func (l Line) Percent() float64 {
	return l.Fraction() * 100
}

// Format renders the line as
//
//	<label padded to 15> [<bar>| <percent>%] <used>/<total>
func (l Line) Format(config Config) string {
	bar := bargraph.Bar{Color: config.Color}

	return fmt.Sprintf("%-*s [%s| %.0f%%] %s/%s",
		LabelWidth, l.Label,
		bar.Render(l.Fraction(), config.Length),
		l.Percent(),
		units.FormatPrecision(l.Used, config.HumanReadable, config.DecimalPlaces),
		units.FormatPrecision(l.Total, config.HumanReadable, config.DecimalPlaces),
	)
}

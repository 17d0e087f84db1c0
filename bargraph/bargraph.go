// Package bargraph renders usage fractions as fixed-width text bars.
package bargraph

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultFill  = '#'
	DefaultEmpty = ' '
)

// Severity colors of the filled cells, as 256-color palette indexes.
var (
	healthy  = lipgloss.Color("42")  // green
	moderate = lipgloss.Color("226") // yellow
	warning  = lipgloss.Color("214") // orange
	critical = lipgloss.Color("196") // red
)

// Render returns a bar of exactly length cells, the first
// Filled(fraction, length) of them '#' and the rest blank.
func Render(fraction float64, length int) string {
	return Bar{}.Render(fraction, length)
}

// Filled returns the number of filled cells of a bar: fraction * length
// rounded half to even, clamped to [0, length].
func Filled(fraction float64, length int) int {
	if length <= 0 || math.IsNaN(fraction) {
		return 0
	}

	n := math.RoundToEven(fraction * float64(length))
	switch {
	case n < 0:
		return 0
	case n > float64(length):
		return length
	}
	return int(n)
}

// Bar configures how bars are drawn. The zero value draws '#' and ' ' cells
// without colors.
type Bar struct {
	Fill  rune
	Empty rune

	// Color styles the filled cells by severity. The visible width of the
	// bar is unchanged.
	Color bool
}

// Render draws fraction as a bar of length cells.
func (b Bar) Render(fraction float64, length int) string {
	if length < 0 {
		length = 0
	}

	fill, empty := b.Fill, b.Empty
	if fill == 0 {
		fill = DefaultFill
	}
	if empty == 0 {
		empty = DefaultEmpty
	}

	n := Filled(fraction, length)
	filled := strings.Repeat(string(fill), n)
	blank := strings.Repeat(string(empty), length-n)

	if b.Color && n != 0 {
		filled = lipgloss.NewStyle().Foreground(severity(fraction)).Render(filled)
	}

	return filled + blank
}

func severity(fraction float64) lipgloss.Color {
	switch {
	case fraction > 0.9:
		return critical
	case fraction > 0.7:
		return warning
	case fraction > 0.5:
		return moderate
	default:
		return healthy
	}
}

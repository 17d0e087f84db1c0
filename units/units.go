// Package units formats kibibyte counts, either verbatim or scaled to the
// largest binary prefix that keeps the value under 1024.
package units

import "strconv"

// DefaultPrecision is the number of decimal places of human readable values.
const DefaultPrecision = 2

var suffixes = [...]string{"KiB", "MiB", "GiB", "TiB", "PiB"}

// Format formats kib with DefaultPrecision decimal places.
func Format(kib uint64, humanReadable bool) string {
	return FormatPrecision(kib, humanReadable, DefaultPrecision)
}

// FormatPrecision returns kib as a plain integer, or, when humanReadable is
// set, divided by 1024 until it is less than 1024 (or PiB is reached) and
// followed by the matching suffix, "1.00 GiB" for 1048576 for example.
func FormatPrecision(kib uint64, humanReadable bool, decimalPlaces int) string {
	if !humanReadable {
		return strconv.FormatUint(kib, 10)
	}
	return string(AppendHuman(make([]byte, 0, 32), kib, decimalPlaces))
}

// Human is a shorthand for Format(kib, true).
func Human(kib uint64) string {
	return Format(kib, true)
}

// AppendHuman appends the human readable form of kib to b.
func AppendHuman(b []byte, kib uint64, decimalPlaces int) []byte {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}

	v, i := float64(kib), 0
	for v >= 1024 && i < len(suffixes)-1 {
		v /= 1024
		i++
	}

	b = strconv.AppendFloat(b, v, 'f', decimalPlaces, 64)
	b = append(b, ' ')
	return append(b, suffixes[i]...)
}

package report

import (
	"bufio"
	"io"

	"github.com/segmentio/encoding/json"
	stats "github.com/segmentio/stats/v5"
)

// Report is the result of a run: one line per subject, in output order.
type Report struct {
	// Program is the name the per-program report was built for, empty for
	// system-wide reports.
	Program string
	Lines   []Line
}

// WriteText writes one formatted line per subject to w.
func (r *Report) WriteText(w io.Writer, config Config) error {
	bw := bufio.NewWriter(w)

	for _, l := range r.Lines {
		bw.WriteString(l.Format(config))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

type jsonReport struct {
	Program string     `json:"program,omitempty"`
	Lines   []jsonLine `json:"lines"`
}

type jsonLine struct {
	Kind     Kind    `json:"kind"`
	Label    string  `json:"label"`
	UsedKiB  uint64  `json:"used_kib"`
	TotalKiB uint64  `json:"total_kib"`
	Fraction float64 `json:"fraction"`
}

// WriteJSON writes the report to w as an indented JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	v := jsonReport{
		Program: r.Program,
		Lines:   make([]jsonLine, 0, len(r.Lines)),
	}

	for _, l := range r.Lines {
		v.Lines = append(v.Lines, jsonLine{
			Kind:     l.Kind,
			Label:    l.Label,
			UsedKiB:  l.Used,
			TotalKiB: l.Total,
			Fraction: l.Fraction(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Publish sets gauges for every line of the report on eng, then flushes it.
//
// The gauges are memory.used.bytes, memory.total.bytes and memory.usage.ratio,
// tagged with the kind and label of the line.
func (r *Report) Publish(eng *stats.Engine) {
	for _, l := range r.Lines {
		tags := []stats.Tag{
			stats.T("kind", string(l.Kind)),
			stats.T("subject", l.Label),
		}

		eng.Set("memory.used.bytes", float64(l.Used)*1024, tags...)
		eng.Set("memory.total.bytes", float64(l.Total)*1024, tags...)
		eng.Set("memory.usage.ratio", l.Fraction(), tags...)
	}

	eng.Flush()
}

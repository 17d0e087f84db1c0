package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/segmentio/memvis/procfs"
)

// ErrAvailableUnknown is returned by system-wide reports when the available
// memory can neither be read nor estimated.
var ErrAvailableUnknown = errors.New("available memory is unknown")

// NoProcessesError is returned when a program has no process to report on.
type NoProcessesError struct {
	Program string
}

func (e *NoProcessesError) Error() string {
	return "No processes found for " + e.Program
}

// SystemReader reads the system memory information.
type SystemReader interface {
	ReadMemInfo() (procfs.MemInfo, error)
}

// ProcessReader reads the resident memory of a process.
type ProcessReader interface {
	ReadProcRss(pid string) (uint64, error)
}

// Builder collects the memory figures of a report. procfs.FS implements both
// SystemReader and ProcessReader.
type Builder struct {
	System    SystemReader
	Resolver  procfs.Resolver
	Processes ProcessReader

	// Logger receives a warning for every process that could not be read.
	// Nothing is logged when nil.
	Logger *log.Logger

	Config Config
}

// NewBuilder returns a builder reading from fs and resolving programs against
// the same proc filesystem, see procfs.NewResolverFor.
func NewBuilder(fs procfs.FS, config Config) *Builder {
	return &Builder{
		System:    fs,
		Resolver:  procfs.NewResolverFor(fs),
		Processes: fs,
		Config:    config,
	}
}

// Build collects the report selected by the builder's configuration.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	info, err := b.System.ReadMemInfo()
	if err != nil {
		return nil, err
	}

	total, err := info.Total()
	if err != nil {
		return nil, err
	}

	if program := b.Config.Program; program != "" {
		return b.buildProgram(ctx, program, total)
	}
	return b.buildSystem(info, total)
}

// Write builds the report and writes it to w as text.
func (b *Builder) Write(ctx context.Context, w io.Writer) error {
	r, err := b.Build(ctx)
	if err != nil {
		return err
	}
	return r.WriteText(w, b.Config)
}

func (b *Builder) buildSystem(info procfs.MemInfo, total uint64) (*Report, error) {
	available, ok := info.Available()
	if !ok {
		return nil, ErrAvailableUnknown
	}

	var used uint64
	if available < total {
		used = total - available
	}

	return &Report{
		Lines: []Line{{Kind: System, Label: "Memory", Used: used, Total: total}},
	}, nil
}

func (b *Builder) buildProgram(ctx context.Context, program string, total uint64) (*Report, error) {
	pids, err := b.Resolver.Resolve(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", program, err)
	}

	r := &Report{Program: program}
	sum := uint64(0)

	for _, pid := range pids {
		rss, err := b.Processes.ReadProcRss(pid)
		if err != nil {
			b.warnf("skipping %s: %v", pid, err)
			continue
		}

		r.Lines = append(r.Lines, Line{Kind: Process, Label: pid, Used: rss, Total: total})
		sum += rss
	}

	switch len(r.Lines) {
	case 0:
		return nil, &NoProcessesError{Program: program}
	case 1:
		// a single process is its own total
	default:
		r.Lines = append(r.Lines, Line{Kind: Program, Label: program, Used: sum, Total: total})
	}

	return r, nil
}

func (b *Builder) warnf(msg string, args ...interface{}) {
	if b.Logger != nil {
		b.Logger.Printf(msg, args...)
	}
}

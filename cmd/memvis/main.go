package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/segmentio/memvis/procfs"
	"github.com/segmentio/memvis/report"
	"github.com/segmentio/memvis/units"
	stats "github.com/segmentio/stats/v5"
	"github.com/segmentio/stats/v5/datadog"
	"github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// envProcFS overrides the default proc filesystem root.
const envProcFS = "MEMVIS_PROCFS"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	report.Config
	json      bool
	dogstatsd string
	procfs    string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parse(args, stderr)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return exitOK
	case err != nil:
		fmt.Fprintf(stderr, "memvis: %s\n", err)
		return exitUsage
	}

	logger := log.New(stderr, "memvis: ", 0)

	b := report.NewBuilder(procfs.FS{Root: opts.procfs}, opts.Config)
	b.Logger = logger

	r, err := b.Build(ctx)
	if err != nil {
		var noProcs *report.NoProcessesError
		if errors.As(err, &noProcs) {
			fmt.Fprintln(stdout, noProcs)
		} else {
			logger.Print(err)
		}
		return exitFailure
	}

	if opts.json {
		err = r.WriteJSON(stdout)
	} else {
		err = r.WriteText(stdout, opts.Config)
	}
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	if opts.dogstatsd != "" {
		dd := datadog.NewClient(opts.dogstatsd)
		r.Publish(stats.NewEngine("memvis", dd))
		if err := dd.Close(); err != nil {
			logger.Printf("publishing to %s: %v", opts.dogstatsd, err)
			return exitFailure
		}
	}

	return exitOK
}

func parse(args []string, stderr io.Writer) (opts options, err error) {
	fset := pflag.NewFlagSet("memvis", pflag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() { usage(fset, stderr) }

	opts.Config = report.DefaultConfig()

	procRoot := os.Getenv(envProcFS)
	if procRoot == "" {
		procRoot = procfs.DefaultRoot
	}

	fset.IntVarP(&opts.Length, "length", "l", opts.Length, "Specify the length of the graph.")
	fset.BoolVarP(&opts.HumanReadable, "human-readable", "H", false, "Prints sizes in human readable format.")
	fset.IntVarP(&opts.DecimalPlaces, "decimals", "d", units.DefaultPrecision, "Decimal places of human readable sizes.")
	fset.BoolVarP(&opts.Color, "color", "c", false, "Color the graphs by usage.")
	fset.BoolVarP(&opts.json, "json", "j", false, "Print the report as JSON.")
	fset.StringVar(&opts.dogstatsd, "dogstatsd", "", "Also send the report as gauges to the dogstatsd agent at this address.")
	fset.StringVar(&opts.procfs, "procfs", procRoot, "Mount point of the proc filesystem (env "+envProcFS+").")

	if err = fset.Parse(args); err != nil {
		return
	}

	switch rest := fset.Args(); len(rest) {
	case 0:
	case 1:
		opts.Program = rest[0]
	default:
		return opts, fmt.Errorf("too many arguments: %q", rest[1:])
	}

	if opts.Length < 0 {
		return opts, fmt.Errorf("invalid length %d: must not be negative", opts.Length)
	}
	if opts.DecimalPlaces < 0 {
		return opts, fmt.Errorf("invalid decimals %d: must not be negative", opts.DecimalPlaces)
	}

	return
}

func usage(fset *pflag.FlagSet, w io.Writer) {
	fmt.Fprint(w, `usage: memvis [options...] [program]

Memory Visualiser -- see memory usage reported with bar charts.

If a program is specified, show the resident memory of all its processes,
otherwise show the memory used by the whole system.

options:
`)
	fset.PrintDefaults()
}

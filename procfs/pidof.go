package procfs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/process"
)

// A Resolver maps a program name to the ids of the processes currently
// running it. Finding no process is not an error, the returned slice is
// empty.
type Resolver interface {
	Resolve(ctx context.Context, program string) ([]string, error)
}

// NewResolver returns a resolver which runs pidof and falls back to scanning
// the process table when pidof is not installed.
func NewResolver() Resolver {
	return fallbackResolver{
		primary:   PidofResolver{},
		secondary: ScanResolver{},
	}
}

// NewResolverFor returns a resolver whose process ids are valid in fs. pidof
// only sees the host's /proc, so proc filesystems mounted elsewhere are
// scanned instead.
func NewResolverFor(fs FS) Resolver {
	if filepath.Clean(fs.root()) == DefaultRoot {
		return NewResolver()
	}
	return ScanResolver{Root: fs.root()}
}

// PidofResolver resolves program names with the pidof command.
type PidofResolver struct {
	// Path of the pidof executable, looked up in $PATH when empty.
	Path string
}

func (r PidofResolver) Resolve(ctx context.Context, program string) ([]string, error) {
	if program == "" {
		return nil, nil
	}

	path := r.Path
	if path == "" {
		path = "pidof"
	}

	out, err := exec.CommandContext(ctx, path, program).Output()
	if err != nil {
		// pidof exits with status 1 when no process matched.
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("pidof %s: %w", program, err)
	}

	return strings.Fields(string(out)), nil
}

// ScanResolver resolves program names by reading the name of every process
// in the process table. Process ids are returned in ascending order.
type ScanResolver struct {
	// Root of the proc filesystem to scan, the host's /proc when empty.
	Root string
}

func (r ScanResolver) Resolve(ctx context.Context, program string) ([]string, error) {
	if program == "" {
		return nil, nil
	}

	if r.Root != "" {
		ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{common.HostProcEnvKey: r.Root})
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	var pids []string
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue // exited while scanning
		}
		if name == program {
			pids = append(pids, strconv.FormatInt(int64(p.Pid), 10))
		}
	}
	return pids, nil
}

type fallbackResolver struct {
	primary   Resolver
	secondary Resolver
}

func (r fallbackResolver) Resolve(ctx context.Context, program string) ([]string, error) {
	pids, err := r.primary.Resolve(ctx, program)
	if errors.Is(err, exec.ErrNotFound) {
		return r.secondary.Resolve(ctx, program)
	}
	return pids, err
}

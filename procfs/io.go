package procfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultRoot is the mount point of the proc filesystem.
const DefaultRoot = "/proc"

// FS reads memory figures from a proc filesystem mounted at Root.
//
// The zero value reads from DefaultRoot.
type FS struct {
	Root string
}

// DefaultFS reads from /proc.
var DefaultFS = FS{Root: DefaultRoot}

func (fs FS) root() string {
	if fs.Root == "" {
		return DefaultRoot
	}
	return fs.Root
}

func (fs FS) path(what string) string {
	return filepath.Join(fs.root(), what)
}

func (fs FS) procPath(who interface{}, what string) string {
	return filepath.Join(fs.root(), fmt.Sprint(who), what)
}

func (fs FS) readProcFile(who interface{}, what string) (string, error) {
	return readFile(fs.procPath(who, what))
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	return string(b), err
}

func validatePid(pid string) error {
	if _, err := strconv.ParseUint(pid, 10, 32); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPid, pid)
	}
	return nil
}

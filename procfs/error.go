package procfs

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

var (
	// ErrNotFound is returned when a required field is missing from a proc
	// file.
	ErrNotFound = errors.New("field not found")

	// ErrProcessGone is returned when a process exited between being resolved
	// and having its memory read.
	ErrProcessGone = errors.New("process no longer exists")

	// ErrAccessDenied is returned when the caller may not read a process'
	// memory mappings.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPid is returned for identifiers that are not decimal process
	// ids.
	ErrInvalidPid = errors.New("invalid process id")
)

// ProcessError records a failure to read a file describing a single process.
//
// Both the classification (ErrProcessGone, ErrAccessDenied) and the
// underlying error match with errors.Is.
type ProcessError struct {
	Pid  string
	File string
	Kind error
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("pid %s: reading %s: %v: %v", e.Pid, e.File, e.Kind, e.Err)
}

func (e *ProcessError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newProcessError(pid, file string, err error) error {
	var kind error
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, unix.ESRCH):
		kind = ErrProcessGone
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		kind = ErrAccessDenied
	default:
		return fmt.Errorf("pid %s: reading %s: %w", pid, file, err)
	}
	return &ProcessError{Pid: pid, File: file, Kind: kind, Err: err}
}

func convertPanicToError(v interface{}) (err error) {
	if v != nil {
		switch e := v.(type) {
		case error:
			err = e
		default:
			err = fmt.Errorf("%v", e)
		}
	}
	return
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

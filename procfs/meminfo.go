package procfs

import "fmt"

// MemInfo maps the labels of /proc/meminfo to their values in kibibytes.
type MemInfo map[string]uint64

// ReadMemInfo reads and parses the meminfo file of fs.
func (fs FS) ReadMemInfo() (MemInfo, error) {
	text, err := readFile(fs.path("meminfo"))
	if err != nil {
		return nil, fmt.Errorf("reading meminfo: %w", err)
	}
	return ParseMemInfo(text)
}

// ParseMemInfo parses the "Label: value kB" records of a meminfo file.
// Records without a numeric value are left out, asking for them reports them
// missing.
func ParseMemInfo(s string) (info MemInfo, err error) {
	defer func() { err = convertPanicToError(recover()) }()
	info = parseMemInfo(s)
	return
}

func parseMemInfo(s string) MemInfo {
	info := make(MemInfo)
	forEachProperty(s, func(key, val string) {
		if v, err := lookupKiB(val); err == nil {
			info[key] = v
		}
	})
	return info
}

// Lookup returns the value of the field, and whether it was present.
func (info MemInfo) Lookup(field string) (kib uint64, ok bool) {
	kib, ok = info[field]
	return
}

// Total returns MemTotal. A missing MemTotal is reported as an error wrapping
// ErrNotFound since nothing can be computed without it.
func (info MemInfo) Total() (uint64, error) {
	if kib, ok := info.Lookup("MemTotal"); ok {
		return kib, nil
	}
	return 0, fmt.Errorf("meminfo: MemTotal: %w", ErrNotFound)
}

// Available returns MemAvailable. Kernels older than 3.14 and some
// virtualized environments do not export it, in which case the value is
// estimated as MemFree + Buffers + Cached. ok is false if neither is possible.
func (info MemInfo) Available() (kib uint64, ok bool) {
	if kib, ok = info.Lookup("MemAvailable"); ok {
		return
	}

	for _, field := range [...]string{"MemFree", "Buffers", "Cached"} {
		v, found := info.Lookup(field)
		if !found {
			return 0, false
		}
		kib += v
	}

	return kib, true
}

// TotalMemory returns MemTotal of fs.
func (fs FS) TotalMemory() (uint64, error) {
	info, err := fs.ReadMemInfo()
	if err != nil {
		return 0, err
	}
	return info.Total()
}

// AvailableMemory returns the available memory of fs, see MemInfo.Available.
func (fs FS) AvailableMemory() (kib uint64, ok bool, err error) {
	info, err := fs.ReadMemInfo()
	if err != nil {
		return 0, false, err
	}
	kib, ok = info.Available()
	return
}

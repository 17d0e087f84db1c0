package procfs

// ReadProcRss returns the resident set size of pid in kibibytes, summed over
// all of its memory mappings.
func (fs FS) ReadProcRss(pid string) (uint64, error) {
	if err := validatePid(pid); err != nil {
		return 0, err
	}

	text, err := fs.readProcFile(pid, "smaps")
	if err != nil {
		return 0, newProcessError(pid, "smaps", err)
	}

	return ParseSmapsRss(text)
}

// ParseSmapsRss sums the Rss records of a smaps file.
func ParseSmapsRss(s string) (rss uint64, err error) {
	defer func() { err = convertPanicToError(recover()) }()
	rss = parseSmapsRss(s)
	return
}

func parseSmapsRss(s string) (rss uint64) {
	forEachProperty(s, func(key, val string) {
		if key == "Rss" {
			rss += parseKiB(val)
		}
	})
	return
}

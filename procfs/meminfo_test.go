package procfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfo = `MemTotal:       16000000 kB
MemFree:         1000000 kB
MemAvailable:    4000000 kB
Buffers:          200000 kB
Cached:          2500000 kB
SwapCached:            0 kB
HugePages_Total:       0
Hugepagesize:       2048 kB
`

// meminfo of a kernel without MemAvailable.
const meminfoNoAvailable = `MemTotal:       16000000 kB
MemFree:         1000000 kB
Buffers:          200000 kB
Cached:          2500000 kB
`

func writeMemInfo(t *testing.T, text string) FS {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"), []byte(text), 0o644))
	return FS{Root: root}
}

func TestParseMemInfo(t *testing.T) {
	info, err := ParseMemInfo(meminfo)
	require.NoError(t, err)

	assert.Equal(t, MemInfo{
		"MemTotal":        16000000,
		"MemFree":         1000000,
		"MemAvailable":    4000000,
		"Buffers":         200000,
		"Cached":          2500000,
		"SwapCached":      0,
		"HugePages_Total": 0,
		"Hugepagesize":    2048,
	}, info)
}

func TestParseMemInfoSkipsNonNumericRecords(t *testing.T) {
	info, err := ParseMemInfo(meminfo + "Weird: n/a\nDirectMap4k: -\n")
	require.NoError(t, err)

	total, err := info.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(16000000), total)

	_, ok := info.Lookup("Weird")
	assert.False(t, ok)
}

func TestParseMemInfoNonNumericTotal(t *testing.T) {
	info, err := ParseMemInfo("MemTotal: many kB\nMemAvailable: 1000 kB\n")
	require.NoError(t, err)

	_, err = info.Total()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemInfoTotal(t *testing.T) {
	info, err := ParseMemInfo(meminfo)
	require.NoError(t, err)

	total, err := info.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(16000000), total)

	_, err = MemInfo{"MemFree": 1}.Total()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemInfoAvailable(t *testing.T) {
	tests := []struct {
		scenario  string
		info      MemInfo
		available uint64
		ok        bool
	}{
		{
			scenario:  "MemAvailable is used when present",
			info:      MemInfo{"MemAvailable": 4000000, "MemFree": 1, "Buffers": 1, "Cached": 1},
			available: 4000000,
			ok:        true,
		},
		{
			scenario:  "free, buffers and cached estimate a missing MemAvailable",
			info:      MemInfo{"MemFree": 1000000, "Buffers": 200000, "Cached": 2500000},
			available: 3700000,
			ok:        true,
		},
		{
			scenario: "available memory is unknown without any of the fields",
			info:     MemInfo{"MemTotal": 16000000, "MemFree": 1000000},
			ok:       false,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			available, ok := test.info.Available()
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.available, available)
		})
	}
}

func TestReadMemInfo(t *testing.T) {
	fs := writeMemInfo(t, meminfo)

	total, err := fs.TotalMemory()
	require.NoError(t, err)
	assert.Equal(t, uint64(16000000), total)

	available, ok, err := fs.AvailableMemory()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(4000000), available)
}

func TestReadMemInfoWithoutAvailable(t *testing.T) {
	fs := writeMemInfo(t, "MemTotal:       16000000 kB\n")

	available, ok, err := fs.AvailableMemory()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, available)

	fs = writeMemInfo(t, meminfoNoAvailable)

	available, ok, err = fs.AvailableMemory()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(3700000), available)
}

func TestReadMemInfoMissingFile(t *testing.T) {
	fs := FS{Root: t.TempDir()}

	_, err := fs.ReadMemInfo()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = fs.TotalMemory()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

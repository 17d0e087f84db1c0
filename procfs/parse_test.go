package procfs

import (
	"reflect"
	"testing"
)

func TestForEachLine(t *testing.T) {
	tests := []struct {
		text  string
		lines []string
	}{
		{
			text:  "",
			lines: []string{},
		},
		{
			text:  "1\n2\n3\nHello \n World!",
			lines: []string{"1", "2", "3", "Hello", "World!"},
		},
		{
			text:  "\n\n  \nRss: 4 kB\n",
			lines: []string{"Rss: 4 kB"},
		},
	}

	for _, test := range tests {
		lines := []string{}
		forEachLine(test.text, func(line string) { lines = append(lines, line) })

		if !reflect.DeepEqual(lines, test.lines) {
			t.Error(lines)
		}
	}
}

func TestForEachProperty(t *testing.T) {
	type KV struct {
		K string
		V string
	}

	tests := []struct {
		text string
		kv   []KV
	}{
		{
			text: "",
			kv:   []KV{},
		},
		{
			text: "MemTotal:       16318436 kB\nHugePages_Total:       0\nnoseparator",
			kv: []KV{
				{"MemTotal", "16318436 kB"},
				{"HugePages_Total", "0"},
				{"noseparator", ""},
			},
		},
	}

	for _, test := range tests {
		kv := []KV{}
		forEachProperty(test.text, func(k, v string) { kv = append(kv, KV{k, v}) })

		if !reflect.DeepEqual(kv, test.kv) {
			t.Error(kv)
		}
	}
}

func TestParseKiB(t *testing.T) {
	tests := []struct {
		val string
		kib uint64
	}{
		{"0", 0},
		{"4 kB", 4},
		{"16318436 kB", 16318436},
	}

	for _, test := range tests {
		if kib := parseKiB(test.val); kib != test.kib {
			t.Errorf("parseKiB(%q): %d != %d", test.val, test.kib, kib)
		}
	}
}

func TestParseKiBPanic(t *testing.T) {
	defer func() { recover() }()
	parseKiB("lots kB")
	t.Error("should have raised a panic")
}

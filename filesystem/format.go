package filesystem

import (
	"fmt"
	"strings"
)

var byteUnits = []string{"b", "kb", "mb", "gb", "tb"}

// BytesToHumanReadable formats n with decimal (1000 based) units, truncating
// the scaled value. Values beyond the last unit keep growing in "tb".
func BytesToHumanReadable(n uint64) string {
	unit := 0
	for n >= 1000 && unit < len(byteUnits)-1 {
		n /= 1000
		unit++
	}

	return fmt.Sprintf("%d%s", n, byteUnits[unit])
}

// PathToRelative renders path relative to base for display, e.g.
// "./sub/file.txt". No canonicalisation happens, so a base that is not a
// prefix of path gives a meaningless but harmless result.
func PathToRelative(path, base string) string {
	rel := strings.TrimPrefix(path, base)
	if rel != "" && (rel[0] == '/' || rel[0] == '\\') {
		rel = rel[1:]
	}
	rel = strings.ReplaceAll(rel, `\`, "/")

	return "./" + rel
}

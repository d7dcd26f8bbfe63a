package workflow

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jamesbehr/symlinker/filesystem"
)

const separators = `/\`

// SymlinkPath mirrors original below target so the symlink tree looks like
// the source tree: `C:\data\photos` under `D:\links` becomes
// `D:\links\data\photos`. Drive letters are dropped.
func SymlinkPath(target, original string) string {
	mirror := original
	if hasDriveLetter(mirror) {
		mirror = mirror[2:]
	}

	mirror = strings.TrimLeft(mirror, separators)
	target = strings.TrimRight(target, separators)

	return target + string(filepath.Separator) + mirror
}

func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}

	c := path[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// DriveOf returns the leading part of path up to and including the first
// separator, which is taken as the mount point holding path.
func DriveOf(path string) (string, error) {
	i := strings.IndexAny(path, separators)
	if i < 0 {
		return "", fmt.Errorf("%w: cannot infer drive of %q", filesystem.ErrInvalidInput, path)
	}

	return path[:i+1], nil
}

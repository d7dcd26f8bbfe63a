//go:build !linux && !windows && !darwin && !freebsd

package filesystem

import (
	"fmt"
	"runtime"
)

func mountPoints() ([]string, error) {
	return nil, fmt.Errorf("%w: mount table is not supported on %s", ErrNotFound, runtime.GOOS)
}

func statVolume(path string) (uint64, uint64, error) {
	return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
}

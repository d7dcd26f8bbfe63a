//go:build darwin || freebsd

package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func mountPoints() ([]string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("filesystem: read mount table: %w", err)
	}

	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("filesystem: read mount table: %w", err)
	}

	mounts := make([]string, 0, n)
	for _, st := range buf[:n] {
		mounts = append(mounts, unix.ByteSliceToString(st.Mntonname[:]))
	}

	return mounts, nil
}

func statVolume(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, fmt.Errorf("filesystem: statfs %s: %w", path, err)
	}

	bsize := uint64(stat.Bsize)
	return uint64(stat.Bavail) * bsize, uint64(stat.Blocks) * bsize, nil
}

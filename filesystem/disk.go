package filesystem

import "fmt"

// DiskSpace looks mountPoint up in the live mount table and returns the bytes
// available to the caller and the total size of that volume. The mount table
// is read on every call.
func DiskSpace(mountPoint string) (available, total uint64, err error) {
	mounts, err := mountPoints()
	if err != nil {
		return 0, 0, err
	}

	for _, mount := range mounts {
		if mount == mountPoint {
			return statVolume(mount)
		}
	}

	return 0, 0, fmt.Errorf("%w: no disk mounted at %q", ErrNotFound, mountPoint)
}

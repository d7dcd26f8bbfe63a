package filesystem

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// mountPoints lists the logical drives, e.g. `C:\`.
func mountPoints() ([]string, error) {
	n, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil {
		return nil, fmt.Errorf("filesystem: list drives: %w", err)
	}

	buf := make([]uint16, n)
	n, err = windows.GetLogicalDriveStrings(n, &buf[0])
	if err != nil {
		return nil, fmt.Errorf("filesystem: list drives: %w", err)
	}

	var drives []string
	start := 0
	for i := 0; i < int(n); i++ {
		if buf[i] != 0 {
			continue
		}

		if i > start {
			drives = append(drives, windows.UTF16ToString(buf[start:i]))
		}

		start = i + 1
	}

	return drives, nil
}

func statVolume(path string) (uint64, uint64, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidInput, path)
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &available, &total, &free); err != nil {
		return 0, 0, fmt.Errorf("filesystem: disk space of %s: %w", path, err)
	}

	return available, total, nil
}

package filesystem

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const mountTable = "/proc/self/mounts"

func mountPoints() ([]string, error) {
	f, err := os.Open(mountTable)
	if err != nil {
		return nil, fmt.Errorf("filesystem: read mount table: %w", err)
	}

	defer f.Close()

	var mounts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		mounts = append(mounts, unescapeMount(fields[1]))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("filesystem: read mount table: %w", err)
	}

	return mounts, nil
}

// unescapeMount decodes the octal escapes (\040 for space etc.) the kernel
// uses in the mount table.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

func statVolume(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, fmt.Errorf("filesystem: statfs %s: %w", path, err)
	}

	bsize := uint64(stat.Bsize)
	return stat.Bavail * bsize, stat.Blocks * bsize, nil
}

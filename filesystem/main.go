package filesystem

import (
	"errors"
	"fmt"
)

// MaxDepth is the number of directory levels EnumerateFiles descends before
// giving up. Symlinked directories are followed, so a link cycle ends here.
const MaxDepth = 128

var (
	ErrInvalidInput  = errors.New("filesystem: invalid input")
	ErrNotFound      = errors.New("filesystem: not found")
	ErrTraversal     = errors.New("filesystem: traversal failed")
	ErrDepthExceeded = fmt.Errorf("%w: maximum depth of %d reached", ErrTraversal, MaxDepth)
)

// TraversalError reports a directory that could not be read while
// enumerating a tree.
type TraversalError struct {
	Path Path
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("filesystem: cannot read directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() []error {
	return []error{ErrTraversal, e.Err}
}

// Inspector answers the questions the link workflow asks about the disk
// before anything is committed. Implementations must not modify the
// filesystem.
type Inspector interface {
	// EnumerateFiles lists every non-directory entry below root.
	EnumerateFiles(root Path) ([]Path, error)

	// DiskSpace returns the available and total bytes of the volume mounted
	// at exactly mountPoint.
	DiskSpace(mountPoint string) (available, total uint64, err error)
}

// OS inspects the real filesystem of the host.
type OS struct{}

func (OS) EnumerateFiles(root Path) ([]Path, error) {
	return EnumerateFiles(root, 0)
}

func (OS) DiskSpace(mountPoint string) (uint64, uint64, error) {
	return DiskSpace(mountPoint)
}

package filesystem

import (
	"fmt"
	"os"
)

// EnumerateFiles returns every non-directory entry below root. The order of
// the result follows the directory listing and is not stable across
// platforms. Any directory that cannot be read fails the whole call.
func EnumerateFiles(root Path, depth int) ([]Path, error) {
	if depth >= MaxDepth {
		return nil, fmt.Errorf("%w: %s", ErrDepthExceeded, root)
	}

	if depth == 0 && !root.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidInput, root)
	}

	entries, err := root.ReadDir()
	if err != nil {
		return nil, &TraversalError{Path: root, Err: err}
	}

	files := []Path{}
	for _, entry := range entries {
		path := root.Join(entry.Name())

		if !isDir(path, entry) {
			files = append(files, path)
			continue
		}

		nested, err := EnumerateFiles(path, depth+1)
		if err != nil {
			return nil, err
		}

		files = append(files, nested...)
	}

	return files, nil
}

func isDir(path Path, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}

	// Dangling links count as files
	if entry.Type()&os.ModeSymlink != 0 {
		return path.IsDir()
	}

	return false
}

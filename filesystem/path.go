package filesystem

import (
	"os"
	"path/filepath"
)

type Path string

func MakePath(names ...string) Path {
	p := filepath.Join(names...)

	if !filepath.IsAbs(p) {
		panic("MakePath requires absolute path")
	}

	return Path(p)
}

// AbsPath resolves name against the working directory.
func AbsPath(name string) (Path, error) {
	p, err := filepath.Abs(name)
	if err != nil {
		return Path(""), err
	}

	return Path(p), nil
}

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return MakePath(args...)
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(string(p)))
}

func (p Path) MkdirAll(perm os.FileMode) error {
	return os.MkdirAll(string(p), perm)
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) ReadFile() ([]byte, error) {
	return os.ReadFile(string(p))
}

func (p Path) ReadDir() ([]os.DirEntry, error) {
	return os.ReadDir(string(p))
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// IsDir follows symlinks, so a link to a directory reports true.
func (p Path) IsDir() bool {
	info, err := os.Stat(string(p))
	if err != nil {
		return false
	}

	return info.IsDir()
}

func (p Path) IsSymlink() (bool, error) {
	info, err := os.Lstat(string(p))
	if err != nil {
		return false, err
	}

	return info.Mode()&os.ModeSymlink != 0, nil
}

func (p Path) String() string {
	return string(p)
}

package store

import (
	"errors"
	"fmt"

	"github.com/jamesbehr/symlinker/filesystem"
	"github.com/jamesbehr/symlinker/logging"
	"github.com/rs/zerolog"
)

var (
	ErrDecode = errors.New("store: decode error")
	ErrIO     = errors.New("store: io error")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Defaulter is implemented by records that know their own initial value. The
// value written to a file that does not exist yet comes from Default.
type Defaulter[T any] interface {
	Default() T
}

// Store reads and writes named files inside the storage roots. Directories
// are created on demand. Writes overwrite the whole file and are not atomic.
// Concurrent use from several processes is not supported.
type Store struct {
	roots  Roots
	logger zerolog.Logger
}

func New(roots Roots) *Store {
	return &Store{
		roots:  roots,
		logger: logging.GetLogger("store"),
	}
}

// Path returns the location of name inside the root of role.
func (s *Store) Path(role Role, name string) filesystem.Path {
	return s.roots.Dir(role).Join(name)
}

func (s *Store) ensureDir(role Role) error {
	dir := s.roots.Dir(role)
	if err := dir.MkdirAll(dirPerm); err != nil {
		return fmt.Errorf("%w: create %s directory %s: %w", ErrIO, role, dir, err)
	}

	return nil
}

func (s *Store) writeFile(role Role, name string, data []byte) error {
	if err := s.ensureDir(role); err != nil {
		return err
	}

	path := s.Path(role, name)
	if err := path.WriteFile(data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	return nil
}

// ensureFile creates name with the given contents unless it already exists.
func (s *Store) ensureFile(role Role, name string, initial func() ([]byte, error)) error {
	if err := s.ensureDir(role); err != nil {
		return err
	}

	path := s.Path(role, name)
	exists, err := path.Exists()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}

	if exists {
		return nil
	}

	data, err := initial()
	if err != nil {
		return err
	}

	s.logger.Info().Str("path", path.String()).Msg("Creating file")
	return s.writeFile(role, name, data)
}

func (s *Store) readFile(role Role, name string) ([]byte, error) {
	path := s.Path(role, name)
	data, err := path.ReadFile()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	return data, nil
}

// Load reads the record stored in name. A missing file is first created
// holding the record's default value. A file that exists but does not decode
// is reported as ErrDecode and left untouched.
func Load[T Defaulter[T]](s *Store, role Role, name string) (T, error) {
	var value T
	codec := CodecFor(name)

	err := s.ensureFile(role, name, func() ([]byte, error) {
		data, err := codec.Marshal(value.Default())
		if err != nil {
			return nil, fmt.Errorf("store: encode default %s: %w", name, err)
		}

		return data, nil
	})
	if err != nil {
		return value, err
	}

	data, err := s.readFile(role, name)
	if err != nil {
		return value, err
	}

	if err := codec.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %w", ErrDecode, s.Path(role, name), err)
	}

	s.logger.Debug().Str("path", s.Path(role, name).String()).Msg("Loaded record")
	return value, nil
}

// Save overwrites name with the encoded value.
func Save[T any](s *Store, role Role, name string, value T) error {
	data, err := CodecFor(name).Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}

	if err := s.writeFile(role, name, data); err != nil {
		return err
	}

	s.logger.Debug().Str("path", s.Path(role, name).String()).Msg("Saved record")
	return nil
}

// Append adds text to the end of name, creating it empty first if needed.
// The file is read and rewritten as a whole.
func (s *Store) Append(role Role, name, text string) error {
	err := s.ensureFile(role, name, func() ([]byte, error) {
		return []byte{}, nil
	})
	if err != nil {
		return err
	}

	data, err := s.readFile(role, name)
	if err != nil {
		return err
	}

	return s.writeFile(role, name, append(data, text...))
}

// Write replaces the contents of name with text.
func (s *Store) Write(role Role, name, text string) error {
	return s.writeFile(role, name, []byte(text))
}

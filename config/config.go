package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/jamesbehr/symlinker/logging"
	"github.com/jamesbehr/symlinker/prompt"
	"github.com/jamesbehr/symlinker/store"
)

const FileName = "config.json"

var ErrConfig = errors.New("config: invalid config file")

type Config struct {
	CreateBackup bool `json:"create_backup" toml:"create_backup"`

	// BackupDir is where backups are kept when CreateBackup is set
	BackupDir string `json:"backup_dir" toml:"backup_dir"`

	// DefaultSymlinkDir is the root new links are mirrored into when no
	// target is given
	DefaultSymlinkDir string `json:"default_symlink_dir" toml:"default_symlink_dir"`
}

func (Config) Default() Config {
	if runtime.GOOS == "windows" {
		return Config{
			CreateBackup:      true,
			BackupDir:         `C:\symlinker_backups`,
			DefaultSymlinkDir: `C:\symlinks`,
		}
	}

	return Config{
		CreateBackup:      true,
		BackupDir:         filepath.Join(xdg.Home, "symlinker_backups"),
		DefaultSymlinkDir: filepath.Join(xdg.Home, "symlinks"),
	}
}

func (c Config) SymlinkDir() string {
	return c.DefaultSymlinkDir
}

func (c Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Load reads the configuration, creating the default when there is none.
// When the file cannot be decoded the operator is asked whether to replace
// it with the default; declining fails with ErrConfig.
func Load(s *store.Store, p prompt.Prompter) (Config, error) {
	logger := logging.GetLogger("config")

	cfg, err := store.Load[Config](s, store.RoleConfig, FileName)
	if err == nil {
		return cfg, nil
	}

	if !errors.Is(err, store.ErrDecode) {
		return Config{}, err
	}

	logger.Warn().Err(err).Msg("Failed to load config file")

	regenerate, perr := p.Confirm("Failed to load config file. Would you like to create a new config file?")
	if perr != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, perr)
	}

	if !regenerate {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg = Config{}.Default()
	if err := Save(s, cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Save(s *store.Store, cfg Config) error {
	return store.Save(s, store.RoleConfig, FileName, cfg)
}

package store

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/jamesbehr/symlinker/filesystem"
)

// AppName names the per-user directories the roots are resolved to.
const AppName = "symlinker"

// Role selects one of the storage roots.
type Role int

const (
	RoleConfig Role = iota
	RoleData
)

func (r Role) String() string {
	switch r {
	case RoleConfig:
		return "config"
	case RoleData:
		return "data"
	}

	return "unknown"
}

// Roots holds the directories every stored file lives in. It is resolved once
// at startup and handed to the Store; nothing else computes these paths.
type Roots struct {
	Config filesystem.Path
	Data   filesystem.Path
}

// DefaultRoots resolves the roots from the platform's per-user directory
// conventions (XDG on Unix, AppData on Windows, Library on macOS).
func DefaultRoots() Roots {
	return Roots{
		Config: filesystem.MakePath(xdg.ConfigHome, AppName),
		Data:   filesystem.MakePath(xdg.DataHome, AppName),
	}
}

// NewRoots places both roots below base. Used for isolated setups such as
// tests.
func NewRoots(base string) Roots {
	return Roots{
		Config: filesystem.MakePath(filepath.Join(base, "config")),
		Data:   filesystem.MakePath(filepath.Join(base, "data")),
	}
}

// Dir returns the root directory of role.
func (r Roots) Dir(role Role) filesystem.Path {
	if role == RoleConfig {
		return r.Config
	}

	return r.Data
}

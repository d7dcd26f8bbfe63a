package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jamesbehr/symlinker/config"
	"github.com/jamesbehr/symlinker/filesystem"
	"github.com/jamesbehr/symlinker/registry"
	"github.com/jamesbehr/symlinker/runlog"
	"github.com/jamesbehr/symlinker/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, roots store.Roots, stdin string, args ...string) (string, error) {
	previous := storageRoots
	storageRoots = func() store.Roots { return roots }
	t.Cleanup(func() { storageRoots = previous })

	listFormat = "table"
	verbosity = 0

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func requireRootMount(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("disk space lookup of / needs the linux mount table")
	}

	if _, _, err := filesystem.DiskSpace("/"); err != nil {
		t.Skipf("/ is not a mount point here: %s", err)
	}
}

func originalDir(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "photos")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024", "beach.jpg"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.txt"), nil, 0644))
	return dir
}

func TestMissingAction(t *testing.T) {
	_, err := execute(t, store.NewRoots(t.TempDir()), "")
	require.ErrorIs(t, err, errMissingAction)
}

func TestUnknownAction(t *testing.T) {
	_, err := execute(t, store.NewRoots(t.TempDir()), "", "frobnicate")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestAddRequiresPath(t *testing.T) {
	_, err := execute(t, store.NewRoots(t.TempDir()), "", "add")
	require.Error(t, err)
}

func TestAddRejectsMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := execute(t, store.NewRoots(t.TempDir()), "", "add", missing)
	require.ErrorIs(t, err, ErrOriginalMissing)
}

func TestAddRejectsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	dir := originalDir(t)
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(dir, link))

	_, err := execute(t, store.NewRoots(t.TempDir()), "", "a", link)
	require.ErrorIs(t, err, ErrAlreadySymlink)
}

func TestAddListRemove(t *testing.T) {
	requireRootMount(t)

	roots := store.NewRoots(t.TempDir())
	dir := originalDir(t)

	out, err := execute(t, roots, "y\ny\n", "add", dir, "/symlinks")
	require.NoError(t, err)
	assert.Contains(t, out, "This will move 2 files.")
	assert.Contains(t, out, "./2024/beach.jpg")
	assert.Contains(t, out, "Link created successfully.")

	out, err = execute(t, roots, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Id: 1")
	assert.Contains(t, out, "Original path: "+dir)

	out, err = execute(t, roots, "", "l", "--format", "json")
	require.NoError(t, err)

	var dumped registry.ManagedLinkList
	require.NoError(t, json.Unmarshal([]byte(out), &dumped))
	require.Equal(t, 1, dumped.Len())

	out, err = execute(t, roots, "", "r", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed link 1")

	out, err = execute(t, roots, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No managed links.")

	_, err = execute(t, roots, "n\ny\n", "add", dir, "/symlinks")
	require.NoError(t, err)

	links, err := registry.Load(store.New(roots))
	require.NoError(t, err)
	require.Equal(t, 1, links.Len())
	assert.Equal(t, uint32(2), links.ManagedLinks[0].ID)

	log, err := store.New(roots).Path(store.RoleData, runlog.FileName).ReadFile()
	require.NoError(t, err)
	assert.Contains(t, string(log), "Created link with ID 2\n")
}

func TestAddDeclined(t *testing.T) {
	requireRootMount(t)

	roots := store.NewRoots(t.TempDir())
	out, err := execute(t, roots, "n\nn\n", "add", originalDir(t), "/symlinks")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	links, err := registry.Load(store.New(roots))
	require.NoError(t, err)
	assert.Equal(t, 0, links.Len())
}

func TestRemoveUnknown(t *testing.T) {
	_, err := execute(t, store.NewRoots(t.TempDir()), "", "remove", "3")
	require.ErrorIs(t, err, registry.ErrLinkNotFound)

	_, err = execute(t, store.NewRoots(t.TempDir()), "", "remove", "abc")
	require.Error(t, err)
}

func TestCorruptConfigDeclined(t *testing.T) {
	roots := store.NewRoots(t.TempDir())
	s := store.New(roots)
	require.NoError(t, s.Write(store.RoleConfig, config.FileName, "garbage"))

	_, err := execute(t, roots, "n\n", "list")
	require.ErrorIs(t, err, config.ErrConfig)

	exists, err := s.Path(store.RoleData, registry.FileName).Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCorruptConfigRegenerated(t *testing.T) {
	roots := store.NewRoots(t.TempDir())
	s := store.New(roots)
	require.NoError(t, s.Write(store.RoleConfig, config.FileName, "garbage"))

	out, err := execute(t, roots, "y\n", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_symlink_dir")
}

func TestHelp(t *testing.T) {
	for _, action := range []string{"help", "h"} {
		out, err := execute(t, store.NewRoots(t.TempDir()), "", action)
		require.NoError(t, err)
		assert.Contains(t, out, "add <original_path> [symlink_path]")
	}
}

func TestConfigPath(t *testing.T) {
	roots := store.NewRoots(t.TempDir())

	out, err := execute(t, roots, "", "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, roots.Config.Join(config.FileName).String())
	assert.Contains(t, out, roots.Data.Join(registry.FileName).String())
}

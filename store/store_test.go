package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name" toml:"name"`
	Count int    `json:"count" toml:"count"`
}

func (record) Default() record {
	return record{Name: "default", Count: 1}
}

func newStore(t *testing.T) *Store {
	return New(NewRoots(t.TempDir()))
}

func TestLoadMissingCreatesDefault(t *testing.T) {
	for _, name := range []string{"record.json", "record.toml"} {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			r, err := Load[record](s, RoleData, name)
			require.NoError(t, err)
			require.Equal(t, record{}.Default(), r)

			require.FileExists(t, s.Path(RoleData, name).String())

			again, err := Load[record](s, RoleData, name)
			require.NoError(t, err)
			require.Equal(t, r, again)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"record.json", "record.toml"} {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			want := record{Name: "links", Count: 3}

			require.NoError(t, Save(s, RoleConfig, name, want))

			got, err := Load[record](s, RoleConfig, name)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestLoadCorruptFileFails(t *testing.T) {
	s := newStore(t)
	path := s.Path(RoleConfig, "record.json")

	require.NoError(t, path.Parent().MkdirAll(0755))
	require.NoError(t, path.WriteFile([]byte("{not json"), 0644))

	_, err := Load[record](s, RoleConfig, "record.json")
	require.ErrorIs(t, err, ErrDecode)

	data, err := os.ReadFile(path.String())
	require.NoError(t, err)
	require.Equal(t, "{not json", string(data))
}

func TestLoadWrongShapeFails(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Write(RoleData, "record.json", `{"count": "three"}`))

	_, err := Load[record](s, RoleData, "record.json")
	require.ErrorIs(t, err, ErrDecode)
}

func TestRolesAreSeparate(t *testing.T) {
	s := newStore(t)

	require.NoError(t, Save(s, RoleConfig, "record.json", record{Name: "config"}))
	require.NoError(t, Save(s, RoleData, "record.json", record{Name: "data"}))

	c, err := Load[record](s, RoleConfig, "record.json")
	require.NoError(t, err)
	d, err := Load[record](s, RoleData, "record.json")
	require.NoError(t, err)

	assert.Equal(t, "config", c.Name)
	assert.Equal(t, "data", d.Name)
	assert.NotEqual(t, s.Path(RoleConfig, "record.json"), s.Path(RoleData, "record.json"))
}

func TestAppendAndWrite(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Append(RoleData, "run.log", "one\n"))
	require.NoError(t, s.Append(RoleData, "run.log", "two\n"))

	data, err := s.Path(RoleData, "run.log").ReadFile()
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(data))

	require.NoError(t, s.Write(RoleData, "run.log", ""))

	data, err = s.Path(RoleData, "run.log").ReadFile()
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestSaveFailsWhenRootIsAFile(t *testing.T) {
	base := t.TempDir()
	roots := NewRoots(base)
	require.NoError(t, roots.Data.WriteFile([]byte("in the way"), 0644))

	err := Save(New(roots), RoleData, "record.json", record{})
	require.ErrorIs(t, err, ErrIO)
}

func TestCodecFor(t *testing.T) {
	assert.Equal(t, TOML, CodecFor("config.toml"))
	assert.Equal(t, TOML, CodecFor("CONFIG.TOML"))
	assert.Equal(t, JSON, CodecFor("config.json"))
	assert.Equal(t, JSON, CodecFor("lastRun.log"))
}

package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cptools/internal/adapters/state"
	"go.trai.ch/cptools/internal/core/domain"
)

func TestStore_LoadEmpty(t *testing.T) {
	store := state.NewStore(t.TempDir())

	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	active, err := store.Active()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestStore_SaveAndLoad(t *testing.T) {
	project := t.TempDir()
	store := state.NewStore(project)

	want := domain.ConfigState{
		BuildType: domain.BuildDebug,
		Family:    domain.FamilyGCC,
		PCH:       domain.PCHOn,
		BuildDir:  filepath.Join(project, "build", "gcc-Debug"),
	}
	require.NoError(t, store.Save(want))

	data, err := os.ReadFile(filepath.Join(project, ".cptools", "config_state"))
	require.NoError(t, err)
	assert.Equal(t, "Debug:gcc:on:"+want.BuildDir+"\n", string(data))

	// A fresh store reads what the first one wrote.
	got, err := state.NewStore(project).Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_SaveReplaces(t *testing.T) {
	project := t.TempDir()
	store := state.NewStore(project)

	require.NoError(t, store.Save(domain.ConfigState{
		BuildType: domain.BuildDebug, Family: domain.FamilyGCC, PCH: domain.PCHOn, BuildDir: "/b/gcc-Debug",
	}))
	require.NoError(t, store.Save(domain.ConfigState{
		BuildType: domain.BuildRelease, Family: domain.FamilyClang, PCH: domain.PCHOff, BuildDir: "/b/clang-Release",
	}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.FamilyClang, got.Family)
	assert.Equal(t, "/b/clang-Release", got.BuildDir)

	entries, err := os.ReadDir(filepath.Join(project, ".cptools"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_LoadCorrupt(t *testing.T) {
	project := t.TempDir()
	dir := filepath.Join(project, ".cptools")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config_state"), []byte("Debug:msvc:on:/b\n"), 0o600))

	_, err := state.NewStore(project).Load()
	require.ErrorContains(t, err, domain.ErrStateCorrupt.Error())
}

func TestStore_Active(t *testing.T) {
	project := t.TempDir()
	store := state.NewStore(project)

	require.NoError(t, store.SetActive("/p/build/clang-Sanitize"))

	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, "/p/build/clang-Sanitize", active)

	require.ErrorContains(t, store.SetActive(""), domain.ErrInvalidArgument.Error())
}

func TestStore_Clear(t *testing.T) {
	project := t.TempDir()
	store := state.NewStore(project)

	require.NoError(t, store.Save(domain.ConfigState{
		BuildType: domain.BuildDebug, Family: domain.FamilyGCC, PCH: domain.PCHOff, BuildDir: "/b/gcc-Debug",
	}))
	require.NoError(t, store.SetActive("/b/gcc-Debug"))

	require.NoError(t, store.Clear())
	// Clearing twice is fine.
	require.NoError(t, store.Clear())

	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	active, err := store.Active()
	require.NoError(t, err)
	assert.Empty(t, active)
}

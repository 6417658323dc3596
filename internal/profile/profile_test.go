package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_Paths(t *testing.T) {
	root := t.TempDir()
	data := New(root, "laptop")

	assert.Equal(t, filepath.Join(root, "laptop"), data.Dir())
	assert.Equal(t, filepath.Join(root, "laptop", "config.ini"), data.Path(ConfigFile))
}

func TestSeedDataFiles(t *testing.T) {
	data := New(t.TempDir(), "default")
	require.NoError(t, data.EnsureDir())

	require.NoError(t, data.SeedDataFiles())

	include, err := os.ReadFile(data.Path(IncludeFile))
	require.NoError(t, err)
	assert.Contains(t, string(include), "/home")

	exclude, err := os.ReadFile(data.Path(ExcludeFile))
	require.NoError(t, err)
	assert.Contains(t, string(exclude), "/var/tmp/*")

	styles, err := os.ReadFile(data.Path(StylesFile))
	require.NoError(t, err)
	assert.Contains(t, string(styles), `STYLE="monokai"`)
}

func TestSeedDataFiles_DoesNotOverwrite(t *testing.T) {
	data := New(t.TempDir(), "default")
	require.NoError(t, data.EnsureDir())
	require.NoError(t, os.WriteFile(data.Path(IncludeFile), []byte("/custom\n"), 0o600))

	require.NoError(t, data.SeedDataFiles())

	include, err := os.ReadFile(data.Path(IncludeFile))
	require.NoError(t, err)
	assert.Equal(t, "/custom\n", string(include))
}

func TestList_DefaultFirst(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"work", "default", "laptop"} {
		require.NoError(t, New(root, name).EnsureDir())
	}

	names, err := List(root)

	require.NoError(t, err)
	assert.Equal(t, []string{"default", "laptop", "work"}, names)
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, New(root, "old").EnsureDir())

	require.NoError(t, Remove(root, []string{"old"}))
	assert.NoDirExists(t, filepath.Join(root, "old"))
}

func TestRemove_UnknownProfile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, New(root, "real").EnsureDir())

	err := Remove(root, []string{"real", "ghost"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ghost" does not exist`)
	// Nothing is removed when any named profile is missing.
	assert.DirExists(t, filepath.Join(root, "real"))
}

package dotcargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	root := t.TempDir()

	store, err := Load(root)
	require.NoError(t, err)

	_, ok := store.DefaultTarget()
	assert.False(t, ok)
}

func TestLoadMalformedFileFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".cargo"), 0755))
	require.NoError(t, os.WriteFile(Path(root), []byte("build = {{{"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestSetDefaultTargetAndWrite(t *testing.T) {
	root := t.TempDir()

	store, err := Load(root)
	require.NoError(t, err)
	store.SetDefaultTarget("x86_64-unknown-linux-gnu")
	require.NoError(t, store.Write())

	reloaded, err := Load(root)
	require.NoError(t, err)
	triple, ok := reloaded.DefaultTarget()
	require.True(t, ok)
	assert.Equal(t, "x86_64-unknown-linux-gnu", triple)
}

func TestWritePreservesForeignKeys(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".cargo"), 0755))
	existing := `
[build]
jobs = 4

[net]
git-fetch-with-cli = true

[alias]
b = "build --release"
`
	require.NoError(t, os.WriteFile(Path(root), []byte(existing), 0644))

	store, err := Load(root)
	require.NoError(t, err)
	store.SetDefaultTarget("aarch64-apple-darwin")
	require.NoError(t, store.Write())

	data, err := os.ReadFile(Path(root))
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &tree))

	build := tree["build"].(map[string]interface{})
	assert.Equal(t, "aarch64-apple-darwin", build["target"])
	assert.EqualValues(t, 4, build["jobs"], "foreign key under [build] must survive")

	net := tree["net"].(map[string]interface{})
	assert.Equal(t, true, net["git-fetch-with-cli"])

	alias := tree["alias"].(map[string]interface{})
	assert.Equal(t, "build --release", alias["b"])
}

func TestSetTargetLinker(t *testing.T) {
	root := t.TempDir()

	store, err := Load(root)
	require.NoError(t, err)
	store.SetTargetLinker("aarch64-linux-android", "/ndk/bin/aarch64-linux-android24-clang")
	store.SetTargetLinker("aarch64-linux-android", "/ndk/bin/updated-clang")
	require.NoError(t, store.Write())

	data, err := os.ReadFile(Path(root))
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, toml.Unmarshal(data, &tree))

	targets := tree["target"].(map[string]interface{})
	entry := targets["aarch64-linux-android"].(map[string]interface{})
	assert.Equal(t, "/ndk/bin/updated-clang", entry["linker"])
}

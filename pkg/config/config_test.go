package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadTomlWithDefaults(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "mobinit.toml", `
[app]
name = "demo"
identifier = "com.example.demo"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.App.Name)
	assert.Equal(t, "demo", cfg.App.StylizedName, "stylized name defaults to name")
	assert.Equal(t, "com.example.demo", cfg.App.Identifier)
	assert.Equal(t, "assets", cfg.App.AssetDir, "asset dir comes from defaults")
	assert.Equal(t, 24, cfg.Android.MinSdkVersion)
	assert.Equal(t, "13.0", cfg.Apple.IosVersion)

	root, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.App.RootDir)
	assert.Equal(t, filepath.Join(root, "assets"), cfg.AssetDirPath())
}

func TestLoadYaml(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "mobinit.yaml", `
app:
  name: demo
  stylized-name: "Demo!"
  identifier: com.example.demo
  asset-dir: static
android:
  min-sdk-version: 26
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Demo!", cfg.App.StylizedName)
	assert.Equal(t, "static", cfg.App.AssetDir)
	assert.Equal(t, 26, cfg.Android.MinSdkVersion)
}

func TestLoadTomlPreferredOverYaml(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "mobinit.toml", `
[app]
name = "from-toml"
identifier = "com.example.demo"
`)
	writeProjectFile(t, dir, "mobinit.yaml", `
app:
  name: from-yaml
  identifier: com.example.demo
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-toml", cfg.App.Name)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "mobinit.toml", `
[app]
name = "demo"
identifier = "com.example.demo"
`)
	t.Setenv("MOBINIT_APP_IDENTIFIER", "org.override.demo")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "org.override.demo", cfg.App.Identifier)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing_name", `
[app]
identifier = "com.example.demo"
`},
		{"missing_identifier", `
[app]
name = "demo"
`},
		{"identifier_without_dot", `
[app]
name = "demo"
identifier = "demo"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectFile(t, dir, "mobinit.toml", tt.content)

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestDeriveMetadata(t *testing.T) {
	cfg := &Config{
		Android: AndroidConfig{Features: []string{"gps"}},
		Apple:   AppleConfig{Frameworks: []string{"WebKit"}},
	}

	md := DeriveMetadata(cfg)

	assert.Contains(t, md.Android.TargetTriples, "aarch64-linux-android")
	assert.Contains(t, md.Android.TargetTriples, "x86_64-linux-android")
	assert.Contains(t, md.Apple.TargetTriples, "aarch64-apple-ios")
	assert.Equal(t, []string{"gps"}, md.Android.Features)

	// Metadata is a copy, not a view.
	md.Android.Features[0] = "mutated"
	assert.Equal(t, "gps", cfg.Android.Features[0])
}

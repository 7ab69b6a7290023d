package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauri-community/mobinit/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:         "demo",
			StylizedName: "Demo",
			Identifier:   "com.example.demo",
			AssetDir:     "assets",
			RootDir:      "/projects/demo",
		},
		Android: config.AndroidConfig{MinSdkVersion: 24, Features: []string{"gps"}},
		Apple:   config.AppleConfig{IosVersion: "13.0", Frameworks: []string{"WebKit"}},
	}
}

func TestBuildIncludesFacets(t *testing.T) {
	ctx := Build(testConfig(), false)

	app, ok := ctx["app"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "com.example.demo", app["identifier"])
	assert.Equal(t, "/projects/demo", app["root-dir"])

	android, ok := ctx["android"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 24, android["min-sdk-version"])

	_, hasApple := ctx["apple"]
	assert.False(t, hasApple, "apple facet should be absent without iOS capability")
}

func TestBuildIncludesAppleWhenCapable(t *testing.T) {
	ctx := Build(testConfig(), true)

	apple, ok := ctx["apple"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "13.0", apple["ios-version"])
	assert.Equal(t, []interface{}{"WebKit"}, apple["frameworks"])
}

func TestSetBinary(t *testing.T) {
	ctx := Build(testConfig(), false)

	ctx.SetBinary("mobinit")
	assert.Equal(t, "mobinit", ctx[BinaryKey])

	ctx.SetBinary("")
	assert.Equal(t, "cargo", ctx[BinaryKey], "empty name falls back to cargo")
}

func TestRenderTreeUsesHelpers(t *testing.T) {
	// Covered end to end by the android/apple generator tests; here only the
	// string rendering path with the binary key.
	ctx := Build(testConfig(), false)
	ctx.SetBinary("mobinit")

	out, err := renderString("t", `{{index . "tauri-binary"}} for {{snakeCase (index .app "name")}}`, Funcs(ctx), ctx)
	require.NoError(t, err)
	assert.Equal(t, "mobinit for demo", out)
}

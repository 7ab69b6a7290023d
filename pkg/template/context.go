// Package template provides the rendering context and helper functions used
// to materialize platform project files.
package template

import (
	"errors"
	"fmt"

	"github.com/tauri-community/mobinit/pkg/config"
)

// BinaryKey is the context key holding the invoking binary's name. Generated
// build scripts shell back out through it.
const BinaryKey = "tauri-binary"

// ErrMissingContextField is returned when a helper needs a context field
// (app.root-dir) that is absent or not a string.
var ErrMissingContextField = errors.New("missing template context field")

// Context is the data handed to the rendering engine: serialized views of the
// configuration facets plus the invoking binary name.
type Context map[string]interface{}

// Build constructs the context from a Config. The apple facet is only
// included when iOS projects can be generated on this host.
func Build(cfg *config.Config, includeApple bool) Context {
	ctx := Context{
		"app": map[string]interface{}{
			"name":          cfg.App.Name,
			"stylized-name": cfg.App.StylizedName,
			"identifier":    cfg.App.Identifier,
			"asset-dir":     cfg.App.AssetDir,
			"root-dir":      cfg.App.RootDir,
		},
		"android": map[string]interface{}{
			"min-sdk-version": cfg.Android.MinSdkVersion,
			"features":        toInterfaceSlice(cfg.Android.Features),
		},
	}
	if includeApple {
		ctx["apple"] = map[string]interface{}{
			"development-team": cfg.Apple.DevelopmentTeam,
			"ios-version":      cfg.Apple.IosVersion,
			"frameworks":       toInterfaceSlice(cfg.Apple.Frameworks),
		}
	}
	return ctx
}

// SetBinary records the invoking binary name under BinaryKey. An empty name
// falls back to "cargo" so generated scripts always have something to call.
func (c Context) SetBinary(name string) {
	if name == "" {
		name = "cargo"
	}
	c[BinaryKey] = name
}

// appRoot pulls app.root-dir out of the context for the path helpers.
func (c Context) appRoot() (string, error) {
	app, ok := c["app"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: app", ErrMissingContextField)
	}
	root, ok := app["root-dir"].(string)
	if !ok || root == "" {
		return "", fmt.Errorf("%w: app.root-dir", ErrMissingContextField)
	}
	return root, nil
}

func toInterfaceSlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

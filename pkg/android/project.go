package android

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/beevik/etree"

	"github.com/tauri-community/mobinit/pkg/config"
	"github.com/tauri-community/mobinit/pkg/dotcargo"
	"github.com/tauri-community/mobinit/pkg/logging"
	"github.com/tauri-community/mobinit/pkg/template"
)

//go:embed all:templates
var templatesFS embed.FS

// ProjectDir is where the generated Android project lives, relative to the
// project root.
const ProjectDir = "gen/android"

// Gen materializes the Android Studio project under the app root and records
// the Android compilation targets in the dot-cargo store.
func Gen(cfg *config.Config, metadata config.AndroidMetadata, env *Env, ctx template.Context, store *dotcargo.Store) error {
	logger := logging.GetLogger("android")
	dest := filepath.Join(cfg.App.RootDir, ProjectDir)

	if err := template.RenderTree(templatesFS, "templates", dest, ctx); err != nil {
		return fmt.Errorf("render android project: %w", err)
	}

	if err := writeMainActivity(cfg, dest); err != nil {
		return err
	}

	manifest := filepath.Join(dest, "app", "src", "main", "AndroidManifest.xml")
	if err := patchManifest(manifest, cfg); err != nil {
		return fmt.Errorf("patch manifest: %w", err)
	}

	for _, triple := range metadata.TargetTriples {
		store.SetTargetLinker(triple, ndkLinker(env.NdkRoot, triple, cfg.Android.MinSdkVersion))
	}

	logger.Info().Str("dest", dest).Msg("Generated Android project")
	return nil
}

// writeMainActivity places MainActivity.kt under the package directory
// derived from the app identifier. The directory layout depends on config
// values, so this file is written in code rather than through the tree walk.
func writeMainActivity(cfg *config.Config, dest string) error {
	packageDir := strings.ReplaceAll(cfg.App.Identifier, ".", string(filepath.Separator))
	dir := filepath.Join(dest, "app", "src", "main", "java", packageDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create package directory: %w", err)
	}

	body := fmt.Sprintf(`package %s

class MainActivity : TauriActivity() {
  companion object {
    init {
      System.loadLibrary(%q)
    }
  }
}
`, cfg.App.Identifier, template.SnakeCase(cfg.App.Name)+"_lib")

	return os.WriteFile(filepath.Join(dir, "MainActivity.kt"), []byte(body), 0644)
}

// patchManifest enforces the package identifier and minimum SDK on the
// rendered manifest. Template output is a starting point; these two values
// must match the configuration exactly.
func patchManifest(path string, cfg *config.Config) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return err
	}

	root := doc.Root()
	if root == nil || root.Tag != "manifest" {
		return fmt.Errorf("%s has no manifest root element", path)
	}
	root.CreateAttr("package", cfg.App.Identifier)

	usesSdk := root.FindElement("uses-sdk")
	if usesSdk == nil {
		usesSdk = root.CreateElement("uses-sdk")
	}
	usesSdk.CreateAttr("android:minSdkVersion", fmt.Sprintf("%d", cfg.Android.MinSdkVersion))

	doc.Indent(4)
	return doc.WriteToFile(path)
}

// ndkLinker builds the path to the NDK clang wrapper for a target triple.
func ndkLinker(ndkRoot, triple string, minSdk int) string {
	// The NDK names the armv7 wrapper differently from the rust triple.
	clangTriple := triple
	if triple == "armv7-linux-androideabi" {
		clangTriple = "armv7a-linux-androideabi"
	}

	hostTag := runtime.GOOS + "-x86_64"
	if runtime.GOOS == "darwin" {
		hostTag = "darwin-x86_64"
	}

	return filepath.Join(
		ndkRoot, "toolchains", "llvm", "prebuilt", hostTag, "bin",
		fmt.Sprintf("%s%d-clang", clangTriple, minSdk),
	)
}

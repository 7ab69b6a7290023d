// Package mobile implements the mobile init sequence: an ordered run of
// side-effecting steps that turns an app project into a working mobile build
// environment. Steps execute strictly in order; the only failure that does
// not abort the run is a fixable Android SDK/NDK absence, which is reported
// and skipped.
package mobile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tauri-community/mobinit/pkg/android"
	"github.com/tauri-community/mobinit/pkg/apple"
	"github.com/tauri-community/mobinit/pkg/config"
	"github.com/tauri-community/mobinit/pkg/dotcargo"
	"github.com/tauri-community/mobinit/pkg/errors"
	"github.com/tauri-community/mobinit/pkg/logging"
	"github.com/tauri-community/mobinit/pkg/platform"
	"github.com/tauri-community/mobinit/pkg/report"
	"github.com/tauri-community/mobinit/pkg/shell"
	"github.com/tauri-community/mobinit/pkg/template"
)

// Target selects the platform to initialize.
type Target int

const (
	TargetAndroid Target = iota
	TargetIos
)

func (t Target) String() string {
	if t == TargetIos {
		return "ios"
	}
	return "android"
}

// ParseTarget maps a CLI argument to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "android":
		return TargetAndroid, nil
	case "ios":
		return TargetIos, nil
	default:
		return TargetAndroid, fmt.Errorf("unknown target %q (expected android or ios)", s)
	}
}

// AndroidEnvFn discovers the Android build environment.
type AndroidEnvFn func() (*android.Env, *android.EnvError)

// AndroidGenFn generates the Android project and may mutate the dot-cargo store.
type AndroidGenFn func(cfg *config.Config, metadata config.AndroidMetadata, env *android.Env, tmplCtx template.Context, store *dotcargo.Store) error

// AppleGenFn generates the Xcode project.
type AppleGenFn func(ctx context.Context, cfg *config.Config, metadata config.AppleMetadata, tmplCtx template.Context, runner shell.Runner, opts apple.GenOptions) error

// Options configure one init run. Zero values pick the real collaborators;
// the function fields exist so the sequence is testable without an SDK or a
// rust toolchain installed.
type Options struct {
	Target Target

	// Dir is the project root. Empty means the current working directory.
	Dir string

	NonInteractive bool
	SkipDevTools   bool
	ReinstallDeps  bool
	OpenInEditor   bool

	// CanGenerateIosProjects gates the iOS branch. Resolve it with
	// platform.CanGenerateIosProjects outside of tests.
	CanGenerateIosProjects bool

	// BinaryName is recorded in the template context for generated build
	// scripts. Empty means the invoking binary's base name.
	BinaryName string

	Runner  shell.Runner
	Printer *report.Printer

	LoadConfig func(dir string) (*config.Config, error)
	AndroidEnv AndroidEnvFn
	AndroidGen AndroidGenFn
	AppleGen   AppleGenFn
}

func (o *Options) fillDefaults() {
	if o.Dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			o.Dir = cwd
		} else {
			o.Dir = "."
		}
	}
	if o.BinaryName == "" {
		o.BinaryName = filepath.Base(os.Args[0])
	}
	if o.Runner == nil {
		o.Runner = shell.CmdRunner{}
	}
	if o.Printer == nil {
		o.Printer = report.NewPrinter()
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.AndroidEnv == nil {
		o.AndroidEnv = android.NewEnv
	}
	if o.AndroidGen == nil {
		o.AndroidGen = android.Gen
	}
	if o.AppleGen == nil {
		o.AppleGen = apple.Gen
	}
}

// Exec runs the init sequence and returns the loaded Config on success.
// Already-completed steps are never rolled back on failure.
func Exec(ctx context.Context, opts Options) (*config.Config, error) {
	opts.fillDefaults()
	logger := logging.GetLogger("mobile.init")

	cfg, err := opts.LoadConfig(opts.Dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid tauri configuration")
	}
	metadata := config.DeriveMetadata(cfg)
	logger.Debug().Str("target", opts.Target.String()).Str("root", cfg.App.RootDir).Msg("Configuration loaded")

	assetDir := cfg.AssetDirPath()
	if info, statErr := os.Stat(assetDir); statErr != nil || !info.IsDir() {
		if err := os.MkdirAll(assetDir, 0755); err != nil {
			return nil, errors.Wrap(err, errors.ErrAssetDirCreation, "failed to create asset dir").
				WithDetail("path", assetDir)
		}
	}

	if !opts.SkipDevTools && shell.CommandPresent("code") {
		args := []string{"--install-extension", "vadimcn.vscode-lldb"}
		if opts.NonInteractive {
			args = append(args, "--force")
		}
		if _, err := opts.Runner.Run(ctx, "code", args, shell.RunOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.ErrLldbExtensionInstall, "failed to install LLDB VS Code extension")
		}
	}

	store, err := dotcargo.Load(cfg.App.RootDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDotCargoLoad, "failed to load .cargo/config.toml")
	}

	triple, err := platform.HostTriple(ctx, opts.Runner)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrHostTripleDetection, "failed to detect host target triple")
	}
	// Builds that omit --target fight over the build cache with builds that
	// use it; pinning build.target keeps plain builds and mobile builds from
	// invalidating each other.
	store.SetDefaultTarget(triple)

	tmplCtx := template.Build(cfg, opts.CanGenerateIosProjects)
	tmplCtx.SetBinary(opts.BinaryName)

	switch opts.Target {
	case TargetAndroid:
		env, envErr := opts.AndroidEnv()
		if envErr != nil {
			if !envErr.SdkOrNdkIssue() {
				return nil, errors.Wrap(envErr, errors.ErrAndroidEnv, "failed to initialize Android environment")
			}
			opts.Printer.Print(report.ActionRequired(
				"Unable to initialize Android environment; Android support won't be usable until you fix the issue below and re-run init!",
				envErr.Remediation(),
			))
			logger.Warn().Err(envErr).Msg("Skipping Android project generation")
		} else if err := opts.AndroidGen(cfg, metadata.Android, env, tmplCtx, store); err != nil {
			return nil, errors.Wrap(err, errors.ErrAndroidInit, "failed to generate Android project")
		}
	case TargetIos:
		if opts.CanGenerateIosProjects {
			genOpts := apple.GenOptions{
				NonInteractive: opts.NonInteractive,
				SkipDevTools:   opts.SkipDevTools,
				ReinstallDeps:  opts.ReinstallDeps,
			}
			if err := opts.AppleGen(ctx, cfg, metadata.Apple, tmplCtx, opts.Runner, genOpts); err != nil {
				return nil, errors.Wrap(err, errors.ErrIosInit, "failed to generate Xcode project")
			}
		} else {
			logger.Debug().Msg("Host cannot generate Xcode projects, skipping iOS branch")
		}
	}

	if err := store.Write(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDotCargoWrite, "failed to write .cargo/config.toml")
	}

	opts.Printer.Print(report.Win(
		"Project generated successfully!",
		"Make cool apps! 🌻 🐕 🎉",
	))

	if opts.OpenInEditor {
		editor := shell.EditorCommand()
		if _, err := opts.Runner.Run(ctx, editor, []string{cfg.App.RootDir}, shell.RunOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.ErrOpenInEditor, "failed to open project in editor")
		}
	}

	return cfg, nil
}

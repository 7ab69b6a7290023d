// Package apple generates the Xcode project for an app. Generation only
// makes sense on hosts that can run Xcode tooling; the orchestrator gates
// the call on that capability.
package apple

import (
	"context"
	"embed"
	"fmt"
	"path/filepath"

	"github.com/tauri-community/mobinit/pkg/config"
	"github.com/tauri-community/mobinit/pkg/logging"
	"github.com/tauri-community/mobinit/pkg/shell"
	"github.com/tauri-community/mobinit/pkg/template"
)

//go:embed all:templates
var templatesFS embed.FS

// ProjectDir is where the generated Xcode project lives, relative to the
// project root.
const ProjectDir = "gen/apple"

// GenOptions carry the interactivity knobs the iOS generator honors.
type GenOptions struct {
	NonInteractive bool
	SkipDevTools   bool
	ReinstallDeps  bool
}

// Gen materializes the Xcode project under the app root. When ReinstallDeps
// is set and CocoaPods is available, dependencies are (re)installed through
// the runner; a missing pod binary silently skips that step.
func Gen(ctx context.Context, cfg *config.Config, metadata config.AppleMetadata, tmplCtx template.Context, runner shell.Runner, opts GenOptions) error {
	logger := logging.GetLogger("apple")
	dest := filepath.Join(cfg.App.RootDir, ProjectDir)

	if err := template.RenderTree(templatesFS, "templates", dest, tmplCtx); err != nil {
		return fmt.Errorf("render xcode project: %w", err)
	}

	if opts.ReinstallDeps && shell.CommandPresent("pod") {
		args := []string{"install"}
		if opts.NonInteractive {
			args = append(args, "--silent")
		}
		if _, err := runner.Run(ctx, "pod", args, shell.RunOptions{Dir: dest}); err != nil {
			return fmt.Errorf("pod install: %w", err)
		}
	}

	logger.Info().Str("dest", dest).Msg("Generated Xcode project")
	return nil
}

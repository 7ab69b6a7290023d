package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tauri-community/mobinit/pkg/mobile"
	"github.com/tauri-community/mobinit/pkg/platform"
)

func newInitCmd() *cobra.Command {
	var (
		ci             bool
		skipDevTools   bool
		reinstallDeps  bool
		openInEditor   bool
		nonInteractive bool
		projectDir     string
	)

	cmd := &cobra.Command{
		Use:   "init [android|ios]",
		Short: "Initialize a mobile project for the given target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := mobile.ParseTarget(args[0])
			if err != nil {
				return err
			}

			// CI environments never prompt, and neither does a piped run.
			if os.Getenv("CI") != "" {
				ci = true
			}
			if ci || !isatty.IsTerminal(os.Stdout.Fd()) {
				nonInteractive = true
			}

			_, err = mobile.Exec(cmd.Context(), mobile.Options{
				Target:                 target,
				Dir:                    projectDir,
				NonInteractive:         nonInteractive,
				SkipDevTools:           skipDevTools,
				ReinstallDeps:          reinstallDeps,
				OpenInEditor:           openInEditor,
				CanGenerateIosProjects: platform.CanGenerateIosProjects(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&ci, "ci", false, "Skip prompting for values")
	cmd.Flags().BoolVar(&skipDevTools, "skip-dev-tools", false, "Skip installing optional dev tools")
	cmd.Flags().BoolVar(&reinstallDeps, "reinstall-deps", false, "Reinstall platform dependencies")
	cmd.Flags().BoolVar(&openInEditor, "open", false, "Open the project in your editor after generation")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; assume defaults")
	cmd.Flags().StringVar(&projectDir, "project", "", "Project root (defaults to the current directory)")

	return cmd
}

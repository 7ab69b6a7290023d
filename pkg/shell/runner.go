// Package shell wraps the child processes mobinit spawns: editor tooling,
// platform toolchains and the compiler used for host triple detection.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/tauri-community/mobinit/pkg/logging"
)

// RunOptions control where a command runs and where its output goes.
type RunOptions struct {
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// RunResult captures the full output of a finished command.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// Runner executes external commands. The orchestrator takes a Runner rather
// than calling exec directly so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error)
}

// CmdRunner is the os/exec backed Runner used outside of tests.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	logger := logging.GetLogger("shell")
	logger.Debug().Str("command", command).Strs("args", args).Msg("Running command")

	cmd := exec.CommandContext(ctx, command, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	stdoutWriter := io.Writer(&stdoutBuf)
	if opts.Stdout != nil {
		stdoutWriter = io.MultiWriter(&stdoutBuf, opts.Stdout)
	}
	stderrWriter := io.Writer(&stderrBuf)
	if opts.Stderr != nil {
		stderrWriter = io.MultiWriter(&stderrBuf, opts.Stderr)
	}

	cmd.Stdout = stdoutWriter
	cmd.Stderr = stderrWriter

	err := cmd.Run()
	return RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}, err
}

var _ Runner = CmdRunner{}

// CommandPresent reports whether a command is available on PATH. Absence is
// a capability answer, never an error.
func CommandPresent(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// EditorCommand returns the command used to open a directory in the user's
// editor: $VISUAL, then $EDITOR, then VS Code.
func EditorCommand() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "code"
}

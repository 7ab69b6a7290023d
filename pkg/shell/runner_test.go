package shell

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdRunnerCapturesOutput(t *testing.T) {
	result, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", "echo out; echo err 1>&2"}, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
}

func TestCmdRunnerReportsFailure(t *testing.T) {
	_, err := CmdRunner{}.Run(context.Background(), "sh", []string{"-c", "exit 3"}, RunOptions{})
	assert.Error(t, err)
}

func TestCmdRunnerHonorsDir(t *testing.T) {
	dir := t.TempDir()
	result, err := CmdRunner{}.Run(context.Background(), "pwd", nil, RunOptions{Dir: dir})
	require.NoError(t, err)
	// Resolve symlinks: temp dirs may live behind one on some hosts.
	assert.Contains(t, string(result.Stdout), filepath.Base(dir))
}

func TestCommandPresent(t *testing.T) {
	assert.True(t, CommandPresent("sh"))
	assert.False(t, CommandPresent("definitely-not-a-real-command-9000"))
}

func TestEditorCommandPrecedence(t *testing.T) {
	t.Setenv("VISUAL", "vis")
	t.Setenv("EDITOR", "ed")
	assert.Equal(t, "vis", EditorCommand())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "ed", EditorCommand())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "code", EditorCommand())
}

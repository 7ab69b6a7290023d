package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixUnprefixRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		root string
		rel  string
	}{
		{"simple", "/home/user/app", "assets"},
		{"nested", "/home/user/app", "src/gen/android"},
		{"dot_segments", "/home/user/app", "src/./gen"},
		{"relative_root", "project", "assets/icons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := Prefix(tt.root, tt.rel)
			back, err := Unprefix(tt.root, full)
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.rel), back)
		})
	}
}

func TestPrefixAbsolutePathUnchanged(t *testing.T) {
	assert.Equal(t, "/etc/hosts", Prefix("/home/user/app", "/etc/hosts"))
}

func TestUnprefixRejectsOutsideRoot(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
	}{
		{"sibling", "/home/user/app", "/home/user/other/file"},
		{"parent", "/home/user/app", "/home/user"},
		{"traversal", "/home/user/app", "/home/user/app/../other"},
		{"relative_against_absolute_root", "/home/user/app", "assets"},
		{"unrelated_absolute", "/home/user/app", "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unprefix(tt.root, tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotUnderRoot)
		})
	}
}

func TestUnprefixRootItself(t *testing.T) {
	rel, err := Unprefix("/home/user/app", "/home/user/app")
	require.NoError(t, err)
	assert.Equal(t, ".", rel)
}

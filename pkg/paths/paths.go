// Package paths provides prefix/unprefix arithmetic for paths relative to a
// project root. Generated build scripts must carry root-relative paths, so
// Prefix and Unprefix are exact inverses for any path that stays inside the
// root.
package paths

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotUnderRoot is returned by Unprefix when the given path does not live
// inside the root directory.
var ErrNotUnderRoot = errors.New("path is not under the root directory")

// Prefix joins a relative path onto root. Absolute paths are returned
// unchanged apart from cleaning.
func Prefix(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// Unprefix strips the root prefix from path, producing a path relative to
// root. The check is purely lexical: any path that would escape the root
// (including relative paths when root is absolute) fails with ErrNotUnderRoot.
func Unprefix(root, path string) (string, error) {
	root = filepath.Clean(root)
	path = filepath.Clean(path)

	if filepath.IsAbs(root) != filepath.IsAbs(path) {
		return "", ErrNotUnderRoot
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", ErrNotUnderRoot
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrNotUnderRoot
	}
	return rel, nil
}

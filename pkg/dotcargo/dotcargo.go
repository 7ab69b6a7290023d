// Package dotcargo maintains the .cargo/config.toml build override file.
// The file is user territory: anything mobinit does not own is read into an
// untyped tree and written back untouched. mobinit only ever sets the default
// build target and adds per-target entries for the mobile toolchains.
package dotcargo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Relative location of the override file inside the project root.
const (
	dirName  = ".cargo"
	fileName = "config.toml"
)

// Store is the in-memory view of .cargo/config.toml.
type Store struct {
	root string
	tree map[string]interface{}
}

// Path returns the on-disk location of the override file.
func Path(root string) string {
	return filepath.Join(root, dirName, fileName)
}

// Load reads the override file for the project rooted at root. A missing file
// yields an empty store; a malformed one is an error.
func Load(root string) (*Store, error) {
	store := &Store{root: root, tree: map[string]interface{}{}}

	data, err := os.ReadFile(Path(root))
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Path(root), err)
	}

	if err := toml.Unmarshal(data, &store.tree); err != nil {
		return nil, fmt.Errorf("parse %s: %w", Path(root), err)
	}
	return store, nil
}

// SetDefaultTarget pins build.target to the given triple. Other keys under
// [build] are preserved.
func (s *Store) SetDefaultTarget(triple string) {
	build := s.subtree("build")
	build["target"] = triple
}

// DefaultTarget returns the pinned build.target, if any.
func (s *Store) DefaultTarget() (string, bool) {
	build, ok := s.tree["build"].(map[string]interface{})
	if !ok {
		return "", false
	}
	triple, ok := build["target"].(string)
	return triple, ok
}

// SetTargetLinker records the linker for a compilation target under
// [target.<triple>]. The generators use this to wire NDK toolchains.
func (s *Store) SetTargetLinker(triple, linker string) {
	targets := s.subtree("target")
	entry, ok := targets[triple].(map[string]interface{})
	if !ok {
		entry = map[string]interface{}{}
		targets[triple] = entry
	}
	entry["linker"] = linker
}

// Write persists the store, creating .cargo/ if needed. Foreign keys loaded
// from disk round-trip unchanged.
func (s *Store) Write() error {
	data, err := toml.Marshal(s.tree)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Path(s.root), err)
	}

	if err := os.MkdirAll(filepath.Join(s.root, dirName), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Join(s.root, dirName), err)
	}

	tmp := Path(s.root) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, Path(s.root))
}

func (s *Store) subtree(key string) map[string]interface{} {
	sub, ok := s.tree[key].(map[string]interface{})
	if !ok {
		sub = map[string]interface{}{}
		s.tree[key] = sub
	}
	return sub
}

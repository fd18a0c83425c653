// Package dotdir resolves the .mirra/ directory that holds the example
// callers' persistent configuration.
package dotdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the mirra directory.
	dirName = ".mirra"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path to an existing .mirra/ directory.
// Order of precedence is as follows:
//  1. Provided override (created if missing)
//  2. Local ./.mirra/ dir
//  3. Home ~/.mirra/ dir
//
// When none of these exist an empty string is returned so read-only callers
// never create directories as a side effect.
func (m *Manager) Target(overrideDir string) (string, error) {
	if overrideDir != "" {
		return m.ensure(overrideDir)
	}

	if dir, ok := m.localDir(); ok {
		return filepath.Abs(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return dir, nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("checking %s: %w", dir, err)
	}
}

// Ensure behaves like Target but falls back to creating ~/.mirra/ when no
// directory could be resolved. Used by commands that write configuration.
func (m *Manager) Ensure(overrideDir string) (string, error) {
	dir, err := m.Target(overrideDir)
	if err != nil || dir != "" {
		return dir, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return m.ensure(filepath.Join(home, dirName))
}

func (m *Manager) ensure(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating mirra directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}

// localDir checks whether a .mirra/ directory exists in the current
// working directory.
func (m *Manager) localDir() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	dir := filepath.Join(cwd, dirName)
	info, err := os.Stat(dir)
	return dir, err == nil && info.IsDir()
}

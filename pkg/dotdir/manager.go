// Package dotdir manages the .recruit/ and ~/.recruit directories.
//
// The directory holds config.toml and, unless configured otherwise, the saved
// person list.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the recruit directory.
	dirName = ".recruit"

	dirPerm = 0o755
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the target absolute path to a .recruit/ directory.
// Order of precedence is as follows:
//  1. Provided override
//  2. Local ./.recruit/ dir
//  3. Home ~/.recruit/ dir
//
// The chosen directory is created if it does not exist.
func (m *Manager) Target(overrideDir string) (string, error) {
	var dir string

	switch {
	case overrideDir != "":
		dir = overrideDir

	case m.localDirExists():
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = filepath.Join(cwd, dirName)

	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating recruit directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}

// Init creates a .recruit/ directory inside parent and returns its absolute
// path. It reports whether the directory already existed.
func (m *Manager) Init(parent string) (string, bool, error) {
	dir := filepath.Join(parent, dirName)

	existed := false
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return "", false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		existed = true
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", false, fmt.Errorf("creating recruit directory %s: %w", dir, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}
	return abs, existed, nil
}

// localDirExists checks whether a .recruit/ directory exists in the current
// working directory.
func (m *Manager) localDirExists() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(cwd, dirName))
	return err == nil && info.IsDir()
}

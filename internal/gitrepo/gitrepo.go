// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitrepo locates the enclosing git repository and its config files.
package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Find walks up from start until it reaches a directory containing .git and
// returns that directory. It fails when no parent is a repository root.
func Find(fs afero.Fs, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		info, err := fs.Stat(filepath.Join(dir, ".git"))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a git repository (or any of the parent directories): %s", start)
		}
		dir = parent
	}
}

// LocalConfigPath returns the per-repository config file for a repo root.
func LocalConfigPath(root string) string {
	return filepath.Join(root, ".git", "config")
}

// GlobalConfigPath returns the user-level git config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".gitconfig"), nil
}

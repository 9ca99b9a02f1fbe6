// Package home locates the fnol home directory (~/.fnol by default), which
// holds the config file and the inbox watched by `fnol watch`.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirName is the home directory name under the user's home.
const DefaultDirName = ".fnol"

// Dir is a resolved fnol home directory.
type Dir struct {
	root string
}

// New resolves the home directory. An empty path selects ~/.fnol.
func New(path string) (*Dir, error) {
	if path != "" {
		return &Dir{root: path}, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &Dir{root: filepath.Join(userHome, DefaultDirName)}, nil
}

// InboxPath is the default directory for `fnol watch`.
func (d *Dir) InboxPath() string { return filepath.Join(d.root, "inbox") }

// ConfigPath is the default config file location.
func (d *Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// ConfigExists reports whether ConfigPath holds a file.
func (d *Dir) ConfigExists() bool {
	info, err := os.Stat(d.ConfigPath())
	return err == nil && !info.IsDir()
}

// EnsureExists creates the home and inbox directories.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.InboxPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create inbox directory: %w", err)
	}
	return nil
}

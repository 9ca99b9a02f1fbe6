package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no user home directory: %v", err)
	}

	tests := []struct {
		name       string
		input      string
		wantConfig string
		wantInbox  string
	}{
		{"explicit path", "/srv/claims", "/srv/claims/config.yaml", "/srv/claims/inbox"},
		{
			"empty path uses default",
			"",
			filepath.Join(userHome, DefaultDirName, "config.yaml"),
			filepath.Join(userHome, DefaultDirName, "inbox"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := New(tt.input)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.input, err)
			}
			if got := dir.ConfigPath(); got != tt.wantConfig {
				t.Errorf("ConfigPath() = %s, want %s", got, tt.wantConfig)
			}
			if got := dir.InboxPath(); got != tt.wantInbox {
				t.Errorf("InboxPath() = %s, want %s", got, tt.wantInbox)
			}
		})
	}
}

func TestDir_EnsureExists(t *testing.T) {
	dir, err := New(filepath.Join(t.TempDir(), "fnol"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Running twice must be harmless.
	for i := 0; i < 2; i++ {
		if err := dir.EnsureExists(); err != nil {
			t.Fatalf("EnsureExists() call %d error = %v", i+1, err)
		}
	}

	info, err := os.Stat(dir.InboxPath())
	if err != nil || !info.IsDir() {
		t.Errorf("inbox should be a directory after EnsureExists: %v", err)
	}
}

func TestDir_ConfigExists(t *testing.T) {
	dir, _ := New(t.TempDir())

	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	if err := os.Mkdir(dir.ConfigPath(), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if dir.ConfigExists() {
		t.Error("a directory at the config path is not a config file")
	}
	if err := os.Remove(dir.ConfigPath()); err != nil {
		t.Fatalf("failed to remove directory: %v", err)
	}

	if err := os.WriteFile(dir.ConfigPath(), []byte("routing:\n  fast_track_threshold: 10000\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if !dir.ConfigExists() {
		t.Error("config should exist after it is written")
	}
}

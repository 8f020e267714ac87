// Package testutil provides test utilities and an in-memory desktop.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfigFile writes a config.yaml into a fresh temp dir and returns its path
func WriteConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return path
}

// Package testutil provides shared helpers for writing test fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content and returns its path.
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	return path
}

// CreateTestCSV writes a CSV fixture with the standard glossary header
// followed by the given data rows.
func CreateTestCSV(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()

	content := "source,target,case_sensitive\n"
	for _, row := range rows {
		content += row + "\n"
	}
	return CreateTestFile(t, dir, name, []byte(content))
}

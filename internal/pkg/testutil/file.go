package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// WriteTempFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := CreateTestFile(path, content); err != nil {
		t.Fatalf("%v", err)
	}
	return path
}

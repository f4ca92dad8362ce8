package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// ValidateOutputPath expands path and checks that its directory exists.
// An empty path is returned unchanged.
func ValidateOutputPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	expanded := ExpandPath(path)
	dir := filepath.Dir(expanded)
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("output directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output directory is not a directory: %s", dir)
	}
	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		return "", fmt.Errorf("output path is a directory: %s", expanded)
	}

	return expanded, nil
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved so that a binary linked into $PATH still finds resources
// installed next to its real location.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable path %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

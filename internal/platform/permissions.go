package platform

import (
	"os"
	"runtime"
)

// Chmod sets the permission bits of path. Windows has no Unix mode bits, so
// there it does nothing and reports success.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

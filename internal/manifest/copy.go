package manifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsjohnst/rave/internal/platform"
)

// ErrMissingArchive is returned when an archive is absent from the resource
// directory.
var ErrMissingArchive = errors.New("archive not found in resource directory")

// ArchivePerm is the mode applied to archives copied into a project.
const ArchivePerm os.FileMode = 0644

// Check is the outcome of looking up one archive in a resource directory.
type Check struct {
	Archive Archive
	Path    string
	Present bool
	Size    int64
	Err     error
}

// Verify reports, for every archive, whether it exists as a regular file in dir.
func Verify(dir string, archives []Archive) []Check {
	checks := make([]Check, 0, len(archives))
	for _, a := range archives {
		c := Check{Archive: a, Path: filepath.Join(dir, a.File)}
		info, err := os.Stat(c.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			c.Err = ErrMissingArchive
		case err != nil:
			c.Err = err
		case !info.Mode().IsRegular():
			c.Err = fmt.Errorf("%s is not a regular file", c.Path)
		default:
			c.Present = true
			c.Size = info.Size()
		}
		checks = append(checks, c)
	}
	return checks
}

// Missing returns the archives whose check failed.
func Missing(checks []Check) []Archive {
	var missing []Archive
	for _, c := range checks {
		if !c.Present {
			missing = append(missing, c.Archive)
		}
	}
	return missing
}

// CopyArchive copies a single archive from srcDir into dstDir, which must
// already exist. The destination is created exclusively and never overwritten.
func CopyArchive(srcDir, dstDir string, a Archive) error {
	src := filepath.Join(srcDir, a.File)
	dst := filepath.Join(dstDir, a.File)

	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", src, ErrMissingArchive)
		}
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, ArchivePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	// The umask may have narrowed the mode at creation time.
	if err := platform.Chmod(dst, ArchivePerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	return nil
}

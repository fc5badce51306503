//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsjohnst/rave/internal/manifest"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, so ~/.rave/config.yaml is sandboxed
	JarsDir    string // RAVE_JARS_DIR
	ProjectDir string // parent directory of generated robots
}

// setupTestEnv creates isolated temp directories, fills the jars directory
// with stand-ins for every bundled archive, and points the environment at them.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		JarsDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("RAVE_JARS_DIR", env.JarsDir)

	archives, err := manifest.Load()
	if err != nil {
		t.Fatalf("loading archive manifest: %v", err)
	}
	for _, a := range archives {
		writeFile(t, filepath.Join(env.JarsDir, a.File), "PK\x03\x04"+a.Name)
	}
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

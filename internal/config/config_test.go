package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/jsjohnst/rave/internal/platform"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestResolveJarsDirFlagWins(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Setenv("RAVE_JARS_DIR", filepath.Join(dir, "from-env"))
	Load()

	got, err := ResolveJarsDir(dir)
	if err != nil {
		t.Fatalf("ResolveJarsDir: %v", err)
	}
	if got != dir {
		t.Errorf("ResolveJarsDir = %q, want %q", got, dir)
	}
}

func TestResolveJarsDirFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())
	want := filepath.Join(t.TempDir(), "jars")
	t.Setenv("RAVE_JARS_DIR", want)
	Load()

	got, err := ResolveJarsDir("")
	if err != nil {
		t.Fatalf("ResolveJarsDir: %v", err)
	}
	if got != want {
		t.Errorf("ResolveJarsDir = %q, want %q", got, want)
	}
}

func TestResolveJarsDirDefaultsNextToExecutable(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAVE_JARS_DIR", "")
	Load()

	exeDir, err := platform.ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir: %v", err)
	}
	got, err := ResolveJarsDir("")
	if err != nil {
		t.Fatalf("ResolveJarsDir: %v", err)
	}
	want := filepath.Join(filepath.Dir(exeDir), "jars")
	if got != want {
		t.Errorf("ResolveJarsDir = %q, want %q", got, want)
	}
}

func TestSetPersistsValue(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	Load()

	jars := filepath.Join(home, "jars")
	if err := Set(KeyJarsDir, jars); err != nil {
		t.Fatalf("Set: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyJarsDir); got != jars {
		t.Errorf("Get(%s) after reload = %q, want %q", KeyJarsDir, got, jars)
	}
	if got := FilePath(); got != filepath.Join(home, ".rave", "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

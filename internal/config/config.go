package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jsjohnst/rave/internal/branding"
	"github.com/jsjohnst/rave/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// KeyJarsDir is the config key (and RAVE_JARS_DIR env var) naming the
// directory that holds the bundled jars.
const KeyJarsDir = "jars_dir"

// DefaultJarsDir is where the jars are installed relative to the binary's directory.
const DefaultJarsDir = "../jars"

// Dir returns the path to the config directory (~/.rave/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.rave/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolveJarsDir picks the jar directory: an explicit flag value wins, then
// the jars_dir setting (file or RAVE_JARS_DIR), then ../jars next to the
// installed binary. The result is absolute.
func ResolveJarsDir(flagValue string) (string, error) {
	if flagValue != "" {
		return absolute(flagValue)
	}
	if v := Get(KeyJarsDir); v != "" {
		return absolute(v)
	}
	exeDir, err := platform.ExecutableDir()
	if err != nil {
		return "", fmt.Errorf("resolving default jars directory: %w", err)
	}
	return filepath.Clean(filepath.Join(exeDir, DefaultJarsDir)), nil
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

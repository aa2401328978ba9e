package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in the configuration file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the CLI configuration, loaded from YAML.
type Config struct {
	// DataDir is where collections are stored. Defaults to the XDG data home.
	DataDir string `yaml:"dataDir"`
	// Currency is the default currency for new wallets.
	Currency string `yaml:"currency"`
	// Backend selects the storage backend: "file" or "sqlite".
	Backend string `yaml:"backend"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		DataDir:  filepath.Join(xdg.DataHome, "budgety"),
		Currency: "USD",
		Backend:  BackendFile,
	}
}

// loadConfFrom attempts to load the configuration from a specific location.
func loadConfFrom(file string) (Config, error) {
	conf := DefaultConfig()

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, fmt.Errorf("failed to load config %v: %w", file, err)
	}

	if err := yaml.Unmarshal(b, &conf); err != nil {
		return conf, fmt.Errorf("failed to unmarshal config %v: %w", file, err)
	}

	if conf.Backend != BackendFile && conf.Backend != BackendSQLite {
		return conf, fmt.Errorf("unknown backend %q in %v (want %q or %q)",
			conf.Backend, file, BackendFile, BackendSQLite)
	}
	return conf, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// LoadConfig loads the configuration from the "file" path provided - if empty,
// attempts the XDG config home, then a dotfile in the home directory, and
// finally falls back to defaults.
func LoadConfig(file string) (Config, error) {
	if file != "" {
		return loadConfFrom(file)
	}

	candidates := []string{
		filepath.Join(xdg.ConfigHome, "budgety", "config.yml"),
		filepath.Join(xdg.Home, ".budgety.yml"),
	}
	for _, candidate := range candidates {
		ok, err := fileExists(candidate)
		if err != nil {
			return DefaultConfig(), err
		}
		if ok {
			return loadConfFrom(candidate)
		}
	}
	return DefaultConfig(), nil
}

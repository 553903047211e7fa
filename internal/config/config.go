package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/unnarize/uvm/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// dotEnvFile is read from the working directory before the environment is consulted.
	dotEnvFile = ".env"
)

// Setting keys.
const (
	KeyManifest   = "manifest"
	KeyModulesDir = "modules_dir"
	KeyRemote     = "remote"
	KeyGit        = "git"
	KeyRetries    = "retries"
)

// Keys lists every recognised setting, in display order.
var Keys = []string{KeyManifest, KeyModulesDir, KeyRemote, KeyGit, KeyRetries}

// Dir returns the path to the uvm config directory (~/.uvm/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.uvm/config.yaml).
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
// It is safe to call more than once; each call starts from a clean slate.
func Load() {
	viper.Reset()

	// Variables already present in the environment win over .env entries.
	_ = godotenv.Load(dotEnvFile)

	viper.SetDefault(KeyManifest, branding.ManifestFile())
	viper.SetDefault(KeyModulesDir, branding.ModulesDir())
	viper.SetDefault(KeyRemote, branding.RemoteBaseURL())
	viper.SetDefault(KeyGit, "git")
	viper.SetDefault(KeyRetries, 0)

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

// ManifestPath returns the manifest file path, relative to the working directory
// unless configured as absolute.
func ManifestPath() string { return viper.GetString(KeyManifest) }

// ModulesRoot returns the directory dependencies are materialized under.
func ModulesRoot() string { return viper.GetString(KeyModulesDir) }

// RemoteBaseURL returns the base URL that dependency names are appended to.
func RemoteBaseURL() string { return viper.GetString(KeyRemote) }

// GitBinary returns the git executable name or path.
func GitBinary() string { return viper.GetString(KeyGit) }

// Retries returns how many extra clone attempts a failed fetch gets.
func Retries() int {
	n := viper.GetInt(KeyRetries)
	if n < 0 {
		return 0
	}
	return n
}

// IsKnownKey reports whether key is a recognised setting.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Only what the file already holds plus this key is written back, so
	// defaults and UVM_* overrides never end up persisted.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)

	return nil
}

// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool and point it at a
// different organisation without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	RemoteBaseURL string `yaml:"remote_base_url"`
	ManifestFile  string `yaml:"manifest_file"`
	ModulesDir    string `yaml:"modules_dir"`
	Language      string `yaml:"language"`
	SourceExt     string `yaml:"source_ext"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "uvm",
			DisplayName:   "Unnarize Verse Manager",
			Description:   "Package manager for Unnarize projects",
			HomeDir:       ".uvm",
			EnvPrefix:     "UVM",
			GoModule:      "github.com/unnarize/uvm",
			RemoteBaseURL: "https://github.com/unnarize",
			ManifestFile:  "uvmpackage.json",
			ModulesDir:    "umods",
			Language:      "Unnarize",
			SourceExt:     ".gi",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "uvm").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".uvm").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "UVM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RemoteBaseURL returns the default base URL dependencies are cloned from.
func RemoteBaseURL() string { load(); return defaults.RemoteBaseURL }

// ManifestFile returns the default manifest file name (e.g., "uvmpackage.json").
func ManifestFile() string { load(); return defaults.ManifestFile }

// ModulesDir returns the default modules root directory name (e.g., "umods").
func ModulesDir() string { load(); return defaults.ModulesDir }

// Language returns the name of the language the managed projects are written in.
func Language() string { load(); return defaults.Language }

// SourceExt returns the source file extension of that language, dot included.
func SourceExt() string { load(); return defaults.SourceExt }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("remote") → "UVM_REMOTE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

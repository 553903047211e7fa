package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"UVM_MANIFEST", "UVM_MODULES_DIR", "UVM_REMOTE", "UVM_GIT", "UVM_RETRIES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	Load()

	if got := ManifestPath(); got != "uvmpackage.json" {
		t.Errorf("ManifestPath() = %q, want uvmpackage.json", got)
	}
	if got := ModulesRoot(); got != "umods" {
		t.Errorf("ModulesRoot() = %q, want umods", got)
	}
	if got := RemoteBaseURL(); got != "https://github.com/unnarize" {
		t.Errorf("RemoteBaseURL() = %q", got)
	}
	if got := GitBinary(); got != "git" {
		t.Errorf("GitBinary() = %q, want git", got)
	}
	if got := Retries(); got != 0 {
		t.Errorf("Retries() = %d, want 0", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("UVM_REMOTE", "file:///srv/repos")
	t.Setenv("UVM_RETRIES", "2")
	Load()

	if got := RemoteBaseURL(); got != "file:///srv/repos" {
		t.Errorf("RemoteBaseURL() = %q, want file:///srv/repos", got)
	}
	if got := Retries(); got != 2 {
		t.Errorf("Retries() = %d, want 2", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(".env", []byte("UVM_MODULES_DIR=vendor_mods\n"), 0644); err != nil {
		t.Fatal(err)
	}
	Load()

	if got := ModulesRoot(); got != "vendor_mods" {
		t.Errorf("ModulesRoot() = %q, want vendor_mods", got)
	}
}

func TestNegativeRetriesClamp(t *testing.T) {
	isolate(t)
	t.Setenv("UVM_RETRIES", "-3")
	Load()
	if got := Retries(); got != 0 {
		t.Errorf("Retries() = %d, want 0", got)
	}
}

func TestSetPersists(t *testing.T) {
	home := isolate(t)
	Load()

	if err := Set(KeyRemote, "https://git.example.com/org"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".uvm", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	Load()
	if got := Get(KeyRemote); got != "https://git.example.com/org" {
		t.Errorf("Get(remote) after reload = %q", got)
	}
}

func TestSetUnknownKey(t *testing.T) {
	isolate(t)
	Load()
	if err := Set("colour", "blue"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetWritesOnlyThatKey(t *testing.T) {
	home := isolate(t)
	t.Setenv("UVM_REMOTE", "https://transient.example")
	Load()

	if err := Set(KeyGit, "/usr/bin/git"); err != nil {
		t.Fatalf("Set(git): %v", err)
	}
	if err := Set(KeyRetries, "2"); err != nil {
		t.Fatalf("Set(retries): %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".uvm", "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, unwanted := range []string{"remote", "transient", "manifest", "modules_dir"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("config file contains %q:\n%s", unwanted, text)
		}
	}
	for _, want := range []string{"git: /usr/bin/git", "retries:"} {
		if !strings.Contains(text, want) {
			t.Errorf("config file missing %q:\n%s", want, text)
		}
	}

	// The running process sees the new value without a reload.
	if got := GitBinary(); got != "/usr/bin/git" {
		t.Errorf("GitBinary() = %q", got)
	}
}

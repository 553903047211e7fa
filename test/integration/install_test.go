//go:build integration

package integration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unnarize/uvm/internal/fetcher"
	"github.com/unnarize/uvm/internal/manifest"
)

func TestInstallContinuesPastMissingRepo(t *testing.T) {
	env := setupTestEnv(t)
	setupRemoteRepo(t, env, "present", map[string]string{"main.gi": "\n"})
	text := `{
  "name": "demo",
  "description": "keeps its place",
  "dependencies": ["ghost", "present"]
}`
	writeManifestFile(t, env, text)

	result, err := env.newInstaller(0).InstallAll(context.Background())
	if err != nil {
		t.Fatalf("InstallAll: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Name != "ghost" {
		t.Fatalf("Failed = %+v, want [ghost]", result.Failed)
	}
	if !errors.Is(result.Failed[0].Err, fetcher.ErrFetchFailed) {
		t.Errorf("failure err = %v, want ErrFetchFailed", result.Failed[0].Err)
	}
	if len(result.Installed) != 1 || result.Installed[0] != "present" {
		t.Errorf("Installed = %v", result.Installed)
	}

	assertFileNotExists(t, filepath.Join(env.ModulesDir(), "ghost"))
	assertFileExists(t, filepath.Join(env.ModulesDir(), "present", "main.gi"))

	data, err := os.ReadFile(env.ManifestPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Error("install rewrote the manifest")
	}
	if !strings.Contains(env.Out.String(), "✗ ghost") {
		t.Errorf("output:\n%s", env.Out.String())
	}
}

func TestInstallSkipsLocalModules(t *testing.T) {
	env := setupTestEnv(t)
	writeManifestFile(t, env, `{"name": "demo", "dependencies": ["offline"]}`)
	// No remote repo exists; only the local copy can satisfy the dependency.
	writeFile(t, filepath.Join(env.ModulesDir(), "offline", "main.gi"), "\n")

	result, err := env.newInstaller(0).InstallAll(context.Background())
	if err != nil {
		t.Fatalf("InstallAll: %v", err)
	}
	if len(result.AlreadyLocal) != 1 || len(result.Failed) != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestGetMissingRepoRetries(t *testing.T) {
	env := setupTestEnv(t)
	writeManifestFile(t, env, `{"name": "demo", "dependencies": []}`)

	_, err := env.newInstaller(2).Get(context.Background(), "ghost")
	if !errors.Is(err, fetcher.ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed", err)
	}
	assertFileNotExists(t, filepath.Join(env.ModulesDir(), "ghost"))
	if deps := loadDeps(t, env); len(deps) != 0 {
		t.Errorf("deps = %v after failed get", deps)
	}
}

func TestGetRespectsManagerConstraint(t *testing.T) {
	env := setupTestEnv(t)
	setupRemoteRepo(t, env, "present", map[string]string{"main.gi": "\n"})
	writeManifestFile(t, env, `{"name": "demo", "uvm": ">= 2.0.0", "dependencies": []}`)

	_, err := env.newInstaller(0).Get(context.Background(), "present")
	if !errors.Is(err, manifest.ErrIncompatibleManager) {
		t.Fatalf("err = %v, want ErrIncompatibleManager", err)
	}
	assertFileNotExists(t, filepath.Join(env.ModulesDir(), "present"))
}

func TestGetPreservesUnrelatedKeys(t *testing.T) {
	env := setupTestEnv(t)
	setupRemoteRepo(t, env, "present", map[string]string{"main.gi": "\n"})
	writeManifestFile(t, env, `{
  "name": "demo",
  "scripts": {"build": "uvc main.gi",   "test": "uvc test.gi"},
  "dependencies": [],
  "license": "MIT"
}`)

	if _, err := env.newInstaller(0).Get(context.Background(), "present"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	data, err := os.ReadFile(env.ManifestPath())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, `{"build": "uvc main.gi",   "test": "uvc test.gi"}`) {
		t.Errorf("scripts value was reformatted:\n%s", text)
	}
	if strings.Index(text, `"scripts"`) > strings.Index(text, `"dependencies"`) ||
		strings.Index(text, `"dependencies"`) > strings.Index(text, `"license"`) {
		t.Errorf("key order changed:\n%s", text)
	}
	if deps := loadDeps(t, env); len(deps) != 1 || deps[0] != "present" {
		t.Errorf("deps = %v", deps)
	}
}

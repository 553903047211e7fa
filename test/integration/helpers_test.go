//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unnarize/uvm/internal/fetcher"
	"github.com/unnarize/uvm/internal/installer"
	"github.com/unnarize/uvm/internal/logging"
	"github.com/unnarize/uvm/internal/manifest"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // working directory holding uvmpackage.json and umods/
	RemoteDir  string // stands in for the remote host; holds <name>.git repos
	Out        bytes.Buffer
}

// setupTestEnv creates isolated temp directories and makes the project
// directory the working directory. Tests are skipped when git is missing.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		RemoteDir:  t.TempDir(),
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Chdir(env.ProjectDir)
	return env
}

// ManifestPath returns the project's manifest path.
func (e *testEnv) ManifestPath() string {
	return filepath.Join(e.ProjectDir, "uvmpackage.json")
}

// ModulesDir returns the project's modules root.
func (e *testEnv) ModulesDir() string {
	return filepath.Join(e.ProjectDir, "umods")
}

// RemoteURL is the base URL dependency names are appended to.
func (e *testEnv) RemoteURL() string {
	return "file://" + filepath.ToSlash(e.RemoteDir)
}

// newInstaller returns an Installer cloning from the env's remote with git.
func (e *testEnv) newInstaller(retries int) *installer.Installer {
	f := fetcher.New(e.ModulesDir(), e.RemoteURL(), logging.Discard())
	f.Retries = retries
	return &installer.Installer{
		ManifestPath: e.ManifestPath(),
		Fetcher:      f,
		Version:      "0.1.0",
		Out:          &e.Out,
		Logger:       logging.Discard(),
	}
}

// setupRemoteRepo creates a committed git repository at RemoteDir/<name>.git
// containing files, plus editor and VCS clutter that fetch should strip.
func setupRemoteRepo(t *testing.T, env *testEnv, name string, files map[string]string) string {
	t.Helper()

	repo := filepath.Join(env.RemoteDir, name+".git")
	for path, content := range files {
		writeFile(t, filepath.Join(repo, path), content)
	}
	writeFile(t, filepath.Join(repo, ".vscode", "settings.json"), "{}\n")

	git(t, repo, "init", "--quiet")
	git(t, repo, "add", "-A")
	git(t, repo, "-c", "user.name=uvm", "-c", "user.email=uvm@example.com", "commit", "--quiet", "-m", "initial")
	return repo
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

// writeManifestFile writes text as the project's manifest.
func writeManifestFile(t *testing.T, env *testEnv, text string) {
	t.Helper()
	writeFile(t, env.ManifestPath(), text)
}

// loadDeps returns the manifest's dependency list.
func loadDeps(t *testing.T, env *testEnv) []string {
	t.Helper()
	doc, err := manifest.Load(env.ManifestPath())
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	return doc.List()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

package fetcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initRepo creates a git repository at dir with one commit.
func initRepo(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.gi"), []byte("print(1)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{
		{"init", "--quiet"},
		{"add", "."},
		{"-c", "user.name=uvm", "-c", "user.email=uvm@example.com", "commit", "--quiet", "-m", "init"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
}

func TestGitRetriever(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	remote := t.TempDir()
	initRepo(t, filepath.Join(remote, "foo.git"))

	dest := filepath.Join(t.TempDir(), "foo")
	err := GitRetriever{}.Retrieve(context.Background(), "file://"+filepath.ToSlash(remote)+"/foo.git", dest)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "main.gi")); err != nil {
		t.Errorf("cloned file missing: %v", err)
	}
}

func TestGitRetriever_MissingRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dest := filepath.Join(t.TempDir(), "nope")
	err := GitRetriever{}.Retrieve(context.Background(), "file://"+filepath.ToSlash(t.TempDir())+"/nope.git", dest)
	if err == nil {
		t.Fatal("expected clone of missing repository to fail")
	}
}

func TestGitRetriever_MissingBinary(t *testing.T) {
	err := GitRetriever{Binary: "uvm-no-such-git"}.Retrieve(context.Background(), "file:///x.git", t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing git binary")
	}
}

func TestRetrieverFunc(t *testing.T) {
	var got string
	r := RetrieverFunc(func(_ context.Context, url, _ string) error {
		got = url
		return nil
	})
	if err := r.Retrieve(context.Background(), "u", "d"); err != nil || got != "u" {
		t.Errorf("RetrieverFunc did not forward call: %q, %v", got, err)
	}
}

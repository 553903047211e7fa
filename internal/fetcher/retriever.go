package fetcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Retriever copies the repository at url into dest. Dest does not exist
// beforehand; on error it may be left partially written.
type Retriever interface {
	Retrieve(ctx context.Context, url, dest string) error
}

// RetrieverFunc adapts a plain function to the Retriever interface.
type RetrieverFunc func(ctx context.Context, url, dest string) error

// Retrieve calls f.
func (f RetrieverFunc) Retrieve(ctx context.Context, url, dest string) error {
	return f(ctx, url, dest)
}

// GitRetriever shallow-clones repositories with the git command line tool.
type GitRetriever struct {
	// Binary is the git executable; "git" when empty.
	Binary string
}

func (g GitRetriever) binary() string {
	if g.Binary == "" {
		return "git"
	}
	return g.Binary
}

// Retrieve runs `git clone --depth=1 <url> <dest>`. Git's output is folded
// into the returned error.
func (g GitRetriever) Retrieve(ctx context.Context, url, dest string) error {
	bin, err := exec.LookPath(g.binary())
	if err != nil {
		return fmt.Errorf("%s is required but not found in PATH", g.binary())
	}

	cmd := exec.CommandContext(ctx, bin, "clone", "--depth=1", "--quiet", "--", url, dest)
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			return fmt.Errorf("git clone: %w", err)
		}
		return fmt.Errorf("git clone: %w\n%s", err, msg)
	}
	return nil
}

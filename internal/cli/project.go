package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unnarize/uvm/internal/branding"
	"github.com/unnarize/uvm/internal/config"
	"github.com/unnarize/uvm/internal/fetcher"
	"github.com/unnarize/uvm/internal/installer"
	"github.com/unnarize/uvm/internal/manifest"
)

// newRetriever builds the retriever used by get and install. Tests swap it
// for one that does not touch the network.
var newRetriever = func() fetcher.Retriever {
	return fetcher.GitRetriever{Binary: config.GitBinary()}
}

// newInstaller wires an Installer from the loaded configuration.
func newInstaller(cmd *cobra.Command) *installer.Installer {
	f := fetcher.New(config.ModulesRoot(), config.RemoteBaseURL(), logger)
	f.Retriever = newRetriever()
	f.Retries = config.Retries()

	return &installer.Installer{
		ManifestPath: config.ManifestPath(),
		Fetcher:      f,
		Version:      buildVersion,
		Out:          cmd.OutOrStdout(),
		Logger:       logger,
	}
}

// explain adds a hint to errors the user can fix themselves.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, manifest.ErrNotFound):
		return fmt.Errorf("%w (run '%s init' first)", err, branding.CLIName())
	case errors.Is(err, fetcher.ErrInvalidName):
		return &usageError{err: err}
	case errors.Is(err, fetcher.ErrFetchFailed):
		return fmt.Errorf("%w (check the repository name)", err)
	default:
		return err
	}
}

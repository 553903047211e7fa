package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/unnarize/uvm/internal/branding"
	"github.com/unnarize/uvm/internal/config"
	"github.com/unnarize/uvm/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` fetches ` + branding.Language() + ` packages from ` + branding.RemoteBaseURL() + `
into ./` + branding.ModulesDir() + `/ and tracks them in ` + branding.ManifestFile() + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          rootArgs,
	// A bare "uvm" is a usage error rather than a help request.
	RunE: func(cmd *cobra.Command, args []string) error {
		return usageErrorf("no command given")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = logging.New(cmd.ErrOrStderr(), verbose)
		logger.Debug("configuration loaded",
			"manifest", config.ManifestPath(),
			"modules", config.ModulesRoot(),
			"remote", config.RemoteBaseURL(),
		)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug diagnostics to stderr")
	rootCmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

// usageError marks errors caused by how the command was invoked. Execute
// prints the usage text after them.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// rootArgs receives whatever did not resolve to a subcommand, so any
// argument here is an unknown command.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	msg := fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestions[0])
	}
	return usageErrorf("%s", msg)
}

// requireName accepts exactly one positional argument naming a repository.
func requireName(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return usageErrorf("'%s' command requires a repository name", cmd.Name())
	case 1:
		return nil
	default:
		return usageErrorf("'%s' command takes one repository name, got %d arguments", cmd.Name(), len(args))
	}
}

// noArgs rejects positional arguments.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("'%s' command takes no arguments", cmd.Name())
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr; the caller only sets the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx)
}

func execute(ctx context.Context) error {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}
	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if isUsageError(err) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	logger.Debug("command failed", "command", cmd.CommandPath(), "err", err)
	return err
}

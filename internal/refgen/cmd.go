package refgen

import (
	"errors"

	"github.com/schmitthub/refgen/internal/cmd/root"
	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/logger"
	"github.com/spf13/pflag"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the refgen CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := cmdutil.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cmdutil.SilentError) {
			return exitError
		}
		if errors.Is(err, pflag.ErrHelp) {
			return exitOk
		}
		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			return exitUsage
		}
		return exitError
	}

	return exitOk
}

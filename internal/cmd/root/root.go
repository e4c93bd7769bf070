package root

import (
	authorscmd "github.com/schmitthub/refgen/internal/cmd/authors"
	manualcmd "github.com/schmitthub/refgen/internal/cmd/manual"
	versioncmd "github.com/schmitthub/refgen/internal/cmd/version"
	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/config"
	"github.com/schmitthub/refgen/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the refgen CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refgen",
		Short: "Generate cross-referenced reference documentation from command and settings metadata",
		Long: `Refgen builds an AsciiDoc reference manual for an application from a
declarative registry of its commands and settings, and keeps the authors
block of an existing document in sync with the repository's commit history.

Quick start:
  refgen manual -m registry.yaml -o doc/app.asciidoc
  refgen authors --target README.asciidoc`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(f.Version, f.Commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("refgen starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Path to refgen.yaml")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(manualcmd.NewCmdManual(f))
	cmd.AddCommand(authorscmd.NewCmdAuthors(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory) {
	cfg, err := f.Config()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load config")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: cfg.Logging.FileEnabled,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
		MaxBackups:  cfg.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(f.Debug, logsDir, logCfg); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}

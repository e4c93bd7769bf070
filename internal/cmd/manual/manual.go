package manual

import (
	"fmt"

	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/fsio"
	"github.com/schmitthub/refgen/internal/logger"
	"github.com/schmitthub/refgen/internal/manual"
	"github.com/schmitthub/refgen/internal/registry"
	"github.com/spf13/cobra"
)

// ManualOptions contains the options for the manual command.
type ManualOptions struct {
	Manifest   string
	Output     string
	Title      string
	Maintainer string
	Homepage   string
}

// NewCmdManual creates the "manual" subcommand.
func NewCmdManual(f *cmdutil.Factory) *cobra.Command {
	opts := &ManualOptions{}

	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Generate the reference manual",
		Long: `Generates the AsciiDoc reference manual from a registry manifest.

The manifest declares the documented application's commands (name, docstring,
parameters, positional-argument bounds, visibility flags) and its settings
sections. The output document contains a header block, the settings
reference, and the commands reference, in that order.

Commands with malformed docstrings are skipped with a diagnostic; the rest
of the manual is still generated.`,
		Example: `  # Write the manual to a file
  refgen manual --manifest registry.yaml -o doc/app.asciidoc

  # Write to stdout
  refgen manual --manifest registry.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Manifest == "" {
				return cmdutil.FlagErrorf("--manifest is required")
			}
			return runManual(f, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "", "Registry manifest file (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "Output file, or - for stdout")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Override the document title")
	cmd.Flags().StringVar(&opts.Maintainer, "maintainer", "", "Override the maintainer line")
	cmd.Flags().StringVar(&opts.Homepage, "homepage", "", "Override the homepage attribute")

	return cmd
}

func runManual(f *cmdutil.Factory, opts *ManualOptions) error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}

	docCfg := manual.Config{
		Title:         cfg.Doc.Title,
		Maintainer:    cfg.Doc.Maintainer,
		Homepage:      cfg.Doc.Homepage,
		CommandPrefix: cfg.Doc.CommandPrefix,
	}
	if opts.Title != "" {
		docCfg.Title = opts.Title
	}
	if opts.Maintainer != "" {
		docCfg.Maintainer = opts.Maintainer
	}
	if opts.Homepage != "" {
		docCfg.Homepage = opts.Homepage
	}

	reg, err := registry.LoadManifest(opts.Manifest)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("manifest", opts.Manifest).
		Str("output", opts.Output).
		Int("commands", len(reg.Commands)).
		Int("sections", len(reg.Sections)).
		Msg("generating reference manual")

	gen := manual.New(docCfg, reg)
	data, err := gen.Generate()
	if err != nil {
		return err
	}

	for _, skip := range gen.Skips() {
		logger.Warn().
			Str("command", skip.Command).
			Err(skip.Err).
			Msg("skipping command with malformed docstring")
	}

	if n := len(gen.Skips()); n > 0 {
		fmt.Fprintf(f.ErrOut, "Skipped %d command(s) with malformed docstrings\n", n)
	}

	if opts.Output == "-" || opts.Output == "" {
		if _, err := f.Out.Write(data); err != nil {
			return err
		}
		return nil
	}

	if err := fsio.AtomicWriteFile(opts.Output, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(f.ErrOut, "Generated reference manual in %s\n", opts.Output)
	return nil
}

package authors

import (
	"fmt"

	"github.com/schmitthub/refgen/internal/authors"
	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/gitlog"
	"github.com/schmitthub/refgen/internal/logger"
	"github.com/spf13/cobra"
)

// AuthorsOptions contains the options for the authors command.
type AuthorsOptions struct {
	Repo   string
	Target string
}

// NewCmdAuthors creates the "authors" subcommand.
func NewCmdAuthors(f *cmdutil.Factory) *cobra.Command {
	opts := &AuthorsOptions{}

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Rewrite the authors block of a document from commit history",
		Long: `Counts the commit authors of a git repository and rewrites the
marker-delimited authors region of the target document in place.

Authors are listed ascending by contribution count. The region between the
start and end marker lines is wholly replaced; content outside the markers
passes through unchanged. The file is swapped in atomically, so a failed run
never leaves a partial document behind.`,
		Example: `  # Rewrite README.asciidoc from the current repository
  refgen authors

  # Explicit repository and target
  refgen authors --repo ~/src/app --target ~/src/app/README.asciidoc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthors(f, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository to count contributions in (default from config)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Document containing the authors markers (default from config)")

	return cmd
}

func runAuthors(f *cmdutil.Factory, opts *AuthorsOptions) error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}

	repo := opts.Repo
	if repo == "" {
		repo = cfg.Authors.Repo
	}
	target := opts.Target
	if target == "" {
		target = cfg.Authors.Target
	}

	records, err := gitlog.AuthorNames(repo)
	if err != nil {
		return err
	}
	counts := authors.Tally(records)

	logger.Debug().
		Str("repo", repo).
		Str("target", target).
		Int("commits", len(records)).
		Int("authors", len(counts)).
		Msg("rewriting authors block")

	markers := authors.Markers{
		Start: cfg.Authors.StartMarker,
		End:   cfg.Authors.EndMarker,
	}
	if err := authors.Rewrite(target, counts, markers); err != nil {
		return err
	}

	fmt.Fprintf(f.ErrOut, "Updated authors in %s (%d authors)\n", target, len(counts))
	return nil
}

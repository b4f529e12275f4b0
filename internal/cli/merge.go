package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/object"
	"github.com/roach88/helpers/internal/value"
)

// MergeOptions holds flags for the merge command.
type MergeOptions struct {
	*RootOptions
	MaxDepth int
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MergeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Deep-merge documents from left to right",
		Long: `Deep-merge the documents into an empty record, from left to right, and
print the result as JSON. Nested records merge key by key; any other value,
including arrays, replaces what was there. Documents that are not records
are skipped.

Examples:
  helpers merge defaults.yaml overrides.json
  helpers merge --format json base.cue env.yaml.gz`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "maximum record nesting (0 = default)")

	return cmd
}

func runMerge(opts *MergeOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	sources, err := LoadDocuments(paths)
	if err != nil {
		return formatter.failLoad(err)
	}
	for i, src := range sources {
		if !value.IsObject(src) {
			formatter.Logger().Warn("skipping non-record source", "path", paths[i], "type", value.TypeOf(src))
		}
	}

	merged, err := object.DeepMergeLimit(opts.MaxDepth, value.NewObject(), sources...)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	formatter.VerboseLog("merged", "sources", len(sources))

	if err := formatter.SuccessValue(merged); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/object"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Depth      int
	ShowHidden bool
	Color      bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Pretty-print a document",
		Long: `Print a document in a compact, readable form. Records keep their
document order; nesting past --depth is shown as [Object] or [Array].

Examples:
  helpers inspect config.yaml
  helpers inspect --depth -1 --color big.json.zst`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Depth, "depth", object.DefaultInspectDepth, "levels to expand (-1 = all)")
	cmd.Flags().BoolVar(&opts.ShowHidden, "show-hidden", false, "show array lengths")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "colorize output with ANSI escapes")

	return cmd
}

func runInspect(opts *InspectOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := LoadDocument(path)
	if err != nil {
		return formatter.failLoad(err)
	}

	inspectOpts := []object.InspectOption{object.WithDepth(opts.Depth)}
	if opts.ShowHidden {
		inspectOpts = append(inspectOpts, object.WithShowHidden())
	}
	if opts.Color && opts.Format != "json" {
		inspectOpts = append(inspectOpts, object.WithColors())
	}

	out := object.Inspect(doc, inspectOpts...)
	if opts.Format == "json" {
		return formatter.Success(map[string]string{"inspect": out})
	}
	return formatter.Success(out)
}

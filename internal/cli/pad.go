package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/object"
)

// PadOptions holds flags for the pad command.
type PadOptions struct {
	*RootOptions
	Width int
}

// NewPadCommand creates the pad command.
func NewPadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pad <n>",
		Short: "Left-pad an integer with zeros",
		Long: `Left-pad an integer with zeros to --width digits. Longer numbers are
left as they are.

Examples:
  helpers pad 5            # 05
  helpers pad --width 3 6  # 006`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPad(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Width, "width", object.DefaultPadWidth, "minimum number of digits")

	return cmd
}

func runPad(opts *PadOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid integer %q", arg), nil)
	}

	padded := object.Pad(n, opts.Width)
	if opts.Format == "json" {
		return formatter.Success(map[string]string{"padded": padded})
	}
	return formatter.Success(padded)
}

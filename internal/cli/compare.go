package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/harness"
	"github.com/roach88/helpers/internal/object"
	"github.com/roach88/helpers/internal/value"
)

// CompareOptions holds flags for the compare and children commands.
type CompareOptions struct {
	*RootOptions
	StrictArrays bool
	MaxDepth     int
}

// CompareResult describes the outcome of a format check.
type CompareResult struct {
	Match    bool     `json:"match"`
	Index    *int     `json:"index,omitempty"` // failing element, children only
	Path     string   `json:"path,omitempty"`
	Reason   string   `json:"reason,omitempty"`
	Expected []string `json:"expected,omitempty"`
	Actual   string   `json:"actual,omitempty"`
}

func (o *CompareOptions) compareOptions() []object.CompareOption {
	var opts []object.CompareOption
	if o.StrictArrays {
		opts = append(opts, object.WithStrictArrays())
	}
	if o.MaxDepth > 0 {
		opts = append(opts, object.WithMaxDepth(o.MaxDepth))
	}
	return opts
}

func addCompareFlags(cmd *cobra.Command, opts *CompareOptions) {
	cmd.Flags().BoolVar(&opts.StrictArrays, "strict-arrays", false, "require every array element to match a format tag")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "maximum record nesting (0 = default)")
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <target> <format>",
		Short: "Check a document against a format",
		Long: `Check that every key of the target document has the type named by the
format document. Format leaves are tag names ("number", "string", ...) or
example values; arrays in the format list the accepted element types.

Exit codes:
  0 - Target matches the format
  1 - Target does not match the format
  2 - Command error (invalid paths, etc.)

Examples:
  helpers compare user.json user.format.yaml
  helpers compare --strict-arrays order.json order.format.cue`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}
	addCompareFlags(cmd, opts)

	return cmd
}

// NewChildrenCommand creates the children command.
func NewChildrenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "children <array-file> <format>",
		Short: "Check every element of an array against a format",
		Long: `Check that the document is an array and that each of its elements
matches the format. The first failing element is reported.

Exit codes follow compare.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChildren(opts, args[0], args[1], cmd)
		},
	}
	addCompareFlags(cmd, opts)

	return cmd
}

func runCompare(opts *CompareOptions, targetPath, formatPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	docs, err := LoadDocuments([]string{targetPath, formatPath})
	if err != nil {
		return formatter.failLoad(err)
	}
	formatter.VerboseLog("comparing", "target", targetPath, "format", formatPath, "strict_arrays", opts.StrictArrays)

	err = harness.CheckFormat(docs[0], docs[1], opts.compareOptions()...)
	return outputCompare(formatter, err, "target matches format")
}

func runChildren(opts *CompareOptions, arrayPath, formatPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	docs, err := LoadDocuments([]string{arrayPath, formatPath})
	if err != nil {
		return formatter.failLoad(err)
	}

	err = harness.CheckChildrenFormat(docs[0], docs[1], opts.compareOptions()...)
	if err == nil {
		n := len(docs[0].(value.Array))
		return outputCompare(formatter, nil, fmt.Sprintf("%d children match format", n))
	}
	return outputCompare(formatter, err, "")
}

// outputCompare reports a check outcome. A failed check exits with
// ExitFailure.
func outputCompare(formatter *OutputFormatter, checkErr error, okMessage string) error {
	if checkErr == nil {
		if formatter.Format == "json" {
			return formatter.Success(CompareResult{Match: true})
		}
		return formatter.Success("✓ " + okMessage)
	}

	result := CompareResult{Match: false}
	var ae *harness.AssertionError
	if errors.As(checkErr, &ae) && ae.Index >= 0 {
		idx := ae.Index
		result.Index = &idx
	}
	var me *object.MismatchError
	if errors.As(checkErr, &me) {
		result.Path = me.Path
		result.Reason = me.Reason
		result.Actual = string(me.Actual)
		for _, tag := range me.Expected {
			result.Expected = append(result.Expected, string(tag))
		}
	} else {
		result.Reason = checkErr.Error()
	}

	if formatter.Format == "json" {
		return formatter.fail(ExitFailure, ErrCodeMismatch, checkErr.Error(), result)
	}
	fmt.Fprintf(formatter.Writer, "✗ %s\n", checkErr.Error())
	return NewExitError(ExitFailure, checkErr.Error())
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/value"
)

// TypeOptions holds flags for the type command.
type TypeOptions struct {
	*RootOptions
	Keys bool // classify each top-level key instead of the root
}

// KeyType pairs a record key with the tag of its value.
type KeyType struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// TypeResult is the output of the type command.
type TypeResult struct {
	Type string    `json:"type"`
	Keys []KeyType `json:"keys,omitempty"`
}

// NewTypeCommand creates the type command.
func NewTypeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TypeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "type <file>",
		Short: "Print the type tag of a document",
		Long: `Print the type tag of a document's root value: object, array, null,
undefined, boolean, number, string, function, symbol or bigint.

With --keys, each top-level key of a record is listed with its tag, in
document order.

Examples:
  helpers type config.yaml
  helpers type --keys user.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Keys, "keys", false, "classify each top-level key")

	return cmd
}

func runType(opts *TypeOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := LoadDocument(path)
	if err != nil {
		return formatter.failLoad(err)
	}
	formatter.VerboseLog("document loaded", "path", path)

	result := TypeResult{Type: string(value.TypeOf(doc))}
	if opts.Keys {
		if !value.IsObject(doc) {
			return formatter.fail(ExitCommandError, ErrCodeInvalidArg,
				fmt.Sprintf("--keys needs a record, document root is %s", result.Type), nil)
		}
		result.Keys = []KeyType{}
		doc.(*value.Object).Range(func(k string, v value.Value) bool {
			result.Keys = append(result.Keys, KeyType{Key: k, Type: string(value.TypeOf(v))})
			return true
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if !opts.Keys {
		return formatter.Success(result.Type)
	}
	lines := make([]string, len(result.Keys))
	for i, kt := range result.Keys {
		lines[i] = fmt.Sprintf("%s: %s", kt.Key, kt.Type)
	}
	return formatter.Success(strings.Join(lines, "\n"))
}

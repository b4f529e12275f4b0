package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/object"
	"github.com/roach88/helpers/internal/value"
)

// ChunkOptions holds flags for the chunk command.
type ChunkOptions struct {
	*RootOptions
	Size int
}

// DedupeResult is the output of the dedupe command.
type DedupeResult struct {
	Total      int   `json:"total"`
	Unique     int   `json:"unique"`
	Duplicates []int `json:"duplicates"`
}

// NewChunkCommand creates the chunk command.
func NewChunkCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChunkOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "chunk <array-file>",
		Short: "Split an array into fixed-size chunks",
		Long: `Split the document's root array into consecutive chunks of --size
elements. The last chunk may be shorter.

Examples:
  helpers chunk --size 100 ids.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunk(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 10, "elements per chunk")

	return cmd
}

// NewDedupeCommand creates the dedupe command.
func NewDedupeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe <array-file>",
		Short: "Report duplicate array elements",
		Long: `Report the indexes of array elements that structurally equal an
earlier element. Record key order does not matter.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedupe(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runChunk(opts *ChunkOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	arr, err := LoadArray(path)
	if err != nil {
		return formatter.failLoad(err)
	}

	chunks, err := object.Chunk([]value.Value(arr), opts.Size)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("--size %d: %v", opts.Size, err), nil)
	}
	formatter.VerboseLog("chunked", "elements", len(arr), "chunks", len(chunks))

	out := make(value.Array, len(chunks))
	for i, c := range chunks {
		out[i] = value.Array(c)
	}
	if err := formatter.SuccessValue(out); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	return nil
}

func runDedupe(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	arr, err := LoadArray(path)
	if err != nil {
		return formatter.failLoad(err)
	}

	dups, err := object.Duplicates(arr)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	if dups == nil {
		dups = []int{}
	}

	result := DedupeResult{Total: len(arr), Unique: len(arr) - len(dups), Duplicates: dups}
	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if len(dups) == 0 {
		return formatter.Success(fmt.Sprintf("no duplicates (%d elements)", result.Total))
	}
	idx := make([]string, len(dups))
	for i, d := range dups {
		idx[i] = strconv.Itoa(d)
	}
	return formatter.Success(fmt.Sprintf("%d duplicate(s) at index %s (%d unique of %d)",
		len(dups), strings.Join(idx, ", "), result.Unique, result.Total))
}

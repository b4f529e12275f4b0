package object

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/helpers/internal/value"
)

// DefaultMaxDepth bounds record nesting for merge and compare.
const DefaultMaxDepth = 1000

// DepthExceededError is returned when recursion passes the configured
// maximum depth, which usually means the input is cyclic.
type DepthExceededError struct {
	Path     string // Dotted path where the limit was hit
	MaxDepth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("max depth %d exceeded at %s", e.MaxDepth, displayPath(e.Path))
}

// IsDepthExceeded reports whether err is, or wraps, a DepthExceededError.
func IsDepthExceeded(err error) bool {
	var de *DepthExceededError
	return errors.As(err, &de)
}

// Mismatch reasons reported by CompareFormat.
const (
	ReasonTargetNotRecord = "target is not a record"
	ReasonFormatNotRecord = "format is not a record"
	ReasonTypeMismatch    = "type mismatch"
	ReasonNoArrayMatch    = "no element matches"
	ReasonElementMismatch = "element type mismatch"
	ReasonMaxDepth        = "max depth exceeded"
)

// MismatchError describes the first place a target failed its format.
type MismatchError struct {
	Path     string          // Dotted path of the failing key, "" for the root
	Reason   string          // One of the Reason* constants
	Expected []value.TypeTag // Accepted tags
	Actual   value.TypeTag   // Tag found in the target
}

func (e *MismatchError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: %s", displayPath(e.Path), e.Reason)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&buf, ": expected %s, got %s", formatTags(e.Expected), e.Actual)
	}
	return buf.String()
}

// IsMismatch reports whether err is, or wraps, a MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

func formatTags(tags []value.TypeTag) string {
	if len(tags) == 1 {
		return string(tags[0])
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return "one of [" + strings.Join(parts, ", ") + "]"
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

func joinPath(path, seg string) string {
	if path == "" {
		return seg
	}
	if strings.HasPrefix(seg, "[") {
		return path + seg
	}
	return path + "." + seg
}

// IndexError attaches an element index to an error.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/helpers/internal/object"
	"github.com/roach88/helpers/internal/value"
)

// MatchResult is the outcome of a format assertion.
type MatchResult struct {
	Pass    bool
	Message string
}

// AssertionError is returned when a format assertion fails.
// It carries enough context to locate the failure.
type AssertionError struct {
	Kind     string // "match" or "children"
	Index    int    // Failing element for "children", -1 otherwise
	Actual   string // Inspected form of the failing value, for messages
	Mismatch error  // Underlying error from object.CompareFormat
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	if e.Index >= 0 {
		fmt.Fprintf(&buf, "element %d does not match expected format", e.Index)
	} else {
		buf.WriteString("value does not match expected format")
	}
	if e.Mismatch != nil {
		fmt.Fprintf(&buf, ": %v", e.Mismatch)
	}
	return buf.String()
}

// Unwrap returns the underlying mismatch.
func (e *AssertionError) Unwrap() error {
	return e.Mismatch
}

// CaseError is recorded on a Result when a scenario case fails.
type CaseError struct {
	Case    string
	Kind    string
	Message string
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("case %q (%s): %s", e.Case, e.Kind, e.Message)
}

// CheckFormat returns nil when obj matches format, or an *AssertionError
// describing the first mismatch.
func CheckFormat(obj, format value.Value, opts ...object.CompareOption) error {
	if err := object.CompareFormat(obj, format, opts...); err != nil {
		return &AssertionError{
			Kind:     KindMatch,
			Index:    -1,
			Actual:   summarize(obj),
			Mismatch: err,
		}
	}
	return nil
}

// CheckChildrenFormat returns nil when arr is an array whose every element
// matches format. The first failing element is reported.
func CheckChildrenFormat(arr, format value.Value, opts ...object.CompareOption) error {
	elems, ok := arr.(value.Array)
	if !ok {
		return fmt.Errorf("%s type is not array", value.TypeOf(arr))
	}
	for i, elem := range elems {
		if err := object.CompareFormat(elem, format, opts...); err != nil {
			return &AssertionError{
				Kind:     KindChildren,
				Index:    i,
				Actual:   summarize(elem),
				Mismatch: err,
			}
		}
	}
	return nil
}

// ToMatchFormat checks obj against format with object.CompareFormat.
func ToMatchFormat(obj, format value.Value, opts ...object.CompareOption) MatchResult {
	if err := CheckFormat(obj, format, opts...); err != nil {
		return MatchResult{Pass: false, Message: failureMessage(err)}
	}
	return MatchResult{Pass: true, Message: "value matches expected format"}
}

// ChildrenToMatchFormat checks that arr is an array and that each of its
// elements matches format.
func ChildrenToMatchFormat(arr, format value.Value, opts ...object.CompareOption) MatchResult {
	if err := CheckChildrenFormat(arr, format, opts...); err != nil {
		return MatchResult{Pass: false, Message: failureMessage(err)}
	}
	return MatchResult{
		Pass:    true,
		Message: fmt.Sprintf("%d children match expected format", len(arr.(value.Array))),
	}
}

// AssertMatchesFormat asserts that obj matches format.
func AssertMatchesFormat(t assert.TestingT, obj, format value.Value, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	res := ToMatchFormat(obj, format)
	if !res.Pass {
		return assert.Fail(t, res.Message, msgAndArgs...)
	}
	return true
}

// AssertChildrenMatchFormat asserts that arr is an array whose elements
// all match format.
func AssertChildrenMatchFormat(t assert.TestingT, arr, format value.Value, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	res := ChildrenToMatchFormat(arr, format)
	if !res.Pass {
		return assert.Fail(t, res.Message, msgAndArgs...)
	}
	return true
}

// failureMessage appends the offending value to an assertion failure.
func failureMessage(err error) string {
	var ae *AssertionError
	if errors.As(err, &ae) && ae.Actual != "" {
		return fmt.Sprintf("%s\n  Actual: %s", ae.Error(), ae.Actual)
	}
	return err.Error()
}

// summarize renders v on a single line, one level deep.
func summarize(v value.Value) string {
	return object.Inspect(v, object.WithDepth(1), object.WithBreakLength(1<<20))
}

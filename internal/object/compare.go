package object

import (
	"fmt"
	"slices"

	"github.com/roach88/helpers/internal/value"
)

// CompareOption configures CompareFormat and DeepTypeCompare.
type CompareOption func(*compareConfig)

type compareConfig struct {
	strictArrays bool
	maxDepth     int
}

// WithStrictArrays checks every element of a target array against the
// tags of the format array, instead of requiring one element to match the
// first format tag.
func WithStrictArrays() CompareOption {
	return func(c *compareConfig) {
		c.strictArrays = true
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Values <= 0 are ignored.
func WithMaxDepth(n int) CompareOption {
	return func(c *compareConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// DeepTypeCompare reports whether target matches format.
func DeepTypeCompare(target, format value.Value, opts ...CompareOption) bool {
	return CompareFormat(target, format, opts...) == nil
}

// CompareFormat checks target against format and returns nil on a match,
// or a *MismatchError describing the first failing key in target order.
// Neither argument is modified.
func CompareFormat(target, format value.Value, opts ...CompareOption) error {
	cfg := compareConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return compareRecord(target, format, "", 0, &cfg)
}

func compareRecord(target, format value.Value, path string, depth int, cfg *compareConfig) error {
	if !value.IsObject(target) {
		return &MismatchError{
			Path:     path,
			Reason:   ReasonTargetNotRecord,
			Expected: []value.TypeTag{value.TagObject},
			Actual:   value.TypeOf(target),
		}
	}
	if !value.IsObject(format) {
		return &MismatchError{
			Path:     path,
			Reason:   ReasonFormatNotRecord,
			Expected: []value.TypeTag{value.TagObject},
			Actual:   value.TypeOf(format),
		}
	}
	if depth > cfg.maxDepth {
		return &MismatchError{Path: path, Reason: ReasonMaxDepth}
	}

	tgt := target.(*value.Object)
	fmtObj := format.(*value.Object)

	var err error
	tgt.Range(func(key string, tv value.Value) bool {
		err = compareEntry(tv, fmtObj.Lookup(key), joinPath(path, key), depth, cfg)
		return err == nil
	})
	return err
}

func compareEntry(tv, fv value.Value, path string, depth int, cfg *compareConfig) error {
	if value.IsObject(tv) {
		return compareRecord(tv, fv, path, depth+1, cfg)
	}

	tArr, tIsArr := tv.(value.Array)
	fArr, fIsArr := fv.(value.Array)
	if tIsArr && fIsArr {
		if cfg.strictArrays {
			return compareArrayStrict(tArr, fArr, path)
		}
		return compareArrayLoose(tArr, fArr, path)
	}

	accepted := acceptedTags(fv)
	actual := value.TypeOf(tv)
	if !slices.Contains(accepted, actual) {
		return &MismatchError{Path: path, Reason: ReasonTypeMismatch, Expected: accepted, Actual: actual}
	}
	return nil
}

// compareArrayLoose needs one target element with the tag of the first
// format element.
func compareArrayLoose(tArr, fArr value.Array, path string) error {
	var first value.Value = value.Undefined{}
	if len(fArr) > 0 {
		first = fArr[0]
	}
	expected := value.TagOf(first)
	for _, elem := range tArr {
		if value.TypeOf(elem) == expected {
			return nil
		}
	}
	return &MismatchError{
		Path:     path,
		Reason:   ReasonNoArrayMatch,
		Expected: []value.TypeTag{expected},
		Actual:   elementSummary(tArr),
	}
}

// compareArrayStrict needs every target element to carry one of the
// format's tags.
func compareArrayStrict(tArr, fArr value.Array, path string) error {
	accepted := acceptedTags(fArr)
	for i, elem := range tArr {
		actual := value.TypeOf(elem)
		if !slices.Contains(accepted, actual) {
			return &MismatchError{
				Path:     joinPath(path, fmt.Sprintf("[%d]", i)),
				Reason:   ReasonElementMismatch,
				Expected: accepted,
				Actual:   actual,
			}
		}
	}
	return nil
}

// acceptedTags normalizes a format entry to the list of tags it allows.
// A bare exemplar is treated as a one-element list.
func acceptedTags(fv value.Value) []value.TypeTag {
	arr, ok := fv.(value.Array)
	if !ok {
		return []value.TypeTag{value.TagOf(fv)}
	}
	tags := make([]value.TypeTag, 0, len(arr))
	for _, exemplar := range arr {
		tag := value.TagOf(exemplar)
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// elementSummary reports the tag shared by all elements, or "array" when
// elements are mixed or absent.
func elementSummary(arr value.Array) value.TypeTag {
	if len(arr) == 0 {
		return value.TagArray
	}
	tag := value.TypeOf(arr[0])
	for _, elem := range arr[1:] {
		if value.TypeOf(elem) != tag {
			return value.TagArray
		}
	}
	return tag
}

package value

import (
	"errors"
	"fmt"
)

// UnsupportedError reports a value that an encoding cannot represent,
// such as a BigInt in JSON or a symbol in a dedup key.
type UnsupportedError struct {
	Tag    TypeTag // Tag of the offending value
	Op     string  // Encoding that rejected it, e.g. "json"
	Reason string  // Optional detail
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: cannot encode %s: %s", e.Op, e.Tag, e.Reason)
	}
	return fmt.Sprintf("%s: cannot encode %s", e.Op, e.Tag)
}

// IsUnsupported reports whether err is, or wraps, an UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// DecodeError reports malformed input to one of the decoders.
type DecodeError struct {
	Format string // "json", "yaml" or "cue"
	Path   string // Location inside the document, if known
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode %s at %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// joinPath appends a key or index segment to a dotted path.
func joinPath(path, seg string) string {
	if path == "" {
		return seg
	}
	if len(seg) > 0 && seg[0] == '[' {
		return path + seg
	}
	return path + "." + seg
}

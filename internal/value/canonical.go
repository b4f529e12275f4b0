package value

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces RFC 8785 canonical JSON:
// object keys sorted by UTF-16 code units, strings NFC normalized, no HTML
// escaping. Only JSON-representable values are accepted; undefined,
// functions, symbols, BigInt and non-finite numbers are UnsupportedErrors.
func MarshalCanonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Key returns a canonical identity string for v. Two values have the same
// key exactly when they are structurally equal, ignoring key order and
// Unicode normalization. Unlike MarshalCanonical, Key also encodes
// undefined, BigInt and non-finite numbers. Symbols and functions have no
// structural identity and are rejected.
func Key(v Value) (string, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v, true); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeCanonical(buf *bytes.Buffer, v Value, extended bool) error {
	switch val := v.(type) {
	case nil, Undefined:
		if !extended {
			return &UnsupportedError{Tag: TagUndefined, Op: "canonical"}
		}
		buf.WriteString("undefined")
	case Null:
		buf.WriteString("null")
	case Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if !extended {
				return &UnsupportedError{Tag: TagNumber, Op: "canonical", Reason: "non-finite number"}
			}
			switch {
			case math.IsNaN(f):
				buf.WriteString("NaN")
			case f > 0:
				buf.WriteString("Infinity")
			default:
				buf.WriteString("-Infinity")
			}
			return nil
		}
		buf.WriteString(formatNumber(f))
	case String:
		b, err := marshalString(norm.NFC.String(string(val)))
		if err != nil {
			return err
		}
		buf.Write(b)
	case BigInt:
		if !extended {
			return &UnsupportedError{Tag: TagBigInt, Op: "canonical"}
		}
		buf.WriteString(val.String())
		buf.WriteByte('n')
	case Array:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem, extended); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case *Object:
		if val == nil {
			buf.WriteString("null")
			return nil
		}
		return writeCanonicalObject(buf, val, extended)
	default:
		return &UnsupportedError{Tag: TypeOf(v), Op: "canonical", Reason: "value has no structural identity"}
	}
	return nil
}

func writeCanonicalObject(buf *bytes.Buffer, obj *Object, extended bool) error {
	// Keys are normalized before sorting so that "é" and "é" collide.
	type entry struct {
		key string
		val Value
	}
	entries := make([]entry, 0, obj.Len())
	obj.Range(func(k string, v Value) bool {
		entries = append(entries, entry{key: norm.NFC.String(k), val: v})
		return true
	})
	slices.SortStableFunc(entries, func(a, b entry) int {
		return compareKeysRFC8785(a.key, b.key)
	})

	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalString(e.key)
		if err != nil {
			return fmt.Errorf("key %q: %w", e.key, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := writeCanonical(buf, e.val, extended); err != nil {
			return fmt.Errorf("value for key %q: %w", e.key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// compareKeysRFC8785 orders strings by UTF-16 code units.
// Go's native string comparison is by UTF-8 bytes, which differs for
// characters outside the BMP.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

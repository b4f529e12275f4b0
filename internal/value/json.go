package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/buger/jsonparser"
)

// DecodeJSON parses a JSON document into a Value.
// Object keys keep their document order; a repeated key keeps its first
// position and its last value.
func DecodeJSON(data []byte) (Value, error) {
	if !json.Valid(data) {
		return nil, &DecodeError{Format: "json", Err: errors.New("invalid JSON document")}
	}
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}
	return decodeJSONValue(raw, typ, "")
}

func decodeJSONValue(raw []byte, typ jsonparser.ValueType, path string) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, &DecodeError{Format: "json", Path: path, Err: err}
		}
		return Bool(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return nil, &DecodeError{Format: "json", Path: path, Err: err}
		}
		return Number(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, &DecodeError{Format: "json", Path: path, Err: err}
		}
		return String(s), nil
	case jsonparser.Array:
		arr := Array{}
		var firstErr error
		_, err := jsonparser.ArrayEach(raw, func(elem []byte, elemType jsonparser.ValueType, _ int, cbErr error) {
			if firstErr != nil {
				return
			}
			if cbErr != nil {
				firstErr = cbErr
				return
			}
			v, err := decodeJSONValue(elem, elemType, joinPath(path, fmt.Sprintf("[%d]", len(arr))))
			if err != nil {
				firstErr = err
				return
			}
			arr = append(arr, v)
		})
		if firstErr != nil {
			return nil, firstErr
		}
		if err != nil {
			return nil, &DecodeError{Format: "json", Path: path, Err: err}
		}
		return arr, nil
	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(raw, func(key []byte, val []byte, valType jsonparser.ValueType, _ int) error {
			// ObjectEach hands over keys already unescaped.
			k := string(key)
			v, err := decodeJSONValue(val, valType, joinPath(path, k))
			if err != nil {
				return err
			}
			obj.Set(k, v)
			return nil
		})
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				return nil, err
			}
			return nil, &DecodeError{Format: "json", Path: path, Err: err}
		}
		return obj, nil
	default:
		return nil, &DecodeError{Format: "json", Path: path, Err: fmt.Errorf("unexpected token %q", raw)}
	}
}

// MarshalJSON encodes v the way JSON.stringify does: undefined, functions
// and symbols are dropped from objects and written as null inside arrays,
// and non-finite numbers become null. A top-level value that would be
// dropped is an UnsupportedError, as is any BigInt.
func MarshalJSON(v Value) ([]byte, error) {
	if omittedInJSON(v) {
		return nil, &UnsupportedError{Tag: TypeOf(v), Op: "json", Reason: "value has no JSON representation"}
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func omittedInJSON(v Value) bool {
	switch v.(type) {
	case nil, Undefined, Func, *Symbol:
		return true
	}
	return false
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil, Undefined, Func, *Symbol, Null:
		buf.WriteString("null")
	case Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(formatNumber(float64(val)))
	case String:
		b, err := marshalString(string(val))
		if err != nil {
			return err
		}
		buf.Write(b)
	case BigInt:
		return &UnsupportedError{Tag: TagBigInt, Op: "json", Reason: "do not know how to serialize a BigInt"}
	case Array:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case *Object:
		if val == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		first := true
		var err error
		val.Range(func(k string, elem Value) bool {
			if omittedInJSON(elem) {
				return true
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			var kb []byte
			if kb, err = marshalString(k); err != nil {
				return false
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err = writeJSON(buf, elem); err != nil {
				err = fmt.Errorf("%s: %w", k, err)
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	default:
		return &UnsupportedError{Tag: TypeOf(v), Op: "json"}
	}
	return nil
}

// formatNumber renders a number in ECMAScript shortest form.
// Non-finite values render as null.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	b, _ := json.Marshal(f)
	return string(b)
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

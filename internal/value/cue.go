package value

import (
	"fmt"
	"math"
	"math/big"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// maxSafeInteger is the largest integer a Number holds exactly.
var maxSafeInteger = big.NewInt(1<<53 - 1)

// DecodeCUESource compiles CUE source text and converts the result.
// filename is used only in error positions.
func DecodeCUESource(filename string, src []byte) (Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, &DecodeError{Format: "cue", Err: err}
	}
	return DecodeCUE(v)
}

// DecodeCUE converts a concrete CUE value. Struct fields keep their
// declaration order; hidden fields and definitions are skipped. Integers
// outside the exact float64 range become BigInt.
func DecodeCUE(v cue.Value) (Value, error) {
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, &DecodeError{Format: "cue", Err: err}
	}
	return decodeCUEValue(v, "")
}

func decodeCUEValue(v cue.Value, path string) (Value, error) {
	wrap := func(err error) error {
		return &DecodeError{Format: "cue", Path: path, Err: err}
	}
	switch v.Kind() {
	case cue.NullKind:
		return Null{}, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, wrap(err)
		}
		return Bool(b), nil
	case cue.IntKind:
		i, err := v.Int(nil)
		if err != nil {
			return nil, wrap(err)
		}
		if new(big.Int).Abs(i).Cmp(maxSafeInteger) > 0 {
			return NewBigInt(i), nil
		}
		return Number(i.Int64()), nil
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil && !math.IsInf(f, 0) {
			return nil, wrap(err)
		}
		return Number(f), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, wrap(err)
		}
		return String(s), nil
	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return nil, wrap(err)
		}
		return String(b), nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, wrap(err)
		}
		arr := Array{}
		for iter.Next() {
			elem, err := decodeCUEValue(iter.Value(), joinPath(path, fmt.Sprintf("[%d]", len(arr))))
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		return arr, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, wrap(err)
		}
		obj := NewObject()
		for iter.Next() {
			key := iter.Selector().Unquoted()
			elem, err := decodeCUEValue(iter.Value(), joinPath(path, key))
			if err != nil {
				return nil, err
			}
			obj.Set(key, elem)
		}
		return obj, nil
	}
	return nil, wrap(fmt.Errorf("unsupported CUE kind %s", v.Kind()))
}

package value

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
)

// FromGo converts a plain Go value into a Value.
//
// Supported inputs: nil (Null), Value (unchanged), bool, every integer and
// float kind (Number), string, *big.Int (BigInt), func(...Value) Value,
// slices and arrays (Array), and maps with string keys (Object, keys
// sorted since Go maps carry no order). Anything else is an error.
func FromGo(v any) (Value, error) {
	return fromGo(v, "")
}

// MustFromGo is like FromGo but panics on error. Intended for tests and
// static fixtures.
func MustFromGo(v any) Value {
	val, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return val
}

func fromGo(v any, path string) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case float64:
		return Number(val), nil
	case *big.Int:
		return NewBigInt(val), nil
	case func(args ...Value) Value:
		return Func(val), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			conv, err := fromGo(elem, joinPath(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := NewObject()
		for _, k := range keys {
			conv, err := fromGo(val[k], joinPath(path, k))
			if err != nil {
				return nil, err
			}
			obj.Set(k, conv)
		}
		return obj, nil
	}
	return fromReflect(reflect.ValueOf(v), path)
}

func fromReflect(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Array{}, nil
		}
		arr := make(Array, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			conv, err := fromGo(rv.Index(i).Interface(), joinPath(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%s: map key type %s is not string", pathOrRoot(path), rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		obj := NewObject()
		for _, k := range keys {
			elem := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			conv, err := fromGo(elem.Interface(), joinPath(path, k))
			if err != nil {
				return nil, err
			}
			obj.Set(k, conv)
		}
		return obj, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromGo(rv.Elem().Interface(), path)
	}
	return nil, fmt.Errorf("%s: unsupported Go type %s", pathOrRoot(path), rv.Type())
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

package value

import "math"

// Equal reports whether a and b are structurally equal. Objects compare
// key sets regardless of order. Symbols compare by identity. Functions are
// never equal, not even to themselves. NaN equals NaN here, so that a
// record containing NaN equals a copy of itself.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil, Undefined:
		return TypeOf(b) == TagUndefined
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bv)) {
			return true
		}
		return av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case BigInt:
		bv, ok := b.(BigInt)
		return ok && av.Int().Cmp(bv.Int()) == 0
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av == bv
	case Func:
		return false
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			return av == nil && bv == nil
		}
		if av.Len() != bv.Len() {
			return false
		}
		equal := true
		av.Range(func(k string, v Value) bool {
			other, ok := bv.Get(k)
			if !ok || !Equal(v, other) {
				equal = false
			}
			return equal
		})
		return equal
	}
	return false
}

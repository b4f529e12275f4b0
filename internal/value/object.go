package value

// Object is an insertion-ordered record of string keys to values.
// The zero value is not usable; create objects with NewObject or
// NewObjectFromPairs.
//
// Object is not safe for concurrent mutation.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Value
}

func (*Object) value() {}

// Pair is a key/value pair for ordered Object construction.
type Pair struct {
	Key   string
	Value Value
}

// P is a shorthand for Pair.
// Example: NewObjectFromPairs(P("id", Number(5)), P("name", String("ok")))
func P(key string, v Value) Pair {
	return Pair{Key: key, Value: v}
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// NewObjectFromPairs creates an object holding pairs in order.
// A repeated key keeps its first position and its last value.
func NewObjectFromPairs(pairs ...Pair) *Object {
	obj := &Object{
		keys:  make([]string, 0, len(pairs)),
		index: make(map[string]int, len(pairs)),
		vals:  make([]Value, 0, len(pairs)),
	}
	for _, p := range pairs {
		obj.Set(p.Key, p.Value)
	}
	return obj
}

// Set assigns v to key. A new key is appended; an existing key keeps its
// position. A nil v is stored as Undefined.
func (o *Object) Set(key string, v Value) {
	if v == nil {
		v = Undefined{}
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get returns the value stored at key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Lookup returns the value at key, or Undefined when the key is absent.
func (o *Object) Lookup(key string) Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return Undefined{}
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	i, ok := o.index[key]
	if !ok {
		return
	}
	delete(o.index, key)
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
// The object must not be mutated during Range.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// Clone returns a deep copy. Nested objects and arrays are copied;
// scalars, symbols and functions are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{
		keys:  make([]string, len(o.keys)),
		index: make(map[string]int, len(o.keys)),
		vals:  make([]Value, len(o.vals)),
	}
	copy(out.keys, o.keys)
	for k, i := range o.index {
		out.index[k] = i
	}
	for i, v := range o.vals {
		out.vals[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v Value) Value {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case Array:
		if val == nil {
			return val
		}
		arr := make(Array, len(val))
		for i, elem := range val {
			arr[i] = cloneValue(elem)
		}
		return arr
	default:
		return v
	}
}

package value

import (
	"math/big"
)

// Value is a sealed interface over the supported kinds.
// Only the types declared in this package implement it.
type Value interface {
	value() // Sealed
}

// Undefined is the absent value. Looking up a missing key yields Undefined.
type Undefined struct{}

func (Undefined) value() {}

// Null is the explicit null sentinel.
type Null struct{}

func (Null) value() {}

// Bool is a boolean value.
type Bool bool

func (Bool) value() {}

// Number is a double precision number, including NaN and the infinities.
type Number float64

func (Number) value() {}

// String is a string value.
type String string

func (String) value() {}

// BigInt is an arbitrary precision integer.
// The zero BigInt is 0.
type BigInt struct {
	i *big.Int
}

func (BigInt) value() {}

// NewBigInt creates a BigInt holding a copy of i. A nil i yields 0.
func NewBigInt(i *big.Int) BigInt {
	if i == nil {
		return BigInt{i: new(big.Int)}
	}
	return BigInt{i: new(big.Int).Set(i)}
}

// NewBigInt64 creates a BigInt from an int64.
func NewBigInt64(n int64) BigInt {
	return BigInt{i: big.NewInt(n)}
}

// Int returns a copy of the underlying integer.
func (b BigInt) Int() *big.Int {
	if b.i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.i)
}

// String returns the decimal representation.
func (b BigInt) String() string {
	if b.i == nil {
		return "0"
	}
	return b.i.String()
}

// Symbol is a unique identity token. Two symbols are the same only if
// they are the same pointer, whatever their descriptions.
type Symbol struct {
	Description string
}

func (*Symbol) value() {}

// NewSymbol allocates a fresh symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{Description: description}
}

// Func is a callable value.
type Func func(args ...Value) Value

func (Func) value() {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) value() {}

// NewArray creates an Array from values.
func NewArray(vals ...Value) Array {
	return Array(vals)
}

// Truthy reports whether v converts to true under the usual dynamic
// language rules: undefined, null, false, 0, NaN, "" and 0n are falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, Undefined, Null:
		return false
	case Bool:
		return bool(val)
	case Number:
		f := float64(val)
		return f != 0 && f == f
	case String:
		return val != ""
	case BigInt:
		return val.i != nil && val.i.Sign() != 0
	case *Object:
		return val != nil
	case *Symbol:
		return val != nil
	default:
		return true
	}
}

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	sym := NewSymbol("s")
	fn := Func(func(...Value) Value { return nil })

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"numbers", Number(1), Number(1), true},
		{"number vs string", Number(1), String("1"), false},
		{"nan", Number(math.NaN()), Number(math.NaN()), true},
		{"undefined vs nil", Undefined{}, nil, true},
		{"null vs undefined", Null{}, Undefined{}, false},
		{"bigint", NewBigInt64(5), NewBigInt64(5), true},
		{"bigint vs number", NewBigInt64(5), Number(5), false},
		{"same symbol", sym, sym, true},
		{"different symbols", sym, NewSymbol("s"), false},
		{"function", fn, fn, false},
		{"arrays", NewArray(Number(1), String("a")), NewArray(Number(1), String("a")), true},
		{"array length", NewArray(Number(1)), NewArray(Number(1), Number(1)), false},
		{"objects any order",
			NewObjectFromPairs(P("a", Number(1)), P("b", Number(2))),
			NewObjectFromPairs(P("b", Number(2)), P("a", Number(1))), true},
		{"objects missing key",
			NewObjectFromPairs(P("a", Number(1)), P("b", Undefined{})),
			NewObjectFromPairs(P("a", Number(1)), P("c", Undefined{})), false},
		{"nested", NewObjectFromPairs(P("a", NewObjectFromPairs(P("b", Null{})))),
			NewObjectFromPairs(P("a", NewObjectFromPairs(P("b", Null{})))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			if _, isFunc := tt.a.(Func); !isFunc {
				assert.Equal(t, tt.want, Equal(tt.b, tt.a), "symmetric")
			}
		})
	}
}

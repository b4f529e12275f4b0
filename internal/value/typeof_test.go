package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want TypeTag
	}{
		{"array", Array{}, TagArray},
		{"array with elements", NewArray(Number(1), String("x")), TagArray},
		{"null", Null{}, TagNull},
		{"undefined", Undefined{}, TagUndefined},
		{"nil interface", nil, TagUndefined},
		{"object", NewObject(), TagObject},
		{"nil object", (*Object)(nil), TagNull},
		{"true", Bool(true), TagBoolean},
		{"number", Number(1.5), TagNumber},
		{"nan", Number(math.NaN()), TagNumber},
		{"string", String(""), TagString},
		{"function", Func(func(...Value) Value { return Undefined{} }), TagFunction},
		{"symbol", NewSymbol("id"), TagSymbol},
		{"bigint", NewBigInt64(7), TagBigInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.in))
		})
	}
}

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(NewObject()))
	assert.True(t, IsObject(NewObjectFromPairs(P("a", Number(1)))))

	assert.False(t, IsObject(Array{}))
	assert.False(t, IsObject(Null{}))
	assert.False(t, IsObject(Undefined{}))
	assert.False(t, IsObject(nil))
	assert.False(t, IsObject((*Object)(nil)))
	assert.False(t, IsObject(String("object")))
	assert.False(t, IsObject(Number(0)))
}

func TestParseTypeTag(t *testing.T) {
	for _, tag := range AllTags {
		got, err := ParseTypeTag(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}

	_, err := ParseTypeTag("integer")
	assert.Error(t, err)
}

func TestTagOf(t *testing.T) {
	assert.Equal(t, TagNumber, TagOf(String("number")))
	assert.Equal(t, TagArray, TagOf(String("array")))
	assert.Equal(t, TagString, TagOf(String("hello")), "non-tag strings are string exemplars")
	assert.Equal(t, TagNumber, TagOf(Number(5)))
	assert.Equal(t, TagObject, TagOf(NewObject()))
	assert.Equal(t, TagUndefined, TagOf(Undefined{}))
}

func TestTruthy(t *testing.T) {
	falsy := []Value{nil, Undefined{}, Null{}, Bool(false), Number(0), Number(math.NaN()), String(""), NewBigInt64(0)}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "%#v should be falsy", v)
	}

	truthy := []Value{Bool(true), Number(-1), String("0"), NewObject(), Array{}, NewSymbol(""), NewBigInt64(2)}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "%#v should be truthy", v)
	}
}

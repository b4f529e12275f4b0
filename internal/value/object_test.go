package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_InsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", Number(1))
	obj.Set("alpha", Number(2))
	obj.Set("mid", Number(3))

	assert.Equal(t, []string{"zebra", "alpha", "mid"}, obj.Keys())

	// Overwriting keeps position
	obj.Set("zebra", Number(10))
	assert.Equal(t, []string{"zebra", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, Number(10), obj.Lookup("zebra"))
}

func TestObject_GetAndLookup(t *testing.T) {
	obj := NewObjectFromPairs(P("a", Number(1)), P("u", Undefined{}))

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Number(1), v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, Undefined{}, obj.Lookup("missing"))

	// Present-but-undefined differs from absent for Has
	assert.True(t, obj.Has("u"))
	assert.False(t, obj.Has("missing"))
}

func TestObject_SetNilStoresUndefined(t *testing.T) {
	obj := NewObject()
	obj.Set("k", nil)
	assert.Equal(t, Undefined{}, obj.Lookup("k"))
	assert.True(t, obj.Has("k"))
}

func TestObject_Delete(t *testing.T) {
	obj := NewObjectFromPairs(P("a", Number(1)), P("b", Number(2)), P("c", Number(3)))
	obj.Delete("b")

	assert.Equal(t, []string{"a", "c"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, Number(3), obj.Lookup("c"))

	obj.Set("b", Number(4))
	assert.Equal(t, []string{"a", "c", "b"}, obj.Keys())

	obj.Delete("nope")
	assert.Equal(t, 3, obj.Len())
}

func TestObject_Range(t *testing.T) {
	obj := NewObjectFromPairs(P("a", Number(1)), P("b", Number(2)), P("c", Number(3)))

	var seen []string
	obj.Range(func(k string, _ Value) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestObject_CloneIsDeep(t *testing.T) {
	inner := NewObjectFromPairs(P("x", Number(1)))
	obj := NewObjectFromPairs(P("inner", inner), P("list", NewArray(NewObject())))

	clone := obj.Clone()
	require.True(t, Equal(obj, clone))

	inner.Set("x", Number(2))
	cloneInner := clone.Lookup("inner").(*Object)
	assert.Equal(t, Number(1), cloneInner.Lookup("x"))

	clone.Lookup("list").(Array)[0].(*Object).Set("y", Bool(true))
	assert.Equal(t, 0, obj.Lookup("list").(Array)[0].(*Object).Len())
}

func TestObject_NilReceiver(t *testing.T) {
	var obj *Object
	assert.Equal(t, 0, obj.Len())
	assert.Nil(t, obj.Keys())
	assert.False(t, obj.Has("a"))
	assert.Equal(t, Undefined{}, obj.Lookup("a"))
	assert.Nil(t, obj.Clone())
}

func TestNewObjectFromPairs_DuplicateKeys(t *testing.T) {
	obj := NewObjectFromPairs(P("a", Number(1)), P("b", Number(2)), P("a", Number(3)))
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, Number(3), obj.Lookup("a"))
}

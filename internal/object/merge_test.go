package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/helpers/internal/value"
)

func obj(pairs ...value.Pair) *value.Object {
	return value.NewObjectFromPairs(pairs...)
}

var p = value.P

func TestDeepMerge_NoSourcesReturnsTarget(t *testing.T) {
	target := obj(p("a", value.Number(1)))

	got, err := DeepMerge(target)
	require.NoError(t, err)
	assert.Same(t, target, got)
	assert.True(t, value.Equal(obj(p("a", value.Number(1))), got))
}

func TestDeepMerge_OverwritesScalarsAndMergesRecords(t *testing.T) {
	target := obj(
		p("a", value.Number(1)),
		p("nested", obj(p("keep", value.Bool(true)), p("x", value.Number(1)))),
	)
	source := obj(
		p("a", value.String("one")),
		p("nested", obj(p("x", value.Number(2)), p("y", value.Number(3)))),
		p("list", value.NewArray(value.Number(1))),
	)

	got, err := DeepMerge(target, source)
	require.NoError(t, err)
	assert.Same(t, target, got)

	want := obj(
		p("a", value.String("one")),
		p("nested", obj(p("keep", value.Bool(true)), p("x", value.Number(2)), p("y", value.Number(3)))),
		p("list", value.NewArray(value.Number(1))),
	)
	assert.True(t, value.Equal(want, target), Inspect(target))
	assert.Equal(t, []string{"a", "nested", "list"}, target.Keys())
}

func TestDeepMerge_ArraysReplacedWholesale(t *testing.T) {
	target := obj(p("list", value.NewArray(value.Number(1), value.Number(2), value.Number(3))))
	source := obj(p("list", value.NewArray(value.Number(9))))

	_, err := DeepMerge(target, source)
	require.NoError(t, err)
	assert.Equal(t, value.NewArray(value.Number(9)), target.Lookup("list"))
}

func TestDeepMerge_NullAndFunctionsOverwrite(t *testing.T) {
	fn := value.Func(func(...value.Value) value.Value { return value.Null{} })
	target := obj(p("a", obj(p("x", value.Number(1)))), p("b", value.Number(1)))
	source := obj(p("a", value.Null{}), p("b", fn))

	_, err := DeepMerge(target, source)
	require.NoError(t, err)
	assert.Equal(t, value.Null{}, target.Lookup("a"))
	assert.Equal(t, value.TagFunction, value.TypeOf(target.Lookup("b")))
}

func TestDeepMerge_FalsyTargetReplacedByRecord(t *testing.T) {
	for _, falsy := range []value.Value{value.Null{}, value.Undefined{}, value.Number(0), value.String(""), value.Bool(false)} {
		target := obj(p("a", falsy))
		_, err := DeepMerge(target, obj(p("a", obj(p("x", value.Number(1))))))
		require.NoError(t, err)
		assert.True(t, value.Equal(obj(p("x", value.Number(1))), target.Lookup("a")), "falsy %s", value.TypeOf(falsy))
	}
}

func TestDeepMerge_TruthyScalarTargetIsKept(t *testing.T) {
	target := obj(p("a", value.Number(5)))
	_, err := DeepMerge(target, obj(p("a", obj(p("x", value.Number(1))))))
	require.NoError(t, err)
	assert.Equal(t, value.Number(5), target.Lookup("a"))
}

func TestDeepMerge_NonRecordsSkipped(t *testing.T) {
	target := obj(p("a", value.Number(1)))
	_, err := DeepMerge(target, value.Number(3), value.NewArray(obj()), value.Null{}, obj(p("b", value.Number(2))))
	require.NoError(t, err)
	assert.True(t, value.Equal(obj(p("a", value.Number(1)), p("b", value.Number(2))), target))

	arr := value.NewArray(value.Number(1))
	got, err := DeepMerge(arr, obj(p("b", value.Number(2))))
	require.NoError(t, err)
	assert.Equal(t, arr, got)
}

func TestDeepMerge_SourcesUntouched(t *testing.T) {
	nested := obj(p("x", value.Number(1)))
	source := obj(p("n", nested))
	before := source.Clone()

	target := obj()
	_, err := DeepMerge(target, source)
	require.NoError(t, err)

	target.Lookup("n").(*value.Object).Set("x", value.Number(99))
	assert.True(t, value.Equal(before, source))
	assert.NotSame(t, nested, target.Lookup("n"))
}

func TestDeepMerge_IdempotentOnSelf(t *testing.T) {
	x := obj(
		p("a", value.Number(1)),
		p("b", obj(p("c", value.String("d")), p("e", value.NewArray(value.Number(1), value.Number(2))))),
	)
	shallow := obj()
	x.Range(func(k string, v value.Value) bool {
		shallow.Set(k, v)
		return true
	})

	got, err := DeepMerge(shallow, x)
	require.NoError(t, err)
	assert.True(t, value.Equal(x, got))
}

func TestDeepMerge_ApplicationOrder(t *testing.T) {
	a := obj(p("a", value.Number(1)), p("n", obj(p("x", value.Number(1)), p("y", value.Number(1)))))
	b := obj(p("b", value.Number(2)), p("n", obj(p("y", value.Number(2)), p("z", value.Number(2)))))

	both, err := DeepMerge(obj(), a, b)
	require.NoError(t, err)

	first, err := DeepMerge(obj(), a)
	require.NoError(t, err)
	chained, err := DeepMerge(first, b)
	require.NoError(t, err)

	assert.True(t, value.Equal(both, chained))
	assert.Equal(t, value.Number(2), both.(*value.Object).Lookup("n").(*value.Object).Lookup("y"))
}

func TestDeepMerge_CyclicSourceHitsDepthLimit(t *testing.T) {
	cyclic := obj(p("v", value.Number(1)))
	cyclic.Set("self", cyclic)

	_, err := DeepMergeLimit(10, obj(), cyclic)
	require.Error(t, err)
	assert.True(t, IsDepthExceeded(err))

	var de *DepthExceededError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 10, de.MaxDepth)
	assert.Contains(t, de.Path, "self.self")
}

func TestDeepMergeWith_MaxDepth(t *testing.T) {
	deep := obj(p("a", obj(p("b", obj(p("c", value.Number(1)))))))

	_, err := DeepMergeWith(MergeOptions{MaxDepth: 1}, obj(), deep)
	var de *DepthExceededError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.MaxDepth)
	assert.Equal(t, "a.b", de.Path)

	got, err := DeepMergeWith(MergeOptions{MaxDepth: 2}, obj(), deep)
	require.NoError(t, err)
	assert.True(t, value.Equal(deep, got))
}

func TestDeepMergeWith_ZeroSelectsDefault(t *testing.T) {
	cyclic := obj()
	cyclic.Set("self", cyclic)

	_, err := DeepMergeWith(MergeOptions{}, obj(), cyclic)
	var de *DepthExceededError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, DefaultMaxDepth, de.MaxDepth)
}

package object

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/helpers/internal/value"
)

func TestDeduplicator_FirstSeenThenDuplicate(t *testing.T) {
	d := NewDeduplicator[string]()

	assert.False(t, d.IsDuplicate("a"))
	assert.True(t, d.IsDuplicate("a"))
	assert.True(t, d.IsDuplicate("a"))
	assert.False(t, d.IsDuplicate("b"))
	assert.Equal(t, 2, d.Len())
}

func TestDeduplicator_Reset(t *testing.T) {
	d := NewDeduplicator[int]()
	d.IsDuplicate(1)
	require.True(t, d.Seen(1))

	d.Reset()
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Seen(1))
	assert.False(t, d.IsDuplicate(1))
}

func TestDeduplicator_InstancesIndependent(t *testing.T) {
	a := NewDeduplicator[string]()
	b := NewDeduplicator[string]()

	a.IsDuplicate("key")
	assert.False(t, b.IsDuplicate("key"))
	assert.True(t, a.IsDuplicate("key"))
}

func TestDeduplicator_SeenDoesNotRecord(t *testing.T) {
	d := NewDeduplicator[string]()
	assert.False(t, d.Seen("x"))
	assert.False(t, d.IsDuplicate("x"))
}

func TestDeduplicator_ZeroValueUsable(t *testing.T) {
	var d Deduplicator[string]
	assert.False(t, d.IsDuplicate("x"))
	assert.True(t, d.IsDuplicate("x"))
}

func TestDeduplicator_ThreadSafe(t *testing.T) {
	d := NewDeduplicator[int]()
	const workers = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	firsts := 0
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if !d.IsDuplicate(42) {
				mu.Lock()
				firsts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, firsts)
}

func TestValueDeduplicator(t *testing.T) {
	d := NewValueDeduplicator()

	a := value.NewObjectFromPairs(value.P("x", value.Number(1)), value.P("y", value.Number(2)))
	b := value.NewObjectFromPairs(value.P("y", value.Number(2)), value.P("x", value.Number(1)))

	dup, err := d.IsDuplicate(a)
	require.NoError(t, err)
	assert.False(t, dup)

	dup, err = d.IsDuplicate(b)
	require.NoError(t, err)
	assert.True(t, dup, "key order does not matter")

	dup, err = d.IsDuplicate(value.String("1"))
	require.NoError(t, err)
	assert.False(t, dup)

	_, err = d.IsDuplicate(value.NewSymbol("s"))
	assert.True(t, value.IsUnsupported(err))

	d.Reset()
	assert.Equal(t, 0, d.Len())
}

func TestDuplicates(t *testing.T) {
	vals := value.NewArray(
		value.Number(1), value.String("1"), value.Number(1),
		value.NewArray(value.Number(1)), value.NewArray(value.Number(1)), value.Null{},
	)

	got, err := Duplicates(vals)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)
}

func TestDuplicates_ReportsIndex(t *testing.T) {
	_, err := Duplicates(value.NewArray(value.Number(1), value.NewSymbol("s")))

	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)
	assert.True(t, value.IsUnsupported(err))
}

package object

import (
	"sync"

	"github.com/roach88/helpers/internal/value"
)

// Deduplicator remembers keys it has been shown. Each instance owns its
// own set, so unrelated callers never see each other's keys.
//
// Thread-safety: all methods are safe for concurrent use.
type Deduplicator[K comparable] struct {
	mu   sync.Mutex
	seen map[K]struct{}
}

// NewDeduplicator creates an empty deduplicator.
func NewDeduplicator[K comparable]() *Deduplicator[K] {
	return &Deduplicator[K]{seen: make(map[K]struct{})}
}

// IsDuplicate records key and reports whether it had been recorded
// before. The first call for a key returns false.
func (d *Deduplicator[K]) IsDuplicate(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen == nil {
		d.seen = make(map[K]struct{})
	}
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Seen reports whether key has been recorded, without recording it.
func (d *Deduplicator[K]) Seen(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[key]
	return ok
}

// Len returns the number of distinct keys recorded.
func (d *Deduplicator[K]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

// Reset forgets every recorded key.
func (d *Deduplicator[K]) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[K]struct{})
}

// ValueDeduplicator detects structurally equal values, keyed by
// value.Key. Symbols and functions cannot be keyed and are rejected.
type ValueDeduplicator struct {
	keys *Deduplicator[string]
}

// NewValueDeduplicator creates an empty value deduplicator.
func NewValueDeduplicator() *ValueDeduplicator {
	return &ValueDeduplicator{keys: NewDeduplicator[string]()}
}

// IsDuplicate records v and reports whether an equal value was recorded
// before.
func (d *ValueDeduplicator) IsDuplicate(v value.Value) (bool, error) {
	key, err := value.Key(v)
	if err != nil {
		return false, err
	}
	return d.keys.IsDuplicate(key), nil
}

// Len returns the number of distinct values recorded.
func (d *ValueDeduplicator) Len() int {
	return d.keys.Len()
}

// Reset forgets every recorded value.
func (d *ValueDeduplicator) Reset() {
	d.keys.Reset()
}

// Duplicates returns the indexes of elements equal to an earlier element.
func Duplicates(vals value.Array) ([]int, error) {
	d := NewValueDeduplicator()
	var out []int
	for i, v := range vals {
		dup, err := d.IsDuplicate(v)
		if err != nil {
			return nil, &IndexError{Index: i, Err: err}
		}
		if dup {
			out = append(out, i)
		}
	}
	return out, nil
}

package object

import (
	"errors"
)

// ErrInvalidChunkSize is returned by Chunk for a size below 1.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Chunk splits items into consecutive slices of at most size elements.
// Input shorter than size comes back as a single chunk, so an empty input
// yields one empty chunk. Chunks share items' backing array.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidChunkSize
	}
	if len(items) < size {
		return [][]T{items}, nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		out = append(out, items[i:end:end])
	}
	return out, nil
}

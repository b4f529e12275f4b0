package object

import (
	"github.com/roach88/helpers/internal/value"
)

// DeepMerge folds sources into target from left to right and returns
// target.
//
// For each source key, a record value is merged recursively into
// target[key], which is first replaced by an empty record when falsy. Any
// other value overwrites target[key] as is; arrays are shared, not copied.
// A target or source that is not a record makes that source a no-op.
//
// Sources are never modified. If the depth limit is hit, target holds
// whatever was merged before the error.
func DeepMerge(target value.Value, sources ...value.Value) (value.Value, error) {
	return DeepMergeLimit(DefaultMaxDepth, target, sources...)
}

// MergeOptions configures DeepMergeWith.
type MergeOptions struct {
	// MaxDepth bounds record nesting; <= 0 selects DefaultMaxDepth.
	MaxDepth int
}

// DeepMergeLimit is DeepMerge with an explicit nesting limit.
func DeepMergeLimit(maxDepth int, target value.Value, sources ...value.Value) (value.Value, error) {
	return DeepMergeWith(MergeOptions{MaxDepth: maxDepth}, target, sources...)
}

// DeepMergeWith is DeepMerge configured by opts.
func DeepMergeWith(opts MergeOptions, target value.Value, sources ...value.Value) (value.Value, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	for _, source := range sources {
		if err := mergeInto(target, source, "", 0, maxDepth); err != nil {
			return target, err
		}
	}
	return target, nil
}

func mergeInto(target, source value.Value, path string, depth, maxDepth int) error {
	dst, ok := target.(*value.Object)
	if !ok || dst == nil {
		return nil
	}
	src, ok := source.(*value.Object)
	if !ok || src == nil {
		return nil
	}
	if depth > maxDepth {
		return &DepthExceededError{Path: path, MaxDepth: maxDepth}
	}

	// Snapshot keys so merging a record into itself is well defined.
	for _, key := range src.Keys() {
		sv := src.Lookup(key)
		if !value.IsObject(sv) {
			dst.Set(key, sv)
			continue
		}
		tv := dst.Lookup(key)
		if !value.Truthy(tv) {
			tv = value.NewObject()
			dst.Set(key, tv)
		}
		if err := mergeInto(tv, sv, joinPath(path, key), depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

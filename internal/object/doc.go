// Package object implements generic helpers over value.Value records:
// deep merging, structural type comparison against a format descriptor,
// chunking, duplicate detection, JSON round-tripping, zero padding and
// console inspection.
//
// # Format descriptors
//
// A format mirrors the keys of the record it checks. Each entry is an
// exemplar, a list of exemplars (any one of them is accepted) or a nested
// format. A string exemplar naming a type tag stands for that tag, so
// {"id": "number"} and {"id": 0} describe the same record. See
// value.TagOf.
//
// Only keys present in the target are checked. Keys only the format has
// are ignored.
//
// # Arrays
//
// When both the target entry and the format entry are arrays, the
// expected tag comes from the first format element and, by default, one
// matching target element is enough. WithStrictArrays requires every
// element to match one of the format's tags instead.
//
// # Recursion limits
//
// Records may be cyclic since *value.Object is a pointer. Both DeepMerge
// and DeepTypeCompare stop at DefaultMaxDepth nested records.
package object

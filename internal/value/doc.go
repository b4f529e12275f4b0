// Package value provides the dynamic value model shared by the helpers.
//
// A Value is one of a closed set of kinds: Undefined, Null, Bool, Number,
// BigInt, String, *Symbol, Func, Array and *Object. Records are explicit
// insertion-ordered containers, so key iteration never depends on
// reflection or map order.
//
// This package imports nothing internal. The object, harness and cli
// packages all build on it.
package value

// Package types defines the closed set of type kinds and the immutable type
// descriptors produced by layout building.
//
// A descriptor is either a primitive scalar, a struct, a union, or a fixed
// array. Descriptors are never mutated after construction and are safe to
// share across goroutines.
//
// This package is internal to ctypes and should not be used directly.
package types

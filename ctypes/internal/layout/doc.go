// Package layout computes field offsets, padding, and total size/alignment
// for struct and union definitions, including packed mode and bitfield
// storage-unit packing.
//
// This package is internal to ctypes and should not be used directly.
package layout

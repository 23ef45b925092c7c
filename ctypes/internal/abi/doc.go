// Package abi provides alignment arithmetic, numeric coercion, and platform
// target descriptions shared by the layout calculator and the typed accessor.
//
// This package is internal to ctypes and should not be used directly.
package abi

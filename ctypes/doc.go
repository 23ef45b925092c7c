// Package ctypes describes C-compatible memory layouts and reads and writes
// values through them.
//
// A layout is built once into an immutable descriptor, then used with raw
// byte buffers any number of times:
//
//	point, err := ctypes.NewStruct(ctypes.Named("Point")).
//	    AddField("x", ctypes.Int32).
//	    AddField("y", ctypes.Int32).
//	    Build()
//
//	rect, err := ctypes.NewStruct().
//	    AddField("topLeft", point).
//	    AddField("bottomRight", point).
//	    Build()
//
//	view, err := ctypes.NewStructView(rect, map[string]any{
//	    "bottomRight": map[string]any{"x": 100, "y": 200},
//	})
//	x, err := view.Get("bottomRight.x") // int32(100)
//
// # Type System
//
// The closed set of kinds covers the C scalar types (fixed-width integers,
// float/double, bool, wchar_t, the pointer-shaped string kinds, size_t and
// long with their platform-dependent widths) plus struct, union, and fixed
// array composites. Primitive descriptors for the host platform are
// predefined (Int32, Double, Pointer, ...); PrimitiveFor builds descriptors
// for a foreign target.
//
// # Unions, Bitfields, Anonymous Fields
//
// NewUnion overlays all members at offset zero. AddBitfield sub-allocates
// bits inside integer storage units, low-order bits first, packing
// consecutive bitfields with the same storage type into one unit. A bitfield
// write wider than the declared width silently truncates to the low bits,
// matching C. AddAnonymous promotes the member names of a nested struct or
// union into the parent's scope.
//
// # Views
//
// StructView, ArrayView, and PointerView are thin cursors over a descriptor
// plus a buffer; they own no layout state of their own. All byte access
// funnels through ReadValue/WriteValue, the single bounds-checking choke
// point.
//
// # Errors
//
// Layout mistakes surface at Build time as invalid_definition errors. Access
// outside a buffer surfaces as invalid_offset/out_of_bounds and is never
// clamped. Dereferencing an unbound pointer is a null_pointer error.
// Bitfield truncation is deliberately not an error.
package ctypes

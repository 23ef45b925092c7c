// Package cmem provides C-compatible memory layout and typed access to raw
// byte buffers.
//
// The library lets Go code describe the memory layout a C compiler would
// produce for structs, unions, fixed arrays, bitfields and primitive scalars,
// and then read and write values through those layouts with bounds-checked
// buffer access. It is the layout and marshalling core that a foreign-function
// layer builds on; it performs no foreign calls itself.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cmem/         Root package with the Buffer type and RawMemory boundary
//	├── ctypes/   Type descriptors, layout building, typed memory access
//	├── errors/   Structured error types shared across packages
//	├── wasmmem/  RawMemory adapter backed by wazero linear memory
//	└── cmd/      Layout inspection tooling
//
// # Quick Start
//
// Describe a struct and access an instance:
//
//	point, err := ctypes.NewStruct().
//	    AddField("x", ctypes.Int32).
//	    AddField("y", ctypes.Int32).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	view, err := ctypes.NewStructView(point, map[string]any{"x": 10, "y": 20})
//	x, _ := view.Get("x") // int32(10)
//
// # Layout Rules
//
// Unpacked structs follow the usual C rules: each field is placed at the
// smallest offset that satisfies its alignment, the struct alignment is the
// maximum field alignment, and the total size is rounded up to the struct
// alignment. Packed structs place fields back to back with alignment 1.
// Unions overlay every field at offset zero. Consecutive bitfields with the
// same storage type share a storage unit, low-order bits first.
//
// # Memory Model
//
// Layout descriptors are immutable after Build and safe to share across
// goroutines. Buffers are plain mutable byte regions with no internal
// locking; callers that share a buffer across goroutines must serialize
// access themselves. Writing a struct from a map is a sequence of
// independent field writes, not an atomic transaction.
//
// # Native Memory
//
// The core only touches buffers it owns or is handed. Dereferencing a bare
// numeric address requires a RawMemory implementation supplied by the caller;
// the wasmmem package provides one backed by WebAssembly linear memory, which
// doubles as a sandboxed stand-in for native memory in tests.
package cmem

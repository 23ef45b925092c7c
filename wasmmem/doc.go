// Package wasmmem provides memory access adapters for wazero.
//
// This package bridges wazero's memory API with cmem.RawMemory, so typed
// pointers and views can operate directly on WebAssembly linear memory.
// Guest memory acts as a sandboxed address space: bare addresses resolve
// into bounds-checked windows instead of host pointers.
//
// # Memory Wrapper
//
// Wraps wazero api.Memory for pointer dereferencing:
//
//	mem := wasmmem.Wrap(instance.Memory())
//	p, _ := ctypes.PointerAt(pointType, addr, mem)
//	v, _ := p.Contents()
//
// # Allocator Wrapper
//
// Wraps a guest allocation export for placing instances:
//
//	alloc := wasmmem.WrapAllocator(ctx, mod.ExportedFunction("malloc"))
//	addr, _ := alloc.Alloc(uint32(ctypes.Sizeof(pointType)))
package wasmmem

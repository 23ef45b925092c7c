// Package wasmmem adapts wazero guest memory to the cmem.RawMemory interface.
package wasmmem

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero/api"

	cmem "github.com/ffikit/cmem"
	"github.com/ffikit/cmem/errors"
)

// Wrap wraps a wazero api.Memory so typed pointers can dereference guest
// addresses. Returned windows alias guest memory directly; writes through
// them are visible to the guest.
func Wrap(mem api.Memory) cmem.RawMemory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to cmem.RawMemory.
type Wrapper struct {
	Mem api.Memory
}

// Window returns a buffer aliasing guest memory at [addr, addr+length).
// Guest addresses are 32-bit; anything wider is out of bounds by definition.
func (m *Wrapper) Window(addr uint64, length uint32) (*cmem.Buffer, error) {
	if addr > math.MaxUint32 {
		return nil, errors.New(errors.PhaseDeref, errors.KindOutOfBounds).
			Detail("address 0x%x exceeds 32-bit guest address space", addr).
			Build()
	}
	data, ok := m.Mem.Read(uint32(addr), length)
	if !ok {
		return nil, errors.New(errors.PhaseDeref, errors.KindOutOfBounds).
			Detail("guest memory access out of bounds: addr=0x%x length=%d", addr, length).
			Build()
	}
	return cmem.BufferFrom(data), nil
}

// WrapAllocator wraps an exported malloc-style function (one size parameter,
// one address result) so instances can be placed in guest memory.
func WrapAllocator(ctx context.Context, fn api.Function) *Allocator {
	if fn == nil {
		return nil
	}
	return &Allocator{Ctx: ctx, Fn: fn}
}

// Allocator adapts a guest allocation export.
type Allocator struct {
	Ctx context.Context
	Fn  api.Function
}

// Alloc reserves size bytes in guest memory and returns the address.
func (a *Allocator) Alloc(size uint32) (uint64, error) {
	results, err := a.Fn.Call(a.Ctx, uint64(size))
	if err != nil {
		return 0, errors.New(errors.PhaseDeref, errors.KindUnsupported).
			Detail("guest allocation failed").
			Cause(err).
			Build()
	}
	if len(results) == 0 {
		return 0, errors.New(errors.PhaseDeref, errors.KindUnsupported).
			Detail("guest allocator returned no result").
			Build()
	}
	return results[0], nil
}

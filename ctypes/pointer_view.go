package ctypes

import (
	"math"

	cmem "github.com/ffikit/cmem"
	"github.com/ffikit/cmem/errors"
)

// PointerView models a typed pointer. It is either null, bound to a Buffer
// (pointing at managed storage), or holds a bare numeric address resolved
// through a RawMemory on each dereference. Dereferencing null fails;
// dereferencing a bare address without a RawMemory fails.
type PointerView struct {
	base *Type
	buf  *cmem.Buffer
	raw  cmem.RawMemory
	addr uint64
}

// NewPointer returns a null pointer to the given pointee type.
func NewPointer(base *Type) (*PointerView, error) {
	if base == nil || base.Kind == KindVoid {
		return nil, errors.InvalidDefinition("pointer requires a sized pointee type")
	}
	return &PointerView{base: base}, nil
}

// PointerTo returns a pointer bound to managed storage. Dereferences are
// bounds-checked against the buffer.
func PointerTo(base *Type, buf *cmem.Buffer) (*PointerView, error) {
	p, err := NewPointer(base)
	if err != nil {
		return nil, err
	}
	if buf.Len() < int(base.Size) {
		return nil, errors.OutOfBounds(errors.PhaseBuild, nil, 0, int(base.Size), buf.Len())
	}
	p.buf = buf
	return p, nil
}

// PointerAt returns a pointer holding a bare address. Dereferences resolve
// the address through raw; a nil raw produces a pointer that can carry the
// address but not be dereferenced.
func PointerAt(base *Type, addr uint64, raw cmem.RawMemory) (*PointerView, error) {
	p, err := NewPointer(base)
	if err != nil {
		return nil, err
	}
	p.addr = addr
	p.raw = raw
	return p, nil
}

// IsNull reports whether the pointer has neither storage nor an address.
func (p *PointerView) IsNull() bool {
	return p.buf == nil && p.addr == 0
}

// Address returns the numeric address for address-bound pointers, zero
// otherwise.
func (p *PointerView) Address() uint64 { return p.addr }

// Base returns the pointee descriptor.
func (p *PointerView) Base() *Type { return p.base }

// BindBuffer repoints at managed storage, clearing any bare address.
func (p *PointerView) BindBuffer(buf *cmem.Buffer) error {
	if buf.Len() < int(p.base.Size) {
		return errors.OutOfBounds(errors.PhaseBuild, nil, 0, int(p.base.Size), buf.Len())
	}
	p.buf = buf
	p.addr = 0
	return nil
}

// BindAddress repoints at a bare address, clearing any buffer binding.
func (p *PointerView) BindAddress(addr uint64, raw cmem.RawMemory) {
	p.buf = nil
	p.addr = addr
	if raw != nil {
		p.raw = raw
	}
}

// Clear makes the pointer null.
func (p *PointerView) Clear() {
	p.buf = nil
	p.addr = 0
}

// window resolves the storage for element i of the pointee. Element offset
// arithmetic is done in 64 bits so wide indexes fail instead of wrapping.
func (p *PointerView) window(phase errors.Phase, i int) (*cmem.Buffer, error) {
	size := int(p.base.Size)
	if p.buf != nil {
		if i < 0 {
			return nil, errors.IndexOutOfRange(phase, i, 0)
		}
		if size > 0 && i > math.MaxInt/size {
			return nil, errors.IndexOutOfRange(phase, i, p.buf.Len()/size)
		}
		return p.buf.Window(i*size, size)
	}
	if p.addr == 0 {
		return nil, errors.NullPointer()
	}
	if p.raw == nil {
		return nil, errors.New(errors.PhaseDeref, errors.KindUnsupported).
			Detail("bare address 0x%x has no raw memory to resolve through", p.addr).
			Build()
	}
	if i < 0 {
		return nil, errors.IndexOutOfRange(phase, i, 0)
	}
	off := uint64(i) * uint64(p.base.Size)
	addr := p.addr + off
	if (i != 0 && off/uint64(i) != uint64(p.base.Size)) || addr < p.addr {
		return nil, errors.New(phase, errors.KindOutOfBounds).
			Detail("element %d of 0x%x overflows the address space", i, p.addr).
			Build()
	}
	return p.raw.Window(addr, p.base.Size)
}

// Contents reads the pointee.
func (p *PointerView) Contents() (any, error) {
	w, err := p.window(errors.PhaseRead, 0)
	if err != nil {
		return nil, err
	}
	return ReadValue(w, p.base, 0)
}

// SetContents writes the pointee.
func (p *PointerView) SetContents(value any) error {
	w, err := p.window(errors.PhaseWrite, 0)
	if err != nil {
		return err
	}
	return WriteValue(w, p.base, value, 0)
}

// Index reads element i, treating the pointee as the first element of an
// array. Buffer-bound pointers bound the access by the buffer length;
// address-bound pointers resolve a fresh window per element.
func (p *PointerView) Index(i int) (any, error) {
	w, err := p.window(errors.PhaseRead, i)
	if err != nil {
		return nil, err
	}
	return ReadValue(w, p.base, 0)
}

// SetIndex writes element i.
func (p *PointerView) SetIndex(i int, value any) error {
	w, err := p.window(errors.PhaseWrite, i)
	if err != nil {
		return err
	}
	return WriteValue(w, p.base, value, 0)
}

// View returns a struct view of a composite pointee, sharing its storage.
func (p *PointerView) View() (*StructView, error) {
	w, err := p.window(errors.PhaseRead, 0)
	if err != nil {
		return nil, err
	}
	return WrapStruct(p.base, w)
}

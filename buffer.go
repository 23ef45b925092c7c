package cmem

import (
	"github.com/ffikit/cmem/errors"
)

// Buffer is a fixed-length, zero-initialized byte region. A Buffer either
// owns its bytes (NewBuffer) or aliases a sub-range of another Buffer
// (Window) or an external byte slice (BufferFrom). Windows share storage
// with their parent; writes through one are visible through the other.
type Buffer struct {
	data []byte
}

// NewBuffer allocates an owned, zeroed buffer of the given size.
func NewBuffer(size int) (*Buffer, error) {
	if size < 0 {
		return nil, errors.New(errors.PhaseBuild, errors.KindInvalidDefinition).
			Detail("negative buffer size %d", size).
			Build()
	}
	return &Buffer{data: make([]byte, size)}, nil
}

// BufferFrom wraps an existing byte slice without copying. The Buffer
// aliases the slice; the caller keeps ownership of the storage.
func BufferFrom(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the underlying storage. Mutating the returned slice mutates
// the buffer.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Window returns a non-owning view over [offset, offset+length). The window
// shares storage with b.
func (b *Buffer) Window(offset, length int) (*Buffer, error) {
	if offset < 0 || length < 0 {
		return nil, errors.New(errors.PhaseRead, errors.KindInvalidOffset).
			Detail("negative window offset=%d length=%d", offset, length).
			Build()
	}
	// Subtract instead of adding so offset+length cannot overflow int.
	if length > len(b.data) || offset > len(b.data)-length {
		return nil, errors.New(errors.PhaseRead, errors.KindOutOfBounds).
			Detail("window at %d of length %d exceeds buffer length %d", offset, length, len(b.data)).
			Build()
	}
	return &Buffer{data: b.data[offset : offset+length : offset+length]}, nil
}

// Zero clears every byte of the buffer.
func (b *Buffer) Zero() {
	clear(b.data)
}

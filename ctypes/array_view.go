package ctypes

import (
	"iter"

	cmem "github.com/ffikit/cmem"
	"github.com/ffikit/cmem/errors"
)

// ArrayView binds a fixed-array descriptor to a buffer holding one instance.
// All element access is bounds-checked against the descriptor's length.
type ArrayView struct {
	typ *Type
	buf *cmem.Buffer
}

// NewArrayView allocates a zeroed array instance, optionally initialized
// from a slice of element values. Fewer initializers than elements leaves
// the tail zeroed; more is an error. For char arrays a single string
// initializer stores a NUL-terminated C string.
func NewArrayView(t *Type, init ...any) (*ArrayView, error) {
	if t == nil || t.Kind != KindArray {
		return nil, errors.InvalidDefinition("array view requires an array type")
	}
	buf, err := cmem.NewBuffer(int(t.Size))
	if err != nil {
		return nil, err
	}
	v := &ArrayView{typ: t, buf: buf}

	if len(init) == 1 {
		switch iv := init[0].(type) {
		case string, []byte, []any:
			if err := WriteValue(buf, t, iv, 0); err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	if len(init) > 0 {
		if err := WriteValue(buf, t, init, 0); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// WrapArray views an existing buffer as an array instance, sharing storage.
func WrapArray(t *Type, buf *cmem.Buffer) (*ArrayView, error) {
	if t == nil || t.Kind != KindArray {
		return nil, errors.InvalidDefinition("array view requires an array type")
	}
	window, err := buf.Window(0, int(t.Size))
	if err != nil {
		return nil, err
	}
	return &ArrayView{typ: t, buf: window}, nil
}

// Len returns the element count.
func (v *ArrayView) Len() int { return int(v.typ.Length) }

func (v *ArrayView) elemWindow(i int) (int, error) {
	if i < 0 || i >= int(v.typ.Length) {
		return 0, errors.IndexOutOfRange(errors.PhaseRead, i, int(v.typ.Length))
	}
	return i * int(v.typ.Elem.Size), nil
}

// Get reads element i.
func (v *ArrayView) Get(i int) (any, error) {
	off, err := v.elemWindow(i)
	if err != nil {
		return nil, err
	}
	return ReadValue(v.buf, v.typ.Elem, off)
}

// Set writes element i.
func (v *ArrayView) Set(i int, value any) error {
	off, err := v.elemWindow(i)
	if err != nil {
		return err
	}
	return WriteValue(v.buf, v.typ.Elem, value, off)
}

// All iterates elements in index order. Decode errors stop the iteration;
// call Get directly to observe them.
func (v *ArrayView) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := range int(v.typ.Length) {
			val, err := v.Get(i)
			if err != nil {
				return
			}
			if !yield(i, val) {
				return
			}
		}
	}
}

// ElementView returns a struct view of a composite element, sharing storage.
func (v *ArrayView) ElementView(i int) (*StructView, error) {
	off, err := v.elemWindow(i)
	if err != nil {
		return nil, err
	}
	window, err := v.buf.Window(off, int(v.typ.Elem.Size))
	if err != nil {
		return nil, err
	}
	return WrapStruct(v.typ.Elem, window)
}

// ToSlice decodes the whole array into a Go slice.
func (v *ArrayView) ToSlice() ([]any, error) {
	val, err := ReadValue(v.buf, v.typ, 0)
	if err != nil {
		return nil, err
	}
	return val.([]any), nil
}

// Type returns the array descriptor.
func (v *ArrayView) Type() *Type { return v.typ }

// Buffer returns the backing buffer.
func (v *ArrayView) Buffer() *cmem.Buffer { return v.buf }

// Bytes returns the raw instance bytes, aliasing the backing storage.
func (v *ArrayView) Bytes() []byte { return v.buf.Bytes() }

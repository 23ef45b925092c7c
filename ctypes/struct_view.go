package ctypes

import (
	cmem "github.com/ffikit/cmem"
	"github.com/ffikit/cmem/errors"
)

// StructView binds a struct or union descriptor to a buffer holding one
// instance. Field access goes through dotted paths, so nested and promoted
// members are reachable without intermediate views.
type StructView struct {
	typ *Type
	buf *cmem.Buffer
}

// NewStructView allocates a zeroed instance of t and optionally initializes
// it from a field map.
func NewStructView(t *Type, init map[string]any) (*StructView, error) {
	if t == nil || (t.Kind != KindStruct && t.Kind != KindUnion) {
		return nil, errors.InvalidDefinition("struct view requires a struct or union type")
	}
	buf, err := cmem.NewBuffer(int(t.Size))
	if err != nil {
		return nil, err
	}
	v := &StructView{typ: t, buf: buf}
	if init != nil {
		if err := WriteValue(buf, t, init, 0); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// WrapStruct views an existing buffer as an instance of t. The buffer is
// shared, not copied, and must hold at least one full instance.
func WrapStruct(t *Type, buf *cmem.Buffer) (*StructView, error) {
	if t == nil || (t.Kind != KindStruct && t.Kind != KindUnion) {
		return nil, errors.InvalidDefinition("struct view requires a struct or union type")
	}
	window, err := buf.Window(0, int(t.Size))
	if err != nil {
		return nil, err
	}
	return &StructView{typ: t, buf: window}, nil
}

// Get reads a member through its dotted path.
func (v *StructView) Get(path string) (any, error) {
	return ReadField(v.buf, v.typ, path)
}

// Set writes a member through its dotted path.
func (v *StructView) Set(path string, value any) error {
	return WriteField(v.buf, v.typ, path, value)
}

// ToMap decodes the whole instance into a field map.
func (v *StructView) ToMap() (map[string]any, error) {
	val, err := ReadValue(v.buf, v.typ, 0)
	if err != nil {
		return nil, err
	}
	return val.(map[string]any), nil
}

// Field returns a view of a nested struct or union member sharing this
// view's storage.
func (v *StructView) Field(path string) (*StructView, error) {
	m, err := ResolvePath(v.typ, path)
	if err != nil {
		return nil, err
	}
	if m.Type.Kind != KindStruct && m.Type.Kind != KindUnion {
		return nil, errors.TypeMismatch(errors.PhaseRead, []string{path}, "", m.Type.String())
	}
	window, err := v.buf.Window(m.Offset, int(m.Type.Size))
	if err != nil {
		return nil, err
	}
	return &StructView{typ: m.Type, buf: window}, nil
}

// Type returns the descriptor this view decodes through.
func (v *StructView) Type() *Type { return v.typ }

// Buffer returns the backing buffer.
func (v *StructView) Buffer() *cmem.Buffer { return v.buf }

// Bytes returns the raw instance bytes, aliasing the backing storage.
func (v *StructView) Bytes() []byte { return v.buf.Bytes() }

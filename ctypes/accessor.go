package ctypes

import (
	"strings"

	cmem "github.com/ffikit/cmem"
	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/ctypes/internal/types"
	"github.com/ffikit/cmem/errors"
)

// Sizeof returns the byte size of any descriptor.
func Sizeof(t *Type) int {
	if t == nil {
		return 0
	}
	return int(t.Size)
}

// Alignof returns the alignment of any descriptor.
func Alignof(t *Type) int {
	if t == nil {
		return 1
	}
	return int(t.Align)
}

// checkBounds is the single enforcement point for offset and bounds
// invariants. Every read and write in the package funnels through it.
func checkBounds(phase errors.Phase, buf *cmem.Buffer, offset, size int) ([]byte, error) {
	if offset < 0 {
		return nil, errors.InvalidOffset(phase, offset)
	}
	// Subtract instead of adding so offset+size cannot overflow int.
	if size > buf.Len() || offset > buf.Len()-size {
		return nil, errors.OutOfBounds(phase, nil, offset, size, buf.Len())
	}
	return buf.Bytes()[offset : offset+size], nil
}

// ReadValue decodes a value of type t from buf at offset. Primitives decode
// to their natural Go types, structs and unions to map[string]any with
// anonymous members flattened, arrays to []any.
func ReadValue(buf *cmem.Buffer, t *Type, offset int) (any, error) {
	window, err := checkBounds(errors.PhaseRead, buf, offset, int(t.Size))
	if err != nil {
		return nil, err
	}
	return readBytes(window, t)
}

func readBytes(window []byte, t *Type) (any, error) {
	switch t.Kind {
	case types.KindStruct, types.KindUnion:
		return readComposite(window, t)
	case types.KindArray:
		out := make([]any, t.Length)
		elemSize := int(t.Elem.Size)
		for i := range out {
			v, err := readBytes(window[i*elemSize:(i+1)*elemSize], t.Elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return types.ReadPrimitive(t, window)
	}
}

func readComposite(window []byte, t *Type) (map[string]any, error) {
	out := make(map[string]any, len(t.Fields))
	for i := range t.Fields {
		f := &t.Fields[i]
		fw := window[f.Offset : f.Offset+f.Type.Size]

		if f.IsBitfield() {
			out[f.Name] = types.ReadBits(f.Type, fw, f.BitOffset, f.BitWidth)
			continue
		}
		if f.Anonymous {
			nested, err := readComposite(fw, f.Type)
			if err != nil {
				return nil, err
			}
			for k, v := range nested {
				out[k] = v
			}
			continue
		}
		v, err := readBytes(fw, f.Type)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}

// WriteValue encodes a value of type t into buf at offset. Struct and union
// values are map[string]any keyed by member name (promoted names included);
// members absent from the map stay zero, unknown keys are rejected. Array
// values are slices, or a string for a char array. Writing a composite
// zeroes its region first.
func WriteValue(buf *cmem.Buffer, t *Type, value any, offset int) error {
	window, err := checkBounds(errors.PhaseWrite, buf, offset, int(t.Size))
	if err != nil {
		return err
	}
	if t.Kind.IsComposite() {
		clear(window)
	}
	return writeBytes(window, t, value)
}

func writeBytes(window []byte, t *Type, value any) error {
	switch t.Kind {
	case types.KindStruct, types.KindUnion:
		m, ok := value.(map[string]any)
		if !ok {
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.String())
		}
		for key := range m {
			if !t.HasField(key) {
				return errors.UnknownField(errors.PhaseWrite, key)
			}
		}
		return writeComposite(window, t, m)
	case types.KindArray:
		return writeArray(window, t, value)
	default:
		return types.WritePrimitive(t, window, value)
	}
}

// writeComposite assumes the window is already zeroed and the map keys are
// validated. Anonymous members receive the same map, so a union member named
// through promotion writes at its parent-relative offset.
func writeComposite(window []byte, t *Type, m map[string]any) error {
	for i := range t.Fields {
		f := &t.Fields[i]
		fw := window[f.Offset : f.Offset+f.Type.Size]

		if f.Anonymous {
			if err := writeComposite(fw, f.Type, m); err != nil {
				return err
			}
			// A value for the member's own name overlays the promotion.
			if f.Name != "" {
				if v, ok := m[f.Name]; ok {
					if err := writeBytes(fw, f.Type, v); err != nil {
						return wrapFieldErr(err, f.Name)
					}
				}
			}
			continue
		}

		v, ok := m[f.Name]
		if !ok {
			continue
		}
		if f.IsBitfield() {
			if err := types.WriteBits(f.Type, fw, f.BitOffset, f.BitWidth, v); err != nil {
				return wrapFieldErr(err, f.Name)
			}
			continue
		}
		if err := writeBytes(fw, f.Type, v); err != nil {
			return wrapFieldErr(err, f.Name)
		}
	}
	return nil
}

func writeArray(window []byte, t *Type, value any) error {
	elemSize := int(t.Elem.Size)

	switch v := value.(type) {
	case []byte:
		// Raw copy; excess bytes are rejected like excess initializers.
		if len(v) > len(window) {
			return errors.OutOfBounds(errors.PhaseWrite, nil, 0, len(v), len(window))
		}
		copy(window, v)
		return nil
	case string:
		// C string initialization for char arrays, NUL-terminated.
		if t.Elem.Kind != types.KindInt8 && t.Elem.Kind != types.KindUInt8 {
			return errors.TypeMismatch(errors.PhaseWrite, nil, "string", t.String())
		}
		n := min(len(v), int(t.Length)-1)
		copy(window[:n], v[:n])
		window[n] = 0
		return nil
	case []any:
		if len(v) > int(t.Length) {
			return errors.IndexOutOfRange(errors.PhaseWrite, len(v)-1, int(t.Length))
		}
		for i, elem := range v {
			if err := writeBytes(window[i*elemSize:(i+1)*elemSize], t.Elem, elem); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.String())
	}
}

func wrapFieldErr(err error, name string) error {
	if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
		e.Path = []string{name}
		return e
	}
	return err
}

// Member is a field resolved through a dotted path, with its cumulative
// offset from the enclosing composite's start.
type Member struct {
	Field  *Field
	Type   *Type
	Offset int
}

// ResolvePath resolves a dotted member path ("topLeft.x") against a
// composite descriptor, accumulating offsets through nested and promoted
// members.
func ResolvePath(t *Type, path string) (Member, error) {
	cur := t
	offset := 0
	var member Member

	parts := strings.Split(path, ".")
	for i, part := range parts {
		if cur.Kind != types.KindStruct && cur.Kind != types.KindUnion {
			return Member{}, errors.New(errors.PhaseRead, errors.KindUnknownField).
				Path(parts[:i+1]...).
				Detail("%s is not a struct or union", cur).
				Build()
		}
		r, ok := cur.Lookup(part)
		if !ok {
			return Member{}, errors.New(errors.PhaseRead, errors.KindUnknownField).
				Path(parts[:i+1]...).
				Detail("unknown member %q in %s", part, cur).
				Build()
		}
		offset += int(r.Offset)
		member = Member{Field: r.Field, Type: r.Field.Type, Offset: offset}
		cur = r.Field.Type
	}
	return member, nil
}

// FieldOffset returns the byte offset of a dotted member path from the
// start of the composite.
func FieldOffset(t *Type, path string) (int, error) {
	m, err := ResolvePath(t, path)
	if err != nil {
		return 0, err
	}
	return m.Offset, nil
}

// ReadField reads one member of a composite instance through its dotted
// path.
func ReadField(buf *cmem.Buffer, t *Type, path string) (any, error) {
	m, err := ResolvePath(t, path)
	if err != nil {
		return nil, err
	}
	if m.Field.IsBitfield() {
		window, err := checkBounds(errors.PhaseRead, buf, m.Offset, int(m.Type.Size))
		if err != nil {
			return nil, err
		}
		return types.ReadBits(m.Type, window, m.Field.BitOffset, m.Field.BitWidth), nil
	}
	return ReadValue(buf, m.Type, m.Offset)
}

// WriteField writes one member of a composite instance through its dotted
// path.
func WriteField(buf *cmem.Buffer, t *Type, path string, value any) error {
	m, err := ResolvePath(t, path)
	if err != nil {
		return err
	}
	if m.Field.IsBitfield() {
		window, err := checkBounds(errors.PhaseWrite, buf, m.Offset, int(m.Type.Size))
		if err != nil {
			return err
		}
		return types.WriteBits(m.Type, window, m.Field.BitOffset, m.Field.BitWidth, value)
	}
	return WriteValue(buf, m.Type, value, m.Offset)
}

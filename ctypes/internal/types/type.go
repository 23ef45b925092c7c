package types

import (
	"fmt"

	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/errors"
)

// Type is an immutable layout descriptor: a primitive scalar, a struct, a
// union, or a fixed array.
type Type struct {
	Elem   *Type // array element type
	lookup map[string]Resolved
	Fields []Field // struct/union members, declaration order
	Name   string  // optional tag, used in diagnostics
	Size   uint32
	Align  uint32
	Length uint32 // array element count
	Kind   Kind
	Packed bool
}

// Field is a struct or union member. Offset is relative to the start of the
// enclosing composite. BitWidth is zero for plain fields; for bitfields,
// BitOffset is the low bit position inside the storage unit at Offset.
type Field struct {
	Type      *Type
	Name      string
	Offset    uint32
	BitOffset uint8
	BitWidth  uint8
	Anonymous bool
}

// IsBitfield reports whether the field occupies a sub-range of bits.
func (f *Field) IsBitfield() bool {
	return f.BitWidth > 0
}

// Resolved is a field located within a composite, with the cumulative offset
// from the composite start. Promoted members of anonymous fields resolve at
// their parent-relative offset.
type Resolved struct {
	Field  *Field
	Offset uint32
}

// NewPrimitive returns the descriptor for a scalar kind on the given target.
// Alignment equals size, capped at the target pointer size.
func NewPrimitive(k Kind, target abi.Target) *Type {
	size := PrimitiveSize(k, target)
	align := size
	if align > target.MaxAlignment() {
		align = target.MaxAlignment()
	}
	if align == 0 {
		align = 1
	}
	return &Type{Kind: k, Size: size, Align: align}
}

// PrimitiveSize returns the byte size of a scalar kind on the given target.
func PrimitiveSize(k Kind, target abi.Target) uint32 {
	switch k {
	case KindVoid:
		return 0
	case KindInt8, KindUInt8, KindBool:
		return 1
	case KindInt16, KindUInt16:
		return 2
	case KindInt32, KindUInt32, KindFloat:
		return 4
	case KindInt64, KindUInt64, KindDouble:
		return 8
	case KindWChar:
		return target.WCharSize
	case KindLong, KindULong:
		return target.LongSize
	case KindPointer, KindString, KindWString, KindSizeT, KindSSizeT:
		return target.PointerSize
	default:
		return 0
	}
}

// NewComposite builds a struct or union descriptor from laid-out fields.
// It constructs the name lookup table, promoting members of anonymous
// composite fields into the parent scope, and rejects duplicate names.
func NewComposite(kind Kind, name string, fields []Field, size, align uint32, packed bool) (*Type, error) {
	if kind != KindStruct && kind != KindUnion {
		return nil, errors.InvalidDefinition("composite kind must be struct or union, got %s", kind)
	}

	t := &Type{
		Kind:   kind,
		Name:   name,
		Fields: fields,
		Size:   size,
		Align:  align,
		Packed: packed,
		lookup: make(map[string]Resolved, len(fields)),
	}

	for i := range fields {
		f := &t.Fields[i]

		if f.Name != "" {
			if _, exists := t.lookup[f.Name]; exists {
				return nil, errors.InvalidDefinition("duplicate field name %q", f.Name)
			}
			t.lookup[f.Name] = Resolved{Field: f, Offset: f.Offset}
		}

		if f.Anonymous {
			if f.Type.Kind != KindStruct && f.Type.Kind != KindUnion {
				return nil, errors.InvalidDefinition("anonymous field %q must be a struct or union", f.Name)
			}
			for promoted, r := range f.Type.lookup {
				if _, exists := t.lookup[promoted]; exists {
					return nil, errors.InvalidDefinition(
						"promoted name %q of anonymous field collides with an existing member", promoted)
				}
				t.lookup[promoted] = Resolved{Field: r.Field, Offset: f.Offset + r.Offset}
			}
		}
	}

	return t, nil
}

// NewArray builds a fixed-length array descriptor.
func NewArray(elem *Type, length uint32) (*Type, error) {
	if elem == nil || elem.Kind == KindVoid {
		return nil, errors.InvalidDefinition("array element type must be a sized type")
	}
	if length == 0 {
		return nil, errors.InvalidDefinition("array length must be positive")
	}
	size, ok := abi.SafeMulU32(elem.Size, length)
	if !ok {
		return nil, errors.InvalidDefinition("array size overflows: %d elements of %d bytes", length, elem.Size)
	}
	return &Type{
		Kind:   KindArray,
		Elem:   elem,
		Length: length,
		Size:   size,
		Align:  elem.Align,
	}, nil
}

// Lookup resolves a member name in this composite's scope, including names
// promoted from anonymous fields.
func (t *Type) Lookup(name string) (Resolved, bool) {
	r, ok := t.lookup[name]
	return r, ok
}

// HasField reports whether name resolves in this composite's scope.
func (t *Type) HasField(name string) bool {
	_, ok := t.lookup[name]
	return ok
}

// String returns a short diagnostic name for the type.
func (t *Type) String() string {
	switch t.Kind {
	case KindStruct, KindUnion:
		if t.Name != "" {
			return fmt.Sprintf("%s %s", t.Kind, t.Name)
		}
		return fmt.Sprintf("%s{%d fields}", t.Kind, len(t.Fields))
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Elem, t.Length)
	default:
		return t.Kind.String()
	}
}

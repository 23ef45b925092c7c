package layout

import (
	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/ctypes/internal/types"
	"github.com/ffikit/cmem/errors"
)

// FieldSpec is one declared member, in declaration order. BitWidth zero means
// a plain field; nonzero declares a bitfield backed by Type as its storage
// unit.
type FieldSpec struct {
	Type      *types.Type
	Name      string
	BitWidth  uint8
	Anonymous bool
}

// Result is a computed composite layout, before name resolution.
type Result struct {
	Fields []types.Field
	Size   uint32
	Align  uint32
}

// Struct lays out fields sequentially. Unpacked mode places each field at the
// smallest offset satisfying its alignment and rounds the total size up to
// the struct alignment; packed mode places fields back to back and forces
// alignment 1.
//
// Consecutive bitfields with the same storage kind share a storage unit,
// low-order bits first. A different storage kind, a plain field, or a width
// that would overflow the remaining bits starts a new storage unit.
func Struct(specs []FieldSpec, packed bool) (Result, error) {
	if err := validate(specs); err != nil {
		return Result{}, err
	}

	fields := make([]types.Field, 0, len(specs))
	offset := uint32(0)
	maxAlign := uint32(1)

	// Bitfield cursor: current storage unit, or bitType == nil when closed.
	var bitType *types.Type
	var bitUnitOffset uint32
	var bitCursor uint32

	for _, spec := range specs {
		align := spec.Type.Align
		if align > maxAlign {
			maxAlign = align
		}

		if spec.BitWidth > 0 {
			unitBits := spec.Type.Size * 8
			if bitType == nil || bitType.Kind != spec.Type.Kind || bitCursor+uint32(spec.BitWidth) > unitBits {
				// Open a new storage unit.
				if !packed {
					offset = abi.AlignTo(offset, align)
				}
				bitType = spec.Type
				bitUnitOffset = offset
				bitCursor = 0
				offset += spec.Type.Size
			}
			fields = append(fields, types.Field{
				Name:      spec.Name,
				Type:      spec.Type,
				Offset:    bitUnitOffset,
				BitOffset: uint8(bitCursor),
				BitWidth:  spec.BitWidth,
			})
			bitCursor += uint32(spec.BitWidth)
			continue
		}

		bitType = nil
		if !packed {
			offset = abi.AlignTo(offset, align)
		}
		fields = append(fields, types.Field{
			Name:      spec.Name,
			Type:      spec.Type,
			Offset:    offset,
			Anonymous: spec.Anonymous,
		})
		offset += spec.Type.Size
	}

	if packed {
		return Result{Fields: fields, Size: offset, Align: 1}, nil
	}
	return Result{Fields: fields, Size: abi.AlignTo(offset, maxAlign), Align: maxAlign}, nil
}

// Union overlays every field at offset zero. Each bitfield gets its own
// storage unit. Size is the largest member size rounded up to the union
// alignment.
func Union(specs []FieldSpec) (Result, error) {
	if err := validate(specs); err != nil {
		return Result{}, err
	}

	fields := make([]types.Field, 0, len(specs))
	maxAlign := uint32(1)
	maxSize := uint32(0)

	for _, spec := range specs {
		if spec.Type.Align > maxAlign {
			maxAlign = spec.Type.Align
		}
		if spec.Type.Size > maxSize {
			maxSize = spec.Type.Size
		}
		fields = append(fields, types.Field{
			Name:      spec.Name,
			Type:      spec.Type,
			Offset:    0,
			BitWidth:  spec.BitWidth,
			Anonymous: spec.Anonymous,
		})
	}

	return Result{Fields: fields, Size: abi.AlignTo(maxSize, maxAlign), Align: maxAlign}, nil
}

func validate(specs []FieldSpec) error {
	for _, spec := range specs {
		if spec.Name == "" && !spec.Anonymous {
			return errors.InvalidDefinition("field name must not be empty")
		}
		if spec.Type == nil {
			return errors.InvalidDefinition("field %q has no type", spec.Name)
		}
		if spec.Type.Kind == types.KindVoid {
			return errors.InvalidDefinition("field %q cannot have type void", spec.Name)
		}
		if spec.BitWidth > 0 {
			if !spec.Type.Kind.IsBitfieldStorage() {
				return errors.InvalidDefinition(
					"bitfield %q requires a fixed-width integer storage type, got %s", spec.Name, spec.Type)
			}
			if uint32(spec.BitWidth) > spec.Type.Size*8 {
				return errors.InvalidDefinition(
					"bitfield %q width %d exceeds its %d-bit storage unit", spec.Name, spec.BitWidth, spec.Type.Size*8)
			}
		}
	}
	return nil
}

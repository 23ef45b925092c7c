package types

import (
	"encoding/binary"
	"math"

	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/errors"
)

// Primitive values use little-endian byte order, matching the x86-64 and
// wasm32 targets this library serves.

func readUint(buf []byte, size uint32) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	default:
		return binary.LittleEndian.Uint64(buf)
	}
}

func writeUint(buf []byte, size uint32, v uint64) {
	switch size {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	default:
		binary.LittleEndian.PutUint64(buf, v)
	}
}

func signExtend(v uint64, size uint32) int64 {
	shift := 64 - size*8
	return int64(v<<shift) >> shift
}

// ReadPrimitive decodes a scalar from buf, which must be exactly t.Size
// bytes. Signed kinds return their natural Go type; the pointer-sized kinds
// return uint64 addresses; WChar returns a rune code point.
func ReadPrimitive(t *Type, buf []byte) (any, error) {
	switch t.Kind {
	case KindInt8:
		return int8(buf[0]), nil
	case KindUInt8:
		return buf[0], nil
	case KindInt16:
		return int16(binary.LittleEndian.Uint16(buf)), nil
	case KindUInt16:
		return binary.LittleEndian.Uint16(buf), nil
	case KindInt32:
		return int32(binary.LittleEndian.Uint32(buf)), nil
	case KindUInt32:
		return binary.LittleEndian.Uint32(buf), nil
	case KindInt64:
		return int64(binary.LittleEndian.Uint64(buf)), nil
	case KindUInt64:
		return binary.LittleEndian.Uint64(buf), nil
	case KindFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
	case KindDouble:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
	case KindBool:
		return buf[0] != 0, nil
	case KindWChar:
		return rune(readUint(buf, t.Size)), nil
	case KindPointer, KindString, KindWString, KindSizeT:
		return readUint(buf, t.Size), nil
	case KindSSizeT, KindLong:
		return signExtend(readUint(buf, t.Size), t.Size), nil
	case KindULong:
		return readUint(buf, t.Size), nil
	default:
		return nil, errors.Unsupported(errors.PhaseRead, "cannot read value of type "+t.String())
	}
}

// WritePrimitive encodes a scalar into buf, which must be exactly t.Size
// bytes. Any Go numeric type is accepted; values that do not fit the declared
// width fail with an overflow error rather than truncating.
func WritePrimitive(t *Type, buf []byte, value any) error {
	switch t.Kind {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindSSizeT, KindLong:
		v, ok := abi.CoerceToInt64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
		}
		if !abi.FitsSigned(v, t.Size) {
			return errors.New(errors.PhaseWrite, errors.KindOverflow).
				CType(t.Kind.String()).
				Detail("value %d does not fit in %d bytes", v, t.Size).
				Value(value).
				Build()
		}
		writeUint(buf, t.Size, uint64(v))
		return nil

	case KindUInt8, KindUInt16, KindUInt32, KindUInt64, KindSizeT, KindULong, KindPointer, KindString, KindWString:
		v, ok := abi.CoerceToUint64(value)
		if !ok {
			// nil writes a null address for the pointer-shaped kinds
			if value == nil && (t.Kind == KindPointer || t.Kind == KindString || t.Kind == KindWString) {
				writeUint(buf, t.Size, 0)
				return nil
			}
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
		}
		if !abi.FitsUnsigned(v, t.Size) {
			return errors.New(errors.PhaseWrite, errors.KindOverflow).
				CType(t.Kind.String()).
				Detail("value %d does not fit in %d bytes", v, t.Size).
				Value(value).
				Build()
		}
		writeUint(buf, t.Size, v)
		return nil

	case KindFloat:
		v, ok := abi.CoerceToFloat64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
		}
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
		return nil

	case KindDouble:
		v, ok := abi.CoerceToFloat64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
		}
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		return nil

	case KindBool:
		v, ok := abi.CoerceToBool(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
		}
		if v {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
		return nil

	case KindWChar:
		var code uint64
		switch v := value.(type) {
		case string:
			for _, r := range v {
				code = uint64(r)
				break
			}
		case rune:
			code = uint64(uint32(v))
		default:
			u, ok := abi.CoerceToUint64(value)
			if !ok {
				return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), t.Kind.String())
			}
			code = u
		}
		if !abi.FitsUnsigned(code, t.Size) {
			return errors.New(errors.PhaseWrite, errors.KindOverflow).
				CType(t.Kind.String()).
				Detail("code point %d does not fit in %d bytes", code, t.Size).
				Build()
		}
		writeUint(buf, t.Size, code)
		return nil

	default:
		return errors.Unsupported(errors.PhaseWrite, "cannot write value of type "+t.String())
	}
}

// ReadBits extracts a bitfield from its storage unit. buf must be exactly the
// storage unit's size. Signed storage kinds sign-extend from the field's top
// bit.
func ReadBits(storage *Type, buf []byte, bitOffset, width uint8) any {
	unit := readUint(buf, storage.Size)
	var mask uint64
	if width >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	v := (unit >> bitOffset) & mask

	if storage.Kind.IsSigned() {
		shift := 64 - width
		return int64(v<<shift) >> shift
	}
	return v
}

// WriteBits stores a bitfield into its storage unit, truncating the value to
// the low width bits. Truncation is contractual C behavior, not an error.
func WriteBits(storage *Type, buf []byte, bitOffset, width uint8, value any) error {
	var raw uint64
	if v, ok := abi.CoerceToInt64(value); ok {
		raw = uint64(v)
	} else if v, ok := abi.CoerceToUint64(value); ok {
		raw = v
	} else {
		return errors.TypeMismatch(errors.PhaseWrite, nil, abi.TypeName(value), storage.Kind.String())
	}

	var mask uint64
	if width >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}

	unit := readUint(buf, storage.Size)
	unit &^= mask << bitOffset
	unit |= (raw & mask) << bitOffset
	writeUint(buf, storage.Size, unit)
	return nil
}

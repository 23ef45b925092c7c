package ctypes

import (
	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/ctypes/internal/types"
	"github.com/ffikit/cmem/errors"
)

type Kind = types.Kind

const (
	KindVoid    = types.KindVoid
	KindInt8    = types.KindInt8
	KindUInt8   = types.KindUInt8
	KindInt16   = types.KindInt16
	KindUInt16  = types.KindUInt16
	KindInt32   = types.KindInt32
	KindUInt32  = types.KindUInt32
	KindInt64   = types.KindInt64
	KindUInt64  = types.KindUInt64
	KindFloat   = types.KindFloat
	KindDouble  = types.KindDouble
	KindBool    = types.KindBool
	KindWChar   = types.KindWChar
	KindPointer = types.KindPointer
	KindString  = types.KindString
	KindWString = types.KindWString
	KindSizeT   = types.KindSizeT
	KindSSizeT  = types.KindSSizeT
	KindLong    = types.KindLong
	KindULong   = types.KindULong
	KindStruct  = types.KindStruct
	KindUnion   = types.KindUnion
	KindArray   = types.KindArray
)

type Type = types.Type
type Field = types.Field

// Target selects the platform data model used for pointer, wchar_t, and long
// sizes.
type Target = abi.Target

func LP64() Target         { return abi.LP64() }
func LLP64() Target        { return abi.LLP64() }
func ILP32() Target        { return abi.ILP32() }
func ILP32Windows() Target { return abi.ILP32Windows() }
func NativeTarget() Target { return abi.Native() }

var nativeTarget = abi.Native()

// Predefined primitive descriptors for the native target, one shared
// instance per kind.
var (
	Void    = types.NewPrimitive(types.KindVoid, nativeTarget)
	Int8    = types.NewPrimitive(types.KindInt8, nativeTarget)
	UInt8   = types.NewPrimitive(types.KindUInt8, nativeTarget)
	Int16   = types.NewPrimitive(types.KindInt16, nativeTarget)
	UInt16  = types.NewPrimitive(types.KindUInt16, nativeTarget)
	Int32   = types.NewPrimitive(types.KindInt32, nativeTarget)
	UInt32  = types.NewPrimitive(types.KindUInt32, nativeTarget)
	Int64   = types.NewPrimitive(types.KindInt64, nativeTarget)
	UInt64  = types.NewPrimitive(types.KindUInt64, nativeTarget)
	Float   = types.NewPrimitive(types.KindFloat, nativeTarget)
	Double  = types.NewPrimitive(types.KindDouble, nativeTarget)
	Bool    = types.NewPrimitive(types.KindBool, nativeTarget)
	WChar   = types.NewPrimitive(types.KindWChar, nativeTarget)
	Pointer = types.NewPrimitive(types.KindPointer, nativeTarget)
	String  = types.NewPrimitive(types.KindString, nativeTarget)
	WString = types.NewPrimitive(types.KindWString, nativeTarget)
	SizeT   = types.NewPrimitive(types.KindSizeT, nativeTarget)
	SSizeT  = types.NewPrimitive(types.KindSSizeT, nativeTarget)
	Long    = types.NewPrimitive(types.KindLong, nativeTarget)
	ULong   = types.NewPrimitive(types.KindULong, nativeTarget)
)

// Primitive returns the native-target descriptor for a scalar kind.
func Primitive(k Kind) *Type {
	return types.NewPrimitive(k, nativeTarget)
}

// PrimitiveFor returns a scalar descriptor for an explicit target.
func PrimitiveFor(k Kind, target Target) *Type {
	return types.NewPrimitive(k, target)
}

// Array builds a fixed-length array descriptor over any element type.
func Array(elem *Type, length int) (*Type, error) {
	if length <= 0 {
		return nil, errors.InvalidDefinition("array length must be positive, got %d", length)
	}
	return types.NewArray(elem, uint32(length))
}

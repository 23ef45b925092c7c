package ctypes

import (
	"github.com/ffikit/cmem/ctypes/internal/types"
	"github.com/ffikit/cmem/errors"
)

// kindNames maps C type spellings and common ctypes-style aliases to kinds.
var kindNames = map[string]Kind{
	"void": types.KindVoid,

	"int8":   types.KindInt8,
	"int8_t": types.KindInt8,
	"char":   types.KindInt8,
	"c_char": types.KindInt8,
	"c_int8": types.KindInt8,

	"uint8":         types.KindUInt8,
	"uint8_t":       types.KindUInt8,
	"uchar":         types.KindUInt8,
	"unsigned char": types.KindUInt8,
	"c_uchar":       types.KindUInt8,
	"c_uint8":       types.KindUInt8,

	"int16":   types.KindInt16,
	"int16_t": types.KindInt16,
	"short":   types.KindInt16,
	"c_short": types.KindInt16,
	"c_int16": types.KindInt16,

	"uint16":         types.KindUInt16,
	"uint16_t":       types.KindUInt16,
	"ushort":         types.KindUInt16,
	"unsigned short": types.KindUInt16,
	"c_ushort":       types.KindUInt16,
	"c_uint16":       types.KindUInt16,

	"int32":   types.KindInt32,
	"int32_t": types.KindInt32,
	"int":     types.KindInt32,
	"c_int":   types.KindInt32,
	"c_int32": types.KindInt32,

	"uint32":       types.KindUInt32,
	"uint32_t":     types.KindUInt32,
	"uint":         types.KindUInt32,
	"unsigned int": types.KindUInt32,
	"c_uint":       types.KindUInt32,
	"c_uint32":     types.KindUInt32,

	"int64":     types.KindInt64,
	"int64_t":   types.KindInt64,
	"long long": types.KindInt64,
	"c_int64":   types.KindInt64,

	"uint64":             types.KindUInt64,
	"uint64_t":           types.KindUInt64,
	"unsigned long long": types.KindUInt64,
	"c_uint64":           types.KindUInt64,

	"float":   types.KindFloat,
	"c_float": types.KindFloat,

	"double":   types.KindDouble,
	"c_double": types.KindDouble,

	"bool":   types.KindBool,
	"_Bool":  types.KindBool,
	"c_bool": types.KindBool,

	"pointer":  types.KindPointer,
	"void*":    types.KindPointer,
	"ptr":      types.KindPointer,
	"c_void_p": types.KindPointer,

	"string":   types.KindString,
	"char*":    types.KindString,
	"cstring":  types.KindString,
	"c_char_p": types.KindString,

	"wstring":   types.KindWString,
	"wchar_t*":  types.KindWString,
	"c_wchar_p": types.KindWString,

	"wchar":   types.KindWChar,
	"wchar_t": types.KindWChar,
	"c_wchar": types.KindWChar,

	"size_t":   types.KindSizeT,
	"c_size_t": types.KindSizeT,

	"ssize_t":   types.KindSSizeT,
	"c_ssize_t": types.KindSSizeT,

	"long":   types.KindLong,
	"c_long": types.KindLong,

	"ulong":         types.KindULong,
	"unsigned long": types.KindULong,
	"c_ulong":       types.KindULong,
}

// ParseKind resolves a C type name or alias to its kind.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[name]; ok {
		return k, nil
	}
	return types.KindVoid, errors.New(errors.PhaseParse, errors.KindInvalidDefinition).
		Detail("unknown type %q", name).
		Value(name).
		Build()
}

// ParseType resolves a C type name to a native-target primitive descriptor.
func ParseType(name string) (*Type, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return Primitive(k), nil
}

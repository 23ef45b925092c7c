package types

type Kind uint8

const (
	KindVoid Kind = iota
	KindInt8
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat
	KindDouble
	KindBool
	KindWChar
	KindPointer
	KindString
	KindWString
	KindSizeT
	KindSSizeT
	KindLong
	KindULong
	KindStruct
	KindUnion
	KindArray
)

var kindNames = [...]string{
	KindVoid:    "void",
	KindInt8:    "int8",
	KindUInt8:   "uint8",
	KindInt16:   "int16",
	KindUInt16:  "uint16",
	KindInt32:   "int32",
	KindUInt32:  "uint32",
	KindInt64:   "int64",
	KindUInt64:  "uint64",
	KindFloat:   "float",
	KindDouble:  "double",
	KindBool:    "bool",
	KindWChar:   "wchar",
	KindPointer: "pointer",
	KindString:  "string",
	KindWString: "wstring",
	KindSizeT:   "size_t",
	KindSSizeT:  "ssize_t",
	KindLong:    "long",
	KindULong:   "ulong",
	KindStruct:  "struct",
	KindUnion:   "union",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k < KindStruct
}

func (k Kind) IsComposite() bool {
	return k == KindStruct || k == KindUnion || k == KindArray
}

// IsInteger reports whether the kind stores an integer value, including the
// pointer-sized and platform-sized integer kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindUInt8, KindInt16, KindUInt16, KindInt32, KindUInt32,
		KindInt64, KindUInt64, KindSizeT, KindSSizeT, KindLong, KindULong, KindWChar:
		return true
	default:
		return false
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindSSizeT, KindLong:
		return true
	default:
		return false
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

// IsPointerSized reports whether the kind's size follows the target pointer
// size rather than a fixed width.
func (k Kind) IsPointerSized() bool {
	switch k {
	case KindPointer, KindString, KindWString, KindSizeT, KindSSizeT:
		return true
	default:
		return false
	}
}

// IsBitfieldStorage reports whether the kind may back a bitfield storage
// unit. Only the fixed-width integer kinds qualify.
func (k Kind) IsBitfieldStorage() bool {
	switch k {
	case KindInt8, KindUInt8, KindInt16, KindUInt16, KindInt32, KindUInt32, KindInt64, KindUInt64:
		return true
	default:
		return false
	}
}

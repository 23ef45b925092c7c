package types

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{KindVoid, "void"},
		{KindInt8, "int8"},
		{KindUInt64, "uint64"},
		{KindFloat, "float"},
		{KindDouble, "double"},
		{KindWChar, "wchar"},
		{KindPointer, "pointer"},
		{KindSizeT, "size_t"},
		{KindStruct, "struct"},
		{KindUnion, "union"},
		{KindArray, "array"},
		{Kind(200), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.name {
			t.Errorf("Kind(%d).String(): got %q, want %q", tc.kind, got, tc.name)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindInt32.IsPrimitive() || KindStruct.IsPrimitive() {
		t.Error("IsPrimitive")
	}
	if !KindArray.IsComposite() || KindBool.IsComposite() {
		t.Error("IsComposite")
	}
	if !KindSSizeT.IsSigned() || KindUInt32.IsSigned() || KindFloat.IsSigned() {
		t.Error("IsSigned")
	}
	if !KindLong.IsInteger() || KindDouble.IsInteger() || KindPointer.IsInteger() {
		t.Error("IsInteger")
	}
	if !KindFloat.IsFloat() || KindInt32.IsFloat() {
		t.Error("IsFloat")
	}
	if !KindString.IsPointerSized() || KindLong.IsPointerSized() {
		t.Error("IsPointerSized")
	}
	if !KindUInt32.IsBitfieldStorage() || KindBool.IsBitfieldStorage() || KindLong.IsBitfieldStorage() {
		t.Error("IsBitfieldStorage")
	}
}

package ctypes

import (
	stderrors "errors"
	"testing"

	cmemerrors "github.com/ffikit/cmem/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"int8_t", KindInt8},
		{"char", KindInt8},
		{"unsigned char", KindUInt8},
		{"short", KindInt16},
		{"c_ushort", KindUInt16},
		{"int", KindInt32},
		{"uint32_t", KindUInt32},
		{"long long", KindInt64},
		{"unsigned long long", KindUInt64},
		{"float", KindFloat},
		{"c_double", KindDouble},
		{"_Bool", KindBool},
		{"void*", KindPointer},
		{"c_char_p", KindString},
		{"wchar_t*", KindWString},
		{"wchar_t", KindWChar},
		{"size_t", KindSizeT},
		{"ssize_t", KindSSizeT},
		{"long", KindLong},
		{"unsigned long", KindULong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.name)
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("quaternion")
	var e *cmemerrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if e.Phase != cmemerrors.PhaseParse || e.Kind != cmemerrors.KindInvalidDefinition {
		t.Errorf("error = %v, want parse/invalid_definition", e)
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("uint32_t")
	if err != nil {
		t.Fatalf("ParseType() error: %v", err)
	}
	if typ.Kind != KindUInt32 || typ.Size != 4 {
		t.Errorf("ParseType() = %v size %d", typ.Kind, typ.Size)
	}
}

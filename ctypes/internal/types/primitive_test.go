package types

import (
	"math"
	"testing"

	"github.com/ffikit/cmem/ctypes/internal/abi"
)

func roundTrip(t *testing.T, kind Kind, target abi.Target, value any) any {
	t.Helper()
	typ := NewPrimitive(kind, target)
	buf := make([]byte, typ.Size)
	if err := WritePrimitive(typ, buf, value); err != nil {
		t.Fatalf("write %s %v: %v", kind, value, err)
	}
	got, err := ReadPrimitive(typ, buf)
	if err != nil {
		t.Fatalf("read %s: %v", kind, err)
	}
	return got
}

func TestPrimitiveRoundTrip_Boundaries(t *testing.T) {
	lp64 := abi.LP64()

	tests := []struct {
		name  string
		kind  Kind
		value any
		want  any
	}{
		{"int8 min", KindInt8, int64(math.MinInt8), int8(math.MinInt8)},
		{"int8 max", KindInt8, int64(math.MaxInt8), int8(math.MaxInt8)},
		{"uint8 max", KindUInt8, uint64(math.MaxUint8), uint8(math.MaxUint8)},
		{"int16 min", KindInt16, int64(math.MinInt16), int16(math.MinInt16)},
		{"int16 max", KindInt16, int64(math.MaxInt16), int16(math.MaxInt16)},
		{"uint16 max", KindUInt16, uint64(math.MaxUint16), uint16(math.MaxUint16)},
		{"int32 min", KindInt32, int64(math.MinInt32), int32(math.MinInt32)},
		{"int32 max", KindInt32, int64(math.MaxInt32), int32(math.MaxInt32)},
		{"uint32 max", KindUInt32, uint64(math.MaxUint32), uint32(math.MaxUint32)},
		{"int64 min", KindInt64, int64(math.MinInt64), int64(math.MinInt64)},
		{"int64 max", KindInt64, int64(math.MaxInt64), int64(math.MaxInt64)},
		{"uint64 max", KindUInt64, uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"float", KindFloat, float32(3.5), float32(3.5)},
		{"double", KindDouble, 3.141592653589793, 3.141592653589793},
		{"bool true", KindBool, true, true},
		{"bool false", KindBool, false, false},
		{"pointer", KindPointer, uint64(0xdeadbeefcafe), uint64(0xdeadbeefcafe)},
		{"size_t", KindSizeT, uint64(1 << 40), uint64(1 << 40)},
		{"ssize_t negative", KindSSizeT, int64(-1), int64(-1)},
		{"long negative", KindLong, int64(-123456789), int64(-123456789)},
		{"ulong", KindULong, uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"wchar", KindWChar, rune('世'), rune('世')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := roundTrip(t, tc.kind, lp64, tc.value)
			if got != tc.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestPrimitiveRoundTrip_NarrowTargets(t *testing.T) {
	llp64 := abi.LLP64()
	ilp32 := abi.ILP32()

	// 4-byte long on LLP64
	if got := roundTrip(t, KindLong, llp64, int64(-40000)); got != int64(-40000) {
		t.Errorf("llp64 long: got %v", got)
	}
	// 2-byte wchar on LLP64
	if got := roundTrip(t, KindWChar, llp64, rune(0xFFFF)); got != rune(0xFFFF) {
		t.Errorf("llp64 wchar: got %v", got)
	}
	// 4-byte pointer on ILP32
	if got := roundTrip(t, KindPointer, ilp32, uint64(0xCAFEBABE)); got != uint64(0xCAFEBABE) {
		t.Errorf("ilp32 pointer: got %v", got)
	}
	// negative ssize_t on ILP32 sign-extends from 4 bytes
	if got := roundTrip(t, KindSSizeT, ilp32, int64(-2)); got != int64(-2) {
		t.Errorf("ilp32 ssize_t: got %v", got)
	}
}

func TestWritePrimitive_Overflow(t *testing.T) {
	lp64 := abi.LP64()

	tests := []struct {
		name  string
		kind  Kind
		value any
	}{
		{"int8 too big", KindInt8, int64(128)},
		{"int8 too small", KindInt8, int64(-129)},
		{"uint8 too big", KindUInt8, uint64(256)},
		{"uint16 too big", KindUInt16, int(1 << 16)},
		{"uint32 negative", KindUInt32, int(-1)},
		{"ilp32 pointer too big", KindPointer, uint64(1) << 33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := lp64
			if tc.name == "ilp32 pointer too big" {
				target = abi.ILP32()
			}
			typ := NewPrimitive(tc.kind, target)
			buf := make([]byte, typ.Size)
			if err := WritePrimitive(typ, buf, tc.value); err == nil {
				t.Errorf("expected overflow error writing %v into %s", tc.value, tc.kind)
			}
		})
	}
}

func TestWritePrimitive_TypeMismatch(t *testing.T) {
	lp64 := abi.LP64()
	typ := NewPrimitive(KindInt32, lp64)
	buf := make([]byte, typ.Size)

	if err := WritePrimitive(typ, buf, "not a number"); err == nil {
		t.Error("expected type mismatch for string")
	}
	if err := WritePrimitive(typ, buf, 1.5); err == nil {
		t.Error("expected error for fractional float into integer")
	}
}

func TestWritePrimitive_NilPointer(t *testing.T) {
	lp64 := abi.LP64()
	typ := NewPrimitive(KindPointer, lp64)
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	if err := WritePrimitive(typ, buf, nil); err != nil {
		t.Fatalf("nil pointer write: %v", err)
	}
	got, _ := ReadPrimitive(typ, buf)
	if got != uint64(0) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestWritePrimitive_WCharFromString(t *testing.T) {
	lp64 := abi.LP64()
	typ := NewPrimitive(KindWChar, lp64)
	buf := make([]byte, typ.Size)

	if err := WritePrimitive(typ, buf, "Ωmega"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, _ := ReadPrimitive(typ, buf)
	if got != rune('Ω') {
		t.Errorf("got %v, want %v", got, rune('Ω'))
	}
}

func TestFloatBitPatterns(t *testing.T) {
	lp64 := abi.LP64()

	// A float32 write then a uint32 read of the same bytes yields the IEEE-754
	// bit pattern, the aliasing a C union would produce.
	f32 := NewPrimitive(KindFloat, lp64)
	buf := make([]byte, 4)
	if err := WritePrimitive(f32, buf, float32(3.14)); err != nil {
		t.Fatalf("write: %v", err)
	}
	u32 := NewPrimitive(KindUInt32, lp64)
	got, _ := ReadPrimitive(u32, buf)
	want := math.Float32bits(3.14)
	if got != want {
		t.Errorf("bit pattern: got %#x, want %#x", got, want)
	}
	if want != 0x4048F5C3 {
		t.Errorf("reference encoding of 3.14: got %#x, want 0x4048F5C3", want)
	}
}

func TestBits_ReadWrite(t *testing.T) {
	lp64 := abi.LP64()
	u32 := NewPrimitive(KindUInt32, lp64)
	buf := make([]byte, 4)

	// 3-bit field written with 15 truncates to 7.
	if err := WriteBits(u32, buf, 0, 3, 15); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ReadBits(u32, buf, 0, 3); got != uint64(7) {
		t.Errorf("truncation: got %v, want 7", got)
	}

	// A second field in the same unit does not disturb the first.
	if err := WriteBits(u32, buf, 3, 5, 21); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ReadBits(u32, buf, 0, 3); got != uint64(7) {
		t.Errorf("first field disturbed: got %v", got)
	}
	if got := ReadBits(u32, buf, 3, 5); got != uint64(21) {
		t.Errorf("second field: got %v, want 21", got)
	}
}

func TestBits_SignExtension(t *testing.T) {
	lp64 := abi.LP64()
	i32 := NewPrimitive(KindInt32, lp64)
	buf := make([]byte, 4)

	// 4-bit signed field: 0b1111 reads as -1.
	if err := WriteBits(i32, buf, 0, 4, 15); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ReadBits(i32, buf, 0, 4); got != int64(-1) {
		t.Errorf("sign extension: got %v, want -1", got)
	}

	// 0b0111 stays positive.
	if err := WriteBits(i32, buf, 0, 4, 7); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ReadBits(i32, buf, 0, 4); got != int64(7) {
		t.Errorf("positive: got %v, want 7", got)
	}
}

func TestBits_NegativeWrite(t *testing.T) {
	lp64 := abi.LP64()
	u32 := NewPrimitive(KindUInt32, lp64)
	buf := make([]byte, 4)

	// -1 into a 3-bit unsigned field truncates to 0b111.
	if err := WriteBits(u32, buf, 0, 3, -1); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := ReadBits(u32, buf, 0, 3); got != uint64(7) {
		t.Errorf("got %v, want 7", got)
	}
}

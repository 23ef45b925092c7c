package layout

import (
	"testing"

	"github.com/ffikit/cmem/ctypes/internal/abi"
	"github.com/ffikit/cmem/ctypes/internal/types"
)

func prim(k types.Kind) *types.Type {
	return types.NewPrimitive(k, abi.LP64())
}

func TestStruct_MixedAlignment(t *testing.T) {
	// {u8, u32, u8}: a@0, pad, b@4, c@8, pad -> size 12, align 4
	res, err := Struct([]FieldSpec{
		{Name: "a", Type: prim(types.KindUInt8)},
		{Name: "b", Type: prim(types.KindUInt32)},
		{Name: "c", Type: prim(types.KindUInt8)},
	}, false)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	wantOffsets := []uint32{0, 4, 8}
	for i, want := range wantOffsets {
		if res.Fields[i].Offset != want {
			t.Errorf("field %d offset: got %d, want %d", i, res.Fields[i].Offset, want)
		}
	}
	if res.Size != 12 {
		t.Errorf("size: got %d, want 12", res.Size)
	}
	if res.Align != 4 {
		t.Errorf("align: got %d, want 4", res.Align)
	}
}

func TestStruct_Packed(t *testing.T) {
	// Packed {u8, u32, u8}: a@0, b@1, c@5 -> size 6, align 1
	res, err := Struct([]FieldSpec{
		{Name: "a", Type: prim(types.KindUInt8)},
		{Name: "b", Type: prim(types.KindUInt32)},
		{Name: "c", Type: prim(types.KindUInt8)},
	}, true)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	wantOffsets := []uint32{0, 1, 5}
	for i, want := range wantOffsets {
		if res.Fields[i].Offset != want {
			t.Errorf("field %d offset: got %d, want %d", i, res.Fields[i].Offset, want)
		}
	}
	if res.Size != 6 {
		t.Errorf("size: got %d, want 6", res.Size)
	}
	if res.Align != 1 {
		t.Errorf("align: got %d, want 1", res.Align)
	}
}

func TestStruct_SizeIsMultipleOfAlign(t *testing.T) {
	cases := [][]FieldSpec{
		{{Name: "a", Type: prim(types.KindUInt8)}},
		{{Name: "a", Type: prim(types.KindUInt8)}, {Name: "b", Type: prim(types.KindDouble)}},
		{{Name: "a", Type: prim(types.KindUInt16)}, {Name: "b", Type: prim(types.KindUInt8)}},
		{
			{Name: "a", Type: prim(types.KindInt64)},
			{Name: "b", Type: prim(types.KindUInt8)},
			{Name: "c", Type: prim(types.KindUInt16)},
		},
	}

	for i, specs := range cases {
		res, err := Struct(specs, false)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if res.Size%res.Align != 0 {
			t.Errorf("case %d: size %d not a multiple of align %d", i, res.Size, res.Align)
		}
		var maxAlign uint32 = 1
		for _, s := range specs {
			if s.Type.Align > maxAlign {
				maxAlign = s.Type.Align
			}
		}
		if res.Align != maxAlign {
			t.Errorf("case %d: align %d, want max field align %d", i, res.Align, maxAlign)
		}
	}
}

func TestStruct_PackedSizeIsSumOfSizes(t *testing.T) {
	specs := []FieldSpec{
		{Name: "a", Type: prim(types.KindUInt8)},
		{Name: "b", Type: prim(types.KindDouble)},
		{Name: "c", Type: prim(types.KindUInt16)},
		{Name: "d", Type: prim(types.KindPointer)},
	}

	res, err := Struct(specs, true)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	var sum uint32
	for i, s := range specs {
		if res.Fields[i].Offset != sum {
			t.Errorf("field %d offset: got %d, want %d", i, res.Fields[i].Offset, sum)
		}
		sum += s.Type.Size
	}
	if res.Size != sum {
		t.Errorf("size: got %d, want %d", res.Size, sum)
	}
}

func TestStruct_Empty(t *testing.T) {
	res, err := Struct(nil, false)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if res.Size != 0 || res.Align != 1 {
		t.Errorf("got size=%d align=%d, want 0/1", res.Size, res.Align)
	}
}

func TestStruct_Bitfields_SharedUnit(t *testing.T) {
	u32 := prim(types.KindUInt32)

	// Three bitfields in one u32 unit, then a plain field.
	res, err := Struct([]FieldSpec{
		{Name: "a", Type: u32, BitWidth: 3},
		{Name: "b", Type: u32, BitWidth: 5},
		{Name: "c", Type: u32, BitWidth: 8},
		{Name: "d", Type: prim(types.KindUInt8)},
	}, false)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	wantBits := []struct {
		offset    uint32
		bitOffset uint8
	}{
		{0, 0},
		{0, 3},
		{0, 8},
	}
	for i, want := range wantBits {
		f := res.Fields[i]
		if f.Offset != want.offset || f.BitOffset != want.bitOffset {
			t.Errorf("field %d: got offset=%d bitOffset=%d, want %d/%d",
				i, f.Offset, f.BitOffset, want.offset, want.bitOffset)
		}
	}
	// Plain field lands after the storage unit.
	if res.Fields[3].Offset != 4 {
		t.Errorf("plain field offset: got %d, want 4", res.Fields[3].Offset)
	}
	if res.Size != 8 {
		t.Errorf("size: got %d, want 8", res.Size)
	}
}

func TestStruct_Bitfields_OverflowStartsNewUnit(t *testing.T) {
	u8 := prim(types.KindUInt8)

	// 5 + 5 bits exceed an 8-bit unit; the second field opens a new one.
	res, err := Struct([]FieldSpec{
		{Name: "a", Type: u8, BitWidth: 5},
		{Name: "b", Type: u8, BitWidth: 5},
	}, false)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	if res.Fields[0].Offset != 0 || res.Fields[0].BitOffset != 0 {
		t.Errorf("field a: offset=%d bitOffset=%d", res.Fields[0].Offset, res.Fields[0].BitOffset)
	}
	if res.Fields[1].Offset != 1 || res.Fields[1].BitOffset != 0 {
		t.Errorf("field b: offset=%d bitOffset=%d, want 1/0", res.Fields[1].Offset, res.Fields[1].BitOffset)
	}
	if res.Size != 2 {
		t.Errorf("size: got %d, want 2", res.Size)
	}
}

func TestStruct_Bitfields_KindChangeStartsNewUnit(t *testing.T) {
	res, err := Struct([]FieldSpec{
		{Name: "a", Type: prim(types.KindUInt8), BitWidth: 3},
		{Name: "b", Type: prim(types.KindUInt32), BitWidth: 3},
	}, false)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}

	if res.Fields[1].Offset != 4 || res.Fields[1].BitOffset != 0 {
		t.Errorf("field b: offset=%d bitOffset=%d, want 4/0", res.Fields[1].Offset, res.Fields[1].BitOffset)
	}
	if res.Size != 8 {
		t.Errorf("size: got %d, want 8", res.Size)
	}
}

func TestStruct_BitfieldValidation(t *testing.T) {
	if _, err := Struct([]FieldSpec{
		{Name: "a", Type: prim(types.KindFloat), BitWidth: 3},
	}, false); err == nil {
		t.Error("expected error for float bitfield storage")
	}
	if _, err := Struct([]FieldSpec{
		{Name: "a", Type: prim(types.KindUInt8), BitWidth: 9},
	}, false); err == nil {
		t.Error("expected error for width exceeding storage unit")
	}
}

func TestStruct_EmptyFieldName(t *testing.T) {
	if _, err := Struct([]FieldSpec{
		{Name: "", Type: prim(types.KindInt32)},
	}, false); err == nil {
		t.Error("expected error for empty field name")
	}
}

func TestUnion_Layout(t *testing.T) {
	res, err := Union([]FieldSpec{
		{Name: "b", Type: prim(types.KindUInt8)},
		{Name: "i", Type: prim(types.KindInt32)},
		{Name: "d", Type: prim(types.KindDouble)},
	})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}

	for i, f := range res.Fields {
		if f.Offset != 0 {
			t.Errorf("field %d offset: got %d, want 0", i, f.Offset)
		}
	}
	if res.Size != 8 {
		t.Errorf("size: got %d, want 8", res.Size)
	}
	if res.Align != 8 {
		t.Errorf("align: got %d, want 8", res.Align)
	}
}

func TestUnion_SizeRoundedToAlignment(t *testing.T) {
	// Largest member is 5 bytes (u8[5]) but an int32 member forces align 4.
	arr, err := types.NewArray(prim(types.KindUInt8), 5)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	res, err := Union([]FieldSpec{
		{Name: "bytes", Type: arr},
		{Name: "i", Type: prim(types.KindInt32)},
	})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if res.Size != 8 {
		t.Errorf("size: got %d, want 8", res.Size)
	}
}

func TestStruct_NestedComposite(t *testing.T) {
	inner, err := Struct([]FieldSpec{
		{Name: "x", Type: prim(types.KindInt32)},
		{Name: "y", Type: prim(types.KindInt32)},
	}, false)
	if err != nil {
		t.Fatalf("inner: %v", err)
	}
	point, err := types.NewComposite(types.KindStruct, "point", inner.Fields, inner.Size, inner.Align, false)
	if err != nil {
		t.Fatalf("NewComposite: %v", err)
	}

	outer, err := Struct([]FieldSpec{
		{Name: "tag", Type: prim(types.KindUInt8)},
		{Name: "topLeft", Type: point},
		{Name: "bottomRight", Type: point},
	}, false)
	if err != nil {
		t.Fatalf("outer: %v", err)
	}

	if outer.Fields[1].Offset != 4 {
		t.Errorf("topLeft offset: got %d, want 4", outer.Fields[1].Offset)
	}
	if outer.Fields[2].Offset != 12 {
		t.Errorf("bottomRight offset: got %d, want 12", outer.Fields[2].Offset)
	}
	if outer.Size != 20 {
		t.Errorf("size: got %d, want 20", outer.Size)
	}
}

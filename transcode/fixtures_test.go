package transcode

import "github.com/tengyifei/llcpptransformer/schema"

// The fixtures below build small, self-contained coding-table graphs by
// hand, the same way the conformance package's Sandwich fixtures do but
// scoped to exercise one transform rule at a time.

// flatStructPair returns a struct descriptor pair with no fields needing
// recursion: a uint32, 4 bytes of padding, and a uint64, identically laid
// out in both layouts.
func flatStructPair() (old, v1 *schema.Type) {
	fields := func() []schema.Field {
		return []schema.Field{
			{Size: 4},
			{Size: 4},
			{Size: 8},
		}
	}
	old = &schema.Type{Kind: schema.KindStruct, Name: "FlatOld", Layout: schema.Old, Size: 16, Fields: fields()}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "FlatV1", Layout: schema.V1, Size: 16, Fields: fields()}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// uint32VectorPair returns a Vector<uint32>-shaped descriptor pair: no
// element descriptor, a 4-byte stride with no padding.
func uint32VectorPair() (old, v1 *schema.Type) {
	old = &schema.Type{Kind: schema.KindVector, Name: "VecOld", ElementSize: 4}
	v1 = &schema.Type{Kind: schema.KindVector, Name: "VecV1", ElementSize: 4}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// vectorStructPair wraps uint32VectorPair in a one-field struct so Transform
// (which requires a struct top_type) can drive it directly.
func vectorStructPair() (old, v1 *schema.Type) {
	vecOld, vecV1 := uint32VectorPair()
	old = &schema.Type{Kind: schema.KindStruct, Name: "VecStructOld", Layout: schema.Old, Size: 16,
		Fields: []schema.Field{{Type: vecOld, Offset: 0}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "VecStructV1", Layout: schema.V1, Size: 16,
		Fields: []schema.Field{{Type: vecV1, Offset: 0}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// stringStructPair wraps a bare string (1-byte elements, no descriptor) in
// a one-field struct.
func stringStructPair() (old, v1 *schema.Type) {
	strOld := &schema.Type{Kind: schema.KindString, Name: "StrOld", MaxSize: 256, Nullable: true, ElementSize: 1}
	strV1 := &schema.Type{Kind: schema.KindString, Name: "StrV1", MaxSize: 256, Nullable: true, ElementSize: 1}
	strOld.Alt, strV1.Alt = strV1, strOld

	old = &schema.Type{Kind: schema.KindStruct, Name: "StrStructOld", Layout: schema.Old, Size: 16,
		Fields: []schema.Field{{Type: strOld, Offset: 0}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "StrStructV1", Layout: schema.V1, Size: 16,
		Fields: []schema.Field{{Type: strV1, Offset: 0}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// simpleUnionPair returns a two-variant static-union/xunion descriptor
// pair whose variants are both bare uint32 payloads (Sandwich1-shaped: a
// struct wrapping one union field). The static union's declared Size is 24
// (8-byte tag + 16-byte max payload, matching the widest variant padded
// out), DataOffset 8.
func simpleUnionPair() (old, v1 *schema.Type) {
	variants := []schema.UnionVariant{
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 12, XUnionOrdinal: 1},
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 12, XUnionOrdinal: 2},
	}
	old = &schema.Type{Kind: schema.KindUnion, Name: "SimpleUnionOld", Size: 24, DataOffset: 8, Variants: variants}
	v1 = &schema.Type{Kind: schema.KindXUnion, Name: "SimpleUnionV1"}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// unionStructPair wraps simpleUnionPair in a one-field struct: inline size
// 24 for the old layout (the static union itself), 24 for v1 (the xunion).
func unionStructPair() (old, v1 *schema.Type) {
	unionOld, unionV1 := simpleUnionPair()
	old = &schema.Type{Kind: schema.KindStruct, Name: "UnionStructOld", Layout: schema.Old, Size: 24,
		Fields: []schema.Field{{Type: unionOld, Offset: 0}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "UnionStructV1", Layout: schema.V1, Size: 24,
		Fields: []schema.Field{{Type: unionV1, Offset: 0}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// nestedUnionPair builds a union whose single variant's payload is itself
// a union (Sandwich5-shaped): the outer union carries one variant at
// ordinal 1 whose payload is the inner simpleUnionPair.
func nestedUnionPair() (old, v1 *schema.Type) {
	innerOld, innerV1 := simpleUnionPair()
	_ = innerV1

	variants := []schema.UnionVariant{
		{Type: innerOld, OldSize: 24, V1Size: 24, Padding: 0, XUnionOrdinal: 1},
	}
	old = &schema.Type{Kind: schema.KindUnion, Name: "NestedUnionOld", Size: 32, DataOffset: 8, Variants: variants}
	v1 = &schema.Type{Kind: schema.KindXUnion, Name: "NestedUnionV1"}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

func nestedUnionStructPair() (old, v1 *schema.Type) {
	unionOld, unionV1 := nestedUnionPair()
	old = &schema.Type{Kind: schema.KindStruct, Name: "NestedUnionStructOld", Layout: schema.Old, Size: 32,
		Fields: []schema.Field{{Type: unionOld, Offset: 0}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "NestedUnionStructV1", Layout: schema.V1, Size: 24,
		Fields: []schema.Field{{Type: unionV1, Offset: 0}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// fixedArrayStructPair wraps a 3-element array<uint32> in a struct,
// followed by a trailing 4-byte raw field; arrays carry no presence word,
// so the whole thing is inline.
func fixedArrayStructPair() (old, v1 *schema.Type) {
	arrOld := &schema.Type{Kind: schema.KindArray, Name: "ArrOld", Layout: schema.Old, Size: 12, Count: 3, ElementSize: 4}
	arrV1 := &schema.Type{Kind: schema.KindArray, Name: "ArrV1", Layout: schema.V1, Size: 12, Count: 3, ElementSize: 4}
	arrOld.Alt, arrV1.Alt = arrV1, arrOld

	old = &schema.Type{Kind: schema.KindStruct, Name: "ArrStructOld", Layout: schema.Old, Size: 16,
		Fields: []schema.Field{{Type: arrOld, Offset: 0}, {Offset: 12, Size: 4}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "ArrStructV1", Layout: schema.V1, Size: 16,
		Fields: []schema.Field{{Type: arrV1, Offset: 0}, {Offset: 12, Size: 4}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// optionalRecordStructPair builds a Sandwich7-shaped struct: one
// StructPointer field pointing at a small flat record.
func optionalRecordStructPair() (old, v1 *schema.Type) {
	pointeeOld := &schema.Type{Kind: schema.KindStruct, Name: "PointeeOld", Layout: schema.Old, Size: 8,
		Fields: []schema.Field{{Size: 8}}}
	pointeeV1 := &schema.Type{Kind: schema.KindStruct, Name: "PointeeV1", Layout: schema.V1, Size: 8,
		Fields: []schema.Field{{Size: 8}}}
	pointeeOld.Alt, pointeeV1.Alt = pointeeV1, pointeeOld

	ptrOld := &schema.Type{Kind: schema.KindStructPointer, Name: "PtrOld", Pointee: pointeeOld}
	ptrV1 := &schema.Type{Kind: schema.KindStructPointer, Name: "PtrV1", Pointee: pointeeV1}
	ptrOld.Alt, ptrV1.Alt = ptrV1, ptrOld

	old = &schema.Type{Kind: schema.KindStruct, Name: "OptRecStructOld", Layout: schema.Old, Size: 8,
		Fields: []schema.Field{{Type: ptrOld, Offset: 0}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: "OptRecStructV1", Layout: schema.V1, Size: 8,
		Fields: []schema.Field{{Type: ptrV1, Offset: 0}}}
	old.Fields[0].Alt, v1.Fields[0].Alt = &v1.Fields[0], &old.Fields[0]
	old.Alt, v1.Alt = v1, old
	return old, v1
}

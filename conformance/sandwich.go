// Package conformance is the named byte-level corpus this library's test
// suite and the fidltransform CLI both drive through transcode.Transform.
// Each scenario (Sandwich1 through Sandwich7) is a small wrapper record
// around one feature of the wire format - a union, a vector, an optional
// record - with both its old- and v1-layout encodings spelled out in full.
package conformance

import (
	"encoding/binary"

	"github.com/tengyifei/llcpptransformer/schema"
	"github.com/tengyifei/llcpptransformer/transcode"
)

// Scenario is one named, self-contained round-trip fixture: a struct
// descriptor pair plus the exact bytes each layout encodes to.
type Scenario struct {
	Name string

	// OldType and V1Type are the top-level struct descriptors, already
	// cross-linked via Alt.
	OldType *schema.Type
	V1Type  *schema.Type

	// OldBytes and V1Bytes are the same logical value encoded in each
	// layout. Transform(V1ToOld, V1Type, V1Bytes, ...) must reproduce
	// OldBytes, and Transform(OldToV1, OldType, OldBytes, ...) must
	// reproduce V1Bytes.
	OldBytes []byte
	V1Bytes  []byte
}

func u32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func u64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

// All is the full named corpus, in the order the original runner.cc ran
// them: a union of a 4-byte primitive, three more unions at the other tag widths and
// alignments a static union can take, a union of a union, a union of a
// vector (byte, handle, struct, or nested union, present or absent), and
// an optional record present and absent.
var All = []Scenario{
	sandwich1(),
	sandwich2(),
	sandwich3(),
	sandwich4(),
	sandwich5Case1(),
	sandwich5Case2(),
	sandwich6Case1(),
	sandwich6Case1AbsentVector(),
	sandwich6Case2(),
	sandwich6Case3(),
	sandwich6Case4(),
	sandwich6Case5(),
	sandwich6Case6(),
	sandwich6Case7(),
	sandwich6Case8(),
	sandwich7Present(),
	sandwich7Absent(),
}

// Run transcodes s.V1Bytes to the old layout and s.OldBytes to the v1
// layout and returns both results; comparing them against OldBytes and
// V1Bytes is left to the caller. It never calls t.Fatal itself so the
// CLI's conformance subcommand and the _test.go suite can both use it.
func (s Scenario) Run() (oldResult, v1Result []byte, err error) {
	oldResult = make([]byte, len(s.OldBytes))
	n, err := transcode.Transform(transcode.DirectionV1ToOld, s.V1Type, s.V1Bytes, oldResult)
	if err != nil {
		return nil, nil, err
	}
	oldResult = oldResult[:n]

	v1Result = make([]byte, len(s.V1Bytes))
	n, err = transcode.Transform(transcode.DirectionOldToV1, s.OldType, s.OldBytes, v1Result)
	if err != nil {
		return nil, nil, err
	}
	v1Result = v1Result[:n]

	return oldResult, v1Result, nil
}

// wrapSandwich builds the struct pair every Sandwich1-6 fixture shares: a
// 4-byte "before" field, the exercised union field, and a 4-byte "after"
// field following it. oldFieldOffset is 4 when the union needs only
// 4-byte alignment (no gap after "before" on the old side) or 8 when it
// needs 8-byte alignment (before gets padded to 8 first). oldTotalSize is
// the struct's own old-layout size, including whatever trailing pad the
// struct's own alignment requires after "after" - the v1 side is always
// 40 bytes inline regardless, since a v1 union field is always the fixed
// 24-byte xunion header.
func wrapSandwich(name string, oldField, v1Field *schema.Type, oldFieldOffset, oldTotalSize uint32) (oldType, v1Type *schema.Type) {
	afterOffset := oldFieldOffset + oldField.Size
	oldType = &schema.Type{Kind: schema.KindStruct, Name: name + "Old", Layout: schema.Old, Size: oldTotalSize,
		Fields: []schema.Field{
			{Offset: 0, Size: 4},
			{Type: oldField, Offset: oldFieldOffset},
			{Offset: afterOffset, Size: 4},
		}}
	v1Type = &schema.Type{Kind: schema.KindStruct, Name: name + "V1", Layout: schema.V1, Size: 40,
		Fields: []schema.Field{
			{Offset: 0, Size: 4},
			{Type: v1Field, Offset: 8},
			{Offset: 32, Size: 4},
		}}
	oldType.Fields[1].Alt, v1Type.Fields[1].Alt = &v1Type.Fields[1], &oldType.Fields[1]
	oldType.Alt, v1Type.Alt = v1Type, oldType
	return oldType, v1Type
}

// sandwich1 is "a struct wrapping a union whose single exercised variant
// is a bare 4-byte primitive": before, tag-or-ordinal, payload, after.
// The static union uses a 4-byte tag (DataOffset 4), the variant actually
// exercised sits at index/ordinal 2, and its declared Size (12: 4-byte
// tag + 4-byte payload + 4-byte pad) makes the whole wrapping struct 20
// bytes old-side, 48 bytes v1-side (36 bytes inline, rounded to 40, plus
// an 8-byte out-of-line envelope payload).
func sandwich1() Scenario {
	variants := []schema.UnionVariant{
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x11111111},
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x22222222},
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x7fc2f0db},
	}
	unionOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich1UnionOld", Size: 12, DataOffset: 4, Variants: variants}
	unionV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich1UnionV1"}
	unionOld.Alt, unionV1.Alt = unionV1, unionOld

	oldType, v1Type := wrapSandwich("Sandwich1", unionOld, unionV1, 4, 20)

	old := make([]byte, 20)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(old, 4, 2) // tag: variant index 2 (ordinal 0x7fc2f0db)
	copy(old[8:12], []byte{0x09, 0x0a, 0x0b, 0x0c})
	// old[12:16) is the union's own zero padding.
	copy(old[16:20], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x7fc2f0db)
	u32(v1, 16, 8) // num_bytes
	u32(v1, 20, 0) // num_handles
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	copy(v1[40:44], []byte{0x09, 0x0a, 0x0b, 0x0c})

	return Scenario{Name: "Sandwich1", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich2 is the same shape as sandwich1, but with a payload wide
// enough (6 meaningful bytes, padded to 8) to show that the static
// union's tag stays 4-byte-aligned (DataOffset 4) as long as nothing in
// the payload itself needs 8-byte alignment.
func sandwich2() Scenario {
	variants := []schema.UnionVariant{
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x11111111},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x22222222},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x33333333},
		{Type: nil, OldSize: 8, V1Size: 8, XUnionOrdinal: 0x20d1d3bf},
	}
	unionOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich2UnionOld", Size: 12, DataOffset: 4, Variants: variants}
	unionV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich2UnionV1"}
	unionOld.Alt, unionV1.Alt = unionV1, unionOld

	oldType, v1Type := wrapSandwich("Sandwich2", unionOld, unionV1, 4, 20)

	old := make([]byte, 20)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(old, 4, 3) // tag: variant index 3 (ordinal 0x20d1d3bf)
	copy(old[8:16], []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00})
	copy(old[16:20], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x20d1d3bf)
	u32(v1, 16, 8)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	copy(v1[40:48], []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00})

	return Scenario{Name: "Sandwich2", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich3 is the union tag width that needs 8-byte alignment for its
// payload: the tag itself is still 4 bytes, but the static union pads it
// out to 8 before the data starts (DataOffset 8), and "before" on the old
// side picks up the same 4-byte pad for the same reason.
func sandwich3() Scenario {
	variants := []schema.UnionVariant{
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x11111111},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x22222222},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x33333333},
		{Type: nil, OldSize: 16, V1Size: 16, XUnionOrdinal: 0x3404559b},
	}
	unionOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich3UnionOld", Size: 24, DataOffset: 8, Variants: variants}
	unionV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich3UnionV1"}
	unionOld.Alt, unionV1.Alt = unionV1, unionOld

	oldType, v1Type := wrapSandwich("Sandwich3", unionOld, unionV1, 8, 40)

	blob := []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf}

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(old, 8, 3) // tag: variant index 3 (ordinal 0x3404559b)
	copy(old[16:32], blob)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 56)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x3404559b)
	u32(v1, 16, 16)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	copy(v1[40:56], blob)

	return Scenario{Name: "Sandwich3", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich4 pairs a wide (32-byte) payload with 4-byte alignment only:
// unlike sandwich3, nothing about this variant needs 8-byte alignment, so
// the old side has no gap anywhere - before, tag, data, and after all sit
// flush against each other.
func sandwich4() Scenario {
	variants := []schema.UnionVariant{
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x11111111},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x22222222},
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x33333333},
		{Type: nil, OldSize: 32, V1Size: 32, XUnionOrdinal: 0x5e411019},
	}
	unionOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich4UnionOld", Size: 36, DataOffset: 4, Variants: variants}
	unionV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich4UnionV1"}
	unionOld.Alt, unionV1.Alt = unionV1, unionOld

	oldType, v1Type := wrapSandwich("Sandwich4", unionOld, unionV1, 4, 44)

	blob := []byte{
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf,
		0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf,
	}

	old := make([]byte, 44)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(old, 4, 3) // tag: variant index 3 (ordinal 0x5e411019)
	copy(old[8:40], blob)
	copy(old[40:44], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 72)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x5e411019)
	u32(v1, 16, 32)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	copy(v1[40:72], blob)

	return Scenario{Name: "Sandwich4", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// unionSize8Aligned4 builds a fresh instance of the same union shape
// sandwich1 exercises (a 4-byte tag, a 4-byte payload, 4 bytes of
// trailing self-pad): sandwich5's two cases each reuse this shape as the
// payload of an outer union, and every scenario needs its own Type
// instances since Alt back-links are mutated in place.
func unionSize8Aligned4() (old, v1 *schema.Type) {
	variants := []schema.UnionVariant{
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x11111111},
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x22222222},
		{Type: &schema.Type{Kind: schema.KindPrimitive, Width: 4}, OldSize: 4, V1Size: 4, Padding: 4, XUnionOrdinal: 0x7fc2f0db},
	}
	old = &schema.Type{Kind: schema.KindUnion, Name: "UnionSize8Aligned4Old", Size: 12, DataOffset: 4, Variants: variants}
	v1 = &schema.Type{Kind: schema.KindXUnion, Name: "UnionSize8Aligned4V1"}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// sandwich5Case1 is "a struct wrapping a union whose variant is itself a
// union", with the inner union the same shape sandwich1 exercises
// (UnionSize8Aligned4: Size 12, DataOffset 4). The outer union still
// needs 8-byte alignment for its own payload (a union value), so its
// declared Size (28) leaves 8 bytes of trailing pad after the inner
// union's own 12-byte encoding.
func sandwich5Case1() Scenario {
	innerOld, _ := unionSize8Aligned4()

	outerVariants := []schema.UnionVariant{
		{Type: nil, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x10000000},
		{Type: innerOld, OldSize: 12, V1Size: 24, Padding: 8, XUnionOrdinal: 0x20aadd60},
	}
	outerOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich5Case1OuterOld", Size: 28, DataOffset: 8, Variants: outerVariants}
	outerV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich5Case1OuterV1"}
	outerOld.Alt, outerV1.Alt = outerV1, outerOld

	oldType, v1Type := wrapSandwich("Sandwich5Case1", outerOld, outerV1, 8, 44)

	old := make([]byte, 44)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 1) // outer tag: variant index 1 (ordinal 0x20aadd60)
	u32(old, 16, 2) // inner tag: variant index 2 (ordinal 0x7fc2f0db)
	copy(old[20:24], []byte{0x09, 0x0a, 0x0b, 0x0c})
	// old[24:36) is the inner union's own self-pad plus the outer
	// variant's extra padding out to the outer union's declared Size.
	copy(old[36:40], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 72)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x20aadd60)
	u32(v1, 16, 32) // outer num_bytes: inner's own 24-byte header + 8-byte envelope
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u32(v1, 40, 0x7fc2f0db)
	u32(v1, 48, 8) // inner num_bytes
	u32(v1, 52, 0)
	u64(v1, 56, 0xffffffffffffffff)
	copy(v1[64:68], []byte{0x09, 0x0a, 0x0b, 0x0c})

	return Scenario{Name: "Sandwich5Case1", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich5Case2 is the same union-of-union shape as sandwich5Case1, but
// with a wider inner union (UnionSize24Alignement8: Size 24, DataOffset
// 8, a 16-byte opaque payload). On the v1 side, the outer xunion's
// envelope num_bytes must cover the inner xunion's entire transitive
// footprint (its own 24-byte header plus its own envelope), not just the
// inner xunion's immediate header size - this is the scenario that
// exercises the envelope-backpatching step in transcode.unionToXUnion.
func sandwich5Case2() Scenario {
	blob := &schema.Type{Kind: schema.KindArray, Name: "Blob16"}

	innerVariants := []schema.UnionVariant{
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x10000000},
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x20000000},
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x30000000},
		{Type: blob, OldSize: 16, V1Size: 16, XUnionOrdinal: 0x3404559b},
	}
	innerOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich5Case2InnerOld", Size: 24, DataOffset: 8, Variants: innerVariants}
	innerV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich5Case2InnerV1"}
	innerOld.Alt, innerV1.Alt = innerV1, innerOld

	outerVariants := []schema.UnionVariant{
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x40000000},
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x50000000},
		{Type: blob, OldSize: 0, V1Size: 0, XUnionOrdinal: 0x60000000},
		{Type: innerOld, OldSize: 24, V1Size: 24, XUnionOrdinal: 0x06722d1f},
	}
	outerOld := &schema.Type{Kind: schema.KindUnion, Name: "Sandwich5Case2OuterOld", Size: 32, DataOffset: 8, Variants: outerVariants}
	outerV1 := &schema.Type{Kind: schema.KindXUnion, Name: "Sandwich5Case2OuterV1"}
	outerOld.Alt, outerV1.Alt = outerV1, outerOld

	oldType, v1Type := wrapSandwich("Sandwich5Case2", outerOld, outerV1, 8, 48)

	blobBytes := []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf}

	old := make([]byte, 48)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 3)  // outer tag: variant index 3 (ordinal 0x06722d1f)
	u64(old, 16, 3) // inner tag: variant index 3 (ordinal 0x3404559b)
	copy(old[24:40], blobBytes)
	copy(old[40:44], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 80)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x06722d1f)
	u32(v1, 16, 40) // outer num_bytes: inner's own 24-byte header + 16-byte envelope
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u32(v1, 40, 0x3404559b)
	u32(v1, 48, 16) // inner num_bytes
	u32(v1, 52, 0)
	u64(v1, 56, 0xffffffffffffffff)
	copy(v1[64:80], blobBytes)

	return Scenario{Name: "Sandwich5Case2", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// byteVector builds the old/v1 descriptor pair for a Vector<uint8>.
func byteVector() (old, v1 *schema.Type) {
	old = &schema.Type{Kind: schema.KindVector, Name: "ByteVectorOld", ElementSize: 1, Nullable: true}
	v1 = &schema.Type{Kind: schema.KindVector, Name: "ByteVectorV1", ElementSize: 1, Nullable: true}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// sandwich6UnionOfVector builds the shared shape every Sandwich6 case
// uses: a static union (DataOffset 8, declared Size 24) whose variant at
// index tag carries vecOld/vecV1 (the variants below it are payload-less
// placeholders), plus the wrapping Sandwich6 struct
// pair. Every case exercises a different vector element type, so the
// descriptors are built fresh per call; what's shared is the envelope
// shape they all sit inside.
func sandwich6UnionOfVector(name string, ordinal uint32, tag uint64, vecOld, vecV1 *schema.Type, payloadOldSize, payloadV1Size uint32) (oldType, v1Type *schema.Type) {
	variants := make([]schema.UnionVariant, tag+1)
	for i := range variants {
		variants[i] = schema.UnionVariant{Type: nil, XUnionOrdinal: uint32(0x10000000 * (i + 1))}
	}
	variants[tag] = schema.UnionVariant{Type: vecOld, OldSize: payloadOldSize, V1Size: payloadV1Size, XUnionOrdinal: ordinal}

	unionOld := &schema.Type{Kind: schema.KindUnion, Name: name + "UnionOld", Size: 24, DataOffset: 8, Variants: variants}
	unionV1 := &schema.Type{Kind: schema.KindXUnion, Name: name + "UnionV1"}
	unionOld.Alt, unionV1.Alt = unionV1, unionOld

	return wrapSandwich(name, unionOld, unionV1, 8, 40)
}

// sandwich6Case1 is a present Vector<uint8> of 6 bytes.
func sandwich6Case1() Scenario {
	vecOld, vecV1 := byteVector()
	oldType, v1Type := sandwich6UnionOfVector("Sandwich6Case1", 0x79c3ccad, 1, vecOld, vecV1, 16, 16)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 1) // tag: variant index 1 (ordinal 0x79c3ccad)
	u64(old, 16, 6)
	u64(old, 24, 0xffffffffffffffff)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 56)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x79c3ccad)
	u32(v1, 16, 0x18)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, 6)
	u64(v1, 48, 0xffffffffffffffff)

	old = append(old, []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00}...)
	v1 = append(v1, []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00}...)

	return Scenario{Name: "Sandwich6Case1", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich6Case1AbsentVector is the same shape as sandwich6Case1, with
// the vector itself absent: the 16-byte vector header is still written
// out as the union's payload, but the length is 0 and the presence word
// is ABSENT, and there is no out-of-line element region at all.
func sandwich6Case1AbsentVector() Scenario {
	vecOld, vecV1 := byteVector()
	oldType, v1Type := sandwich6UnionOfVector("Sandwich6Case1AbsentVector", 0x79c3ccad, 1, vecOld, vecV1, 16, 16)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 1) // tag: variant index 1 (ordinal 0x79c3ccad)
	u64(old, 16, 0)
	u64(old, 24, 0)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 56)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x79c3ccad)
	u32(v1, 16, 0x10)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, 0)
	u64(v1, 48, 0)

	return Scenario{Name: "Sandwich6Case1AbsentVector", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich6Case2 is a present Vector<uint8> of 21 bytes - the literal
// text "soft migrations rock!" - wide enough to show the element region
// itself being rounded up to an 8-byte multiple independent of the
// 16-byte header that precedes it.
func sandwich6Case2() Scenario {
	vecOld, vecV1 := byteVector()
	oldType, v1Type := sandwich6UnionOfVector("Sandwich6Case2", 0x3b314338, 2, vecOld, vecV1, 16, 16)
	payload := []byte("soft migrations rock!")

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 2) // tag: variant index 2 (ordinal 0x3b314338)
	u64(old, 16, uint64(len(payload)))
	u64(old, 24, 0xffffffffffffffff)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	old = append(old, make([]byte, 24)...)
	copy(old[40:], payload)

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x3b314338)
	u32(v1, 16, 0x28)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, uint64(len(payload)))
	v1 = append(v1, make([]byte, 8)...)
	u64(v1, 48, 0xffffffffffffffff)
	v1 = append(v1, make([]byte, 24)...)
	copy(v1[56:], payload)

	return Scenario{Name: "Sandwich6Case2", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// structSize3Stride4 builds a fixed-width 3-byte struct descriptor whose
// vector/array stride is 4 (3 meaningful bytes, 1 trailing pad), used by
// both sandwich6Case3 (a vector of these) and sandwich6Case4.
func structSize3Stride4(name string) (old, v1 *schema.Type) {
	old = &schema.Type{Kind: schema.KindStruct, Name: name + "Old", Layout: schema.Old, Size: 3,
		Fields: []schema.Field{{Offset: 0, Size: 3}}}
	v1 = &schema.Type{Kind: schema.KindStruct, Name: name + "V1", Layout: schema.V1, Size: 3,
		Fields: []schema.Field{{Offset: 0, Size: 3}}}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// structVector3 builds the old/v1 descriptor pair for a Vector<struct>
// whose 3-byte elements have a 4-byte stride.
func structVector3(name string) (old, v1 *schema.Type) {
	elemOld, elemV1 := structSize3Stride4(name + "Elem")
	old = &schema.Type{Kind: schema.KindVector, Name: name + "Old", Elem: elemOld, ElementSize: 3, ElementPadding: 1, Nullable: true}
	v1 = &schema.Type{Kind: schema.KindVector, Name: name + "V1", Elem: elemV1, ElementSize: 3, ElementPadding: 1, Nullable: true}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// sandwich6Case3 and sandwich6Case4 are a Vector<struct> of 3 elements,
// laid out identically on the wire in both cases (the two element types
// being distinguished only by their declared alignment, which doesn't
// change the packed encoding here since the stride is already a multiple
// of both).
func sandwich6VectorOfStruct(name string, ordinal uint32, tag uint64) Scenario {
	vecOld, vecV1 := structVector3(name)
	oldType, v1Type := sandwich6UnionOfVector(name, ordinal, tag, vecOld, vecV1, 16, 16)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, tag)
	u64(old, 16, 3)
	u64(old, 24, 0xffffffffffffffff)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	old = append(old, []byte{
		0x73, 0x6f, 0x66, 0x00,
		0x20, 0x6d, 0x69, 0x00,
		0x72, 0x61, 0x74, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}...)

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, ordinal)
	u32(v1, 16, 0x20)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, 3)
	v1 = append(v1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	v1 = append(v1, []byte{
		0x73, 0x6f, 0x66, 0x00,
		0x20, 0x6d, 0x69, 0x00,
		0x72, 0x61, 0x74, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}...)

	return Scenario{Name: name, OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

func sandwich6Case3() Scenario { return sandwich6VectorOfStruct("Sandwich6Case3", 0x4bc13cdc, 3) }
func sandwich6Case4() Scenario { return sandwich6VectorOfStruct("Sandwich6Case4", 0x1d08aa3c, 4) }

// handleVector builds the old/v1 descriptor pair for a Vector<handle>:
// its element is a real schema.KindHandle descriptor, which is what lets
// the transcoder's own running handle count (see transcode.transcoder)
// discover how many handles a given encoded vector actually carries.
func handleVector() (old, v1 *schema.Type) {
	handleOld := &schema.Type{Kind: schema.KindHandle}
	handleV1 := &schema.Type{Kind: schema.KindHandle}
	old = &schema.Type{Kind: schema.KindVector, Name: "HandleVectorOld", Elem: handleOld, ElementSize: 4, Nullable: true}
	v1 = &schema.Type{Kind: schema.KindVector, Name: "HandleVectorV1", Elem: handleV1, ElementSize: 4, Nullable: true}
	old.Alt, v1.Alt = v1, old
	return old, v1
}

// sandwich6Case5 is a present Vector<handle> of 3 handles. Unlike every
// other Sandwich6 case, its union variant actually has handles in its
// transitive payload, so its v1 envelope's num_handles is 3, not 0 - the
// scenario that exercises the v1 envelope's handle count being summed
// from the vector's own declared length rather than assumed from the
// descriptor alone.
func sandwich6Case5() Scenario {
	vecOld, vecV1 := handleVector()
	oldType, v1Type := sandwich6UnionOfVector("Sandwich6Case5", 0x471eaa76, 5, vecOld, vecV1, 16, 16)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 5) // tag: variant index 5 (ordinal 0x471eaa76)
	u64(old, 16, 3)
	u64(old, 24, 0xffffffffffffffff)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	old = append(old, []byte{
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}...)

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x471eaa76)
	u32(v1, 16, 0x20)
	u32(v1, 20, 3) // num_handles: the 3 handles the vector actually carries
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, 3)
	v1 = append(v1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	v1 = append(v1, []byte{
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}...)

	return Scenario{Name: "Sandwich6Case5", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich6ArrayOfStruct builds the shared shape sandwich6Case6 and
// sandwich6Case7 use: a fixed Array<struct>:2 payload, packed tightly
// (no vector header) and padded only at the union's own trailing edge.
// The two cases differ solely in per-element stride - 3 with no pad for
// case6's 1-byte-aligned element, 4 with 1 byte of pad for case7's
// 2-byte-aligned one - which this helper takes as a parameter since
// elements() derives it from ElementSize+ElementPadding rather than from
// the element type's own declared alignment.
func sandwich6ArrayOfStruct(name string, ordinal uint32, tag uint64, elemStride uint32, oldBytes, v1ElemBytes []byte) Scenario {
	elemOld, elemV1 := structSize3Stride4(name + "Elem")
	pad := elemStride - 3
	arrOld := &schema.Type{Kind: schema.KindArray, Name: name + "ArrayOld", Elem: elemOld, ElementSize: 3, ElementPadding: pad, Count: 2, Size: 2 * elemStride}
	arrV1 := &schema.Type{Kind: schema.KindArray, Name: name + "ArrayV1", Elem: elemV1, ElementSize: 3, ElementPadding: pad, Count: 2, Size: 2 * elemStride}
	arrOld.Alt, arrV1.Alt = arrV1, arrOld

	oldType, v1Type := sandwich6UnionOfVector(name, ordinal, tag, arrOld, arrV1, 8, 8)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, tag)
	copy(old[16:16+len(oldBytes)], oldBytes)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, ordinal)
	u32(v1, 16, 8)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	copy(v1[40:40+len(v1ElemBytes)], v1ElemBytes)

	return Scenario{Name: name, OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

func sandwich6Case6() Scenario {
	return sandwich6ArrayOfStruct("Sandwich6Case6", 0x5ea0a810, 6, 3,
		[]byte{0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0x00, 0x00},
		[]byte{0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0x00, 0x00})
}

func sandwich6Case7() Scenario {
	return sandwich6ArrayOfStruct("Sandwich6Case7", 0x5cf8b70d, 7, 4,
		[]byte{0xa1, 0xa2, 0xa3, 0x00, 0xa4, 0xa5, 0xa6, 0x00},
		[]byte{0xa1, 0xa2, 0xa3, 0x00, 0xa4, 0xa5, 0xa6, 0x00})
}

// sandwich6Case8 is a present Vector<UnionSize8Aligned4> of a single
// element: the only scenario where a vector's own element type is itself
// a union, exercising a second level of union recursion underneath the
// elements() walk that every other Sandwich6 case never reaches.
func sandwich6Case8() Scenario {
	elemOld, elemV1 := unionSize8Aligned4()
	vecOld := &schema.Type{Kind: schema.KindVector, Name: "Sandwich6Case8VectorOld", Elem: elemOld, ElementSize: 12, Nullable: true}
	vecV1 := &schema.Type{Kind: schema.KindVector, Name: "Sandwich6Case8VectorV1", Elem: elemV1, ElementSize: 24, Nullable: true}
	vecOld.Alt, vecV1.Alt = vecV1, vecOld

	oldType, v1Type := sandwich6UnionOfVector("Sandwich6Case8", 0x2b768c31, 8, vecOld, vecV1, 16, 16)

	old := make([]byte, 40)
	copy(old[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u64(old, 8, 8) // tag: variant index 8 (ordinal 0x2b768c31)
	u64(old, 16, 1)
	u64(old, 24, 0xffffffffffffffff)
	copy(old[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	old = append(old, []byte{0x02, 0x00, 0x00, 0x00, 0x09, 0x0a, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}...)

	v1 := make([]byte, 48)
	copy(v1[0:4], []byte{0x01, 0x02, 0x03, 0x04})
	u32(v1, 8, 0x2b768c31)
	u32(v1, 16, 0x30)
	u32(v1, 20, 0)
	u64(v1, 24, 0xffffffffffffffff)
	copy(v1[32:36], []byte{0x05, 0x06, 0x07, 0x08})
	u64(v1, 40, 1)
	v1 = append(v1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	v1 = append(v1, 0xdb, 0xf0, 0xc2, 0x7f)
	v1 = append(v1, 0x00, 0x00, 0x00, 0x00)
	v1 = append(v1, 0x08, 0x00, 0x00, 0x00)
	v1 = append(v1, 0x00, 0x00, 0x00, 0x00)
	v1 = append(v1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	v1 = append(v1, 0x09, 0x0a, 0x0b, 0x0c)
	v1 = append(v1, 0x00, 0x00, 0x00, 0x00)

	return Scenario{Name: "Sandwich6Case8", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich7Types builds the shared descriptor pair for the optional
// record scenarios: a 4-byte "before" field followed by an 8-byte
// presence word, pointing at a small flat record when present. This is a
// simplified stand-in for runner.cc's real Sandwich7 (which also wraps a
// 4-byte "after" field and points at a nested Sandwich1-shaped record) -
// see DESIGN.md.

func sandwich7Types() (oldType, v1Type *schema.Type) {
	pointeeOld := &schema.Type{Kind: schema.KindStruct, Name: "Sandwich7PointeeOld", Layout: schema.Old, Size: 16,
		Fields: []schema.Field{{Offset: 0, Size: 16}}}
	pointeeV1 := &schema.Type{Kind: schema.KindStruct, Name: "Sandwich7PointeeV1", Layout: schema.V1, Size: 16,
		Fields: []schema.Field{{Offset: 0, Size: 16}}}
	pointeeOld.Alt, pointeeV1.Alt = pointeeV1, pointeeOld

	ptrOld := &schema.Type{Kind: schema.KindStructPointer, Name: "Sandwich7PtrOld", Pointee: pointeeOld}
	ptrV1 := &schema.Type{Kind: schema.KindStructPointer, Name: "Sandwich7PtrV1", Pointee: pointeeV1}
	ptrOld.Alt, ptrV1.Alt = ptrV1, ptrOld

	oldType = &schema.Type{Kind: schema.KindStruct, Name: "Sandwich7Old", Layout: schema.Old, Size: 16,
		Fields: []schema.Field{
			{Offset: 0, Size: 4},
			{Type: ptrOld, Offset: 8},
		}}
	v1Type = &schema.Type{Kind: schema.KindStruct, Name: "Sandwich7V1", Layout: schema.V1, Size: 16,
		Fields: []schema.Field{
			{Offset: 0, Size: 4},
			{Type: ptrV1, Offset: 8},
		}}
	// The pointer occupies [8, 16); "before" is the leading 4-byte raw
	// field at offset 0 (offsets 4-8 are the struct's own alignment pad
	// before the 8-byte-aligned pointer field).
	oldType.Fields[1].Alt, v1Type.Fields[1].Alt = &v1Type.Fields[1], &oldType.Fields[1]
	oldType.Alt, v1Type.Alt = v1Type, oldType
	return oldType, v1Type
}

// sandwich7Present is the optional-record case where the pointer is set:
// the pointee's 16 bytes are transcoded into the out-of-line region
// following the outer record on both sides.
func sandwich7Present() Scenario {
	oldType, v1Type := sandwich7Types()

	old := make([]byte, 32)
	u32(old, 0, 0x11121314)
	u64(old, 8, 0xffffffffffffffff)
	copy(old[16:32], []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	})

	v1 := make([]byte, 32)
	u32(v1, 0, 0x11121314)
	u64(v1, 8, 0xffffffffffffffff)
	copy(v1[16:32], []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	})

	return Scenario{Name: "Sandwich7Present", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

// sandwich7Absent is the same shape with the pointer cleared: no bytes
// beyond the 16-byte inline record.
func sandwich7Absent() Scenario {
	oldType, v1Type := sandwich7Types()

	old := make([]byte, 16)
	u32(old, 0, 0x11121314)
	u64(old, 8, 0)

	v1 := make([]byte, 16)
	u32(v1, 0, 0x11121314)
	u64(v1, 8, 0)

	return Scenario{Name: "Sandwich7Absent", OldType: oldType, V1Type: v1Type, OldBytes: old, V1Bytes: v1}
}

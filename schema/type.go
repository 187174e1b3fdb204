// Package schema is the closed, statically allocated graph of immutable
// type descriptors the transcoding engine walks. It mirrors Vanadium's
// vdl.Type in shape — one kind-discriminated struct whose fields are
// reused across kinds rather than a family of kind-specific structs — and
// mirrors the original FIDL coding tables (FidlCodedStruct, FidlCodedUnion,
// FidlCodedXUnion, ...) in intent: every descriptor for a transformable
// type carries a back-link to its counterpart in the other layout so the
// engine never has to search for it.
package schema

import "fmt"

// Type describes one node in the coding-table graph. Descriptors are built
// once, at package-init time, and are never mutated afterward; they are
// safe to share across concurrent transcode calls.
type Type struct {
	Kind   Kind
	Name   string // diagnostic only
	Layout Layout // meaningful for KindStruct, KindArray, KindUnion, KindXUnion

	// Primitive / Enum / Bits.
	Width uint8

	// Handle.
	HandleSubtype uint32
	Nullable      bool // also used by String and Vector

	// String.
	MaxSize uint32

	// Array / Vector element description.
	Elem           *Type // nil for byte arrays/vectors with no structured element
	ElementSize    uint32
	ElementPadding uint32 // trailing per-element pad, precomputed from wire.ElementStride
	MaxCount       uint32 // Vector only
	Count          uint32 // Array only: static element count

	// Struct.
	Fields []Field

	// Array / Struct / Union: declared size in this descriptor's own
	// layout (array total size, record size, or static-union size).
	Size uint32

	// Counterpart in the other layout. Struct <-> Struct, Array <->
	// Array, Union <-> XUnion.
	Alt *Type

	// StructPointer.
	Pointee *Type

	// Union (static).
	Variants   []UnionVariant
	DataOffset uint32 // 4 or 8

	// XUnion. The variant list itself lives on the counterpart static
	// union (Alt.Variants): UnionVariant.XUnionOrdinal is enough to go
	// from ordinal to variant in either direction, so an xunion
	// descriptor carries no variant list of its own. Strict records
	// whether unknown ordinals are rejected outright by the FIDL
	// bindings this message was generated for; the transform itself
	// always rejects an ordinal it cannot map, strict or not.
	Strict bool

	// Table.
	TableFields []TableField
}

// Field is one member of a Struct descriptor's field list.
type Field struct {
	// Type is nil for a raw field: a primitive, padding, or handle
	// region that needs no structural rewrite. Non-nil for a field that
	// the engine must recurse into.
	Type *Type

	// Offset is this field's absolute inline offset within its
	// enclosing record, in this field's own layout.
	Offset uint32

	// Size is the exact byte span to copy verbatim when Type == nil.
	// Storing it directly (rather than deriving it from the next
	// field's offset) sidesteps a sign bug in the arithmetic the
	// original transformer used for the equivalent computation.
	Size uint32

	// Alt points to the corresponding field in the counterpart record's
	// field list; nil only when Type is also nil (raw fields need no
	// counterpart, since raw regions are identical in both layouts).
	Alt *Field
}

// UnionVariant is one entry in a static union's variant list, indexed both
// by position (the old-layout tag) and by XUnionOrdinal (the v1-layout
// ordinal), so it serves as the variant table for transforms in either
// direction.
type UnionVariant struct {
	// Type is the payload type of this variant, in the old layout.
	Type *Type

	// OldSize and V1Size are the payload's own inline size in each
	// layout. They are stored explicitly, rather than derived by calling
	// InlineSize(Type, ...), because a variant's payload is often a bare
	// Primitive, Enum, or Bits value, which InlineSize refuses to size on
	// its own (same rationale as Field.Size).
	OldSize uint32
	V1Size  uint32

	// Padding is the number of zero-pad bytes after the payload needed
	// to fill out the union's declared Size.
	Padding uint32

	// XUnionOrdinal is the 32-bit ordinal the counterpart extensible
	// union uses for this same logical variant.
	XUnionOrdinal uint32
}

// TableField is one entry in a reserved Table descriptor's field list.
type TableField struct {
	Type    *Type
	Ordinal uint32
}

func (t *Type) String() string {
	if t == nil {
		return "<absent>"
	}
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Layout)
}

func (t *Type) checkKind(want Kind) {
	if t.Kind != want {
		panic(fmt.Sprintf("schema: %s: expected kind %s, got %s", t, want, t.Kind))
	}
}

package schema

import (
	"fmt"

	"github.com/tengyifei/llcpptransformer/wire"
)

// InlineSize returns the number of bytes a value of type t occupies inline
// when encoded in layout. It is a pure function of the descriptor and the
// requested layout.
//
// Calling InlineSize with t == nil returns the size of an absent
// descriptor's raw region placeholder (8), matching the record-field
// invariant that a descriptor-absent field still occupies a known span.
// Calling it on a Primitive, Enum, or Bits descriptor panics: those kinds
// are never looked up this way by the engine, which instead reads the raw
// Field.Size recorded alongside them.
func InlineSize(t *Type, layout Layout) uint32 {
	if t == nil {
		return wire.RecordPointerSize
	}
	switch t.Kind {
	case KindStructPointer, KindUnionPointer:
		return wire.RecordPointerSize
	case KindVector, KindString:
		return wire.VectorHeaderSize
	case KindHandle:
		return wire.HandleSlotSize
	case KindUnion:
		if layout == V1 {
			return wire.XUnionSize
		}
		return t.Size
	case KindXUnion:
		if layout == V1 {
			return wire.XUnionSize
		}
		if t.Alt == nil {
			panic(fmt.Sprintf("schema: %s has no old-layout counterpart", t))
		}
		return t.Alt.Size
	case KindStruct, KindArray:
		if t.Layout == layout {
			return t.Size
		}
		if t.Alt == nil {
			panic(fmt.Sprintf("schema: %s has no %s-layout counterpart", t, layout))
		}
		return t.Alt.Size
	case KindPrimitive, KindEnum, KindBits:
		panic(fmt.Sprintf("schema: InlineSize must not be called on %s; use the enclosing Field.Size", t.Kind))
	default:
		panic(fmt.Sprintf("schema: InlineSize: unhandled kind %s", t.Kind))
	}
}

package schema

// Kind discriminates the type-descriptor variants a Type can describe.
// Only the fields relevant to a given Kind are meaningful on a Type value;
// see the field comments on Type for the kind-to-field mapping, following
// the same reused-fields-per-kind style as Vanadium's vdl.Type.
type Kind uint8

const (
	// KindPrimitive, KindEnum, and KindBits are raw fixed-width scalars;
	// they use Width and are never dispatched into by name, only copied
	// verbatim by the engine (their enclosing Field carries no Type at
	// all in practice, but the kind exists for descriptor completeness
	// and for InlineSize's panic-on-misuse contract).
	KindPrimitive Kind = iota
	KindEnum
	KindBits

	// KindHandle uses HandleSubtype and Nullable.
	KindHandle

	// KindString uses MaxSize and Nullable, and, since the engine walks a
	// string with the vector rule, ElementSize (1), ElementPadding, and
	// Alt as well.
	KindString

	// KindArray uses Elem, ElementSize, ElementPadding, Count, Size
	// (total array size), Layout, and Alt.
	KindArray

	// KindVector uses Elem, ElementSize, ElementPadding, MaxCount,
	// Nullable, and Alt.
	KindVector

	// KindStruct uses Fields, Size (declared record size), Layout, and
	// Alt.
	KindStruct

	// KindStructPointer uses Pointee.
	KindStructPointer

	// KindUnion is the static (old-layout) union: uses Variants,
	// DataOffset, Size (declared union size), and Alt (the counterpart
	// extensible union).
	KindUnion

	// KindUnionPointer models a nullable union. Always rejected with
	// BAD_STATE: nullable unions are unsupported in this wire
	// generation.
	KindUnionPointer

	// KindXUnion is the extensible (v1-layout) union: uses Strict and Alt
	// (the counterpart static union, whose Variants list is shared by
	// both directions).
	KindXUnion

	// KindTable is reserved for a future transform generation; any
	// descriptor of this kind causes BAD_STATE today.
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEnum:
		return "Enum"
	case KindBits:
		return "Bits"
	case KindHandle:
		return "Handle"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindVector:
		return "Vector"
	case KindStruct:
		return "Struct"
	case KindStructPointer:
		return "StructPointer"
	case KindUnion:
		return "Union"
	case KindUnionPointer:
		return "UnionPointer"
	case KindXUnion:
		return "XUnion"
	case KindTable:
		return "Table"
	default:
		return "Kind(?)"
	}
}

// Layout identifies which of the two wire layouts a Struct, Array, Union,
// or XUnion descriptor instance natively describes. Union and XUnion kinds
// already imply their layout (Union is always old, XUnion is always v1);
// the field still exists on those for uniformity, but the InlineSize
// oracle consults it only for Struct and Array and sizes Union and XUnion
// from the requested layout alone.
type Layout uint8

const (
	Old Layout = iota
	V1
)

func (l Layout) String() string {
	if l == Old {
		return "old"
	}
	return "v1"
}

// Other returns the counterpart of l: Old for V1 and V1 for Old.
func (l Layout) Other() Layout {
	if l == Old {
		return V1
	}
	return Old
}

// Package wire defines the on-the-wire constants shared by the old and v1
// layouts: alignment, presence sentinels, and the fixed-size headers that
// precede out-of-line payloads.
package wire

// Alignment is the alignment unit for out-of-line allocations in both
// layouts.
const Alignment = 8

// MaxMessageBytes bounds the size of any source or destination region, a
// carry-over from the underlying channel transport's message cap.
const MaxMessageBytes = 65536

// Presence sentinels for 8-byte optional out-of-line pointers.
const (
	Present uint64 = 0xffffffffffffffff
	Absent  uint64 = 0
)

// Presence sentinels for 4-byte handle slots.
const (
	HandlePresent uint32 = 0xffffffff
	HandleAbsent  uint32 = 0
)

// EnvelopeSize is the size of the header that precedes an out-of-line
// extensible-union payload: 4-byte num_bytes, 4-byte num_handles, 8-byte
// presence.
const EnvelopeSize = 16

// XUnionSize is the on-wire size of an extensible union: 4-byte ordinal,
// 4 bytes of mandatory zero padding, and a 16-byte envelope.
const XUnionSize = 24

// RecordPointerSize (8), VectorHeaderSize (16), and HandleSlotSize (4) are
// the same in both layouts; kept as distinct names for readability at call
// sites.
const (
	RecordPointerSize = 8
	VectorHeaderSize  = 16
	HandleSlotSize    = 4
)

// Align rounds n up to the next multiple of Alignment.
func Align(n uint32) uint32 {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// IsAligned reports whether n is already a multiple of Alignment.
func IsAligned(n uint32) bool {
	return n%Alignment == 0
}

// ElementStride returns the number of bytes a vector/array element of the
// given size occupies on the wire: elements of size 1 or 2 are packed at
// their natural size, a 3- or 4-byte element occupies 4, and any size of 5
// or more returns 8 (a 16-byte element also returns 8, not 16).
func ElementStride(size uint32) uint32 {
	switch {
	case size <= 2:
		return size
	case size <= 4:
		return 4
	default:
		return 8
	}
}

package transcode

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/tengyifei/llcpptransformer/status"
	"github.com/tengyifei/llcpptransformer/wire"
)

func u32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func u64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }
func ru32(b []byte, off int) uint32   { return binary.LittleEndian.Uint32(b[off:]) }
func ru64(b []byte, off int) uint64   { return binary.LittleEndian.Uint64(b[off:]) }

func TestTransformDirectionNoneIsNoOp(t *testing.T) {
	old, _ := flatStructPair()
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 8)
	n, err := Transform(DirectionNone, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
	if !bytes.Equal(dst, make([]byte, 8)) {
		t.Errorf("DirectionNone touched dst: %v", dst)
	}
}

func TestTransformFlatStructCopiesBytesVerbatim(t *testing.T) {
	old, _ := flatStructPair()
	src := make([]byte, 16)
	u32(src, 0, 0x01020304)
	u32(src, 4, 0xaabbccdd)
	u64(src, 8, 0x1122334455667788)
	dst := make([]byte, 16)

	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v (identical to src)", dst, src)
	}
}

func TestTransformVectorRoundTrip(t *testing.T) {
	old, v1 := vectorStructPair()

	src := make([]byte, 32)
	u64(src, 0, 3)
	u64(src, 8, wire.Present)
	u32(src, 16, 10)
	u32(src, 20, 20)
	u32(src, 24, 30)

	dst := make([]byte, 32)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("old->v1 Transform: %v", err)
	}
	if n != 32 {
		t.Fatalf("old->v1 n = %d, want 32", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("old->v1 dst = %v, want %v", dst, src)
	}

	back := make([]byte, 32)
	n, err = Transform(DirectionV1ToOld, v1, dst, back)
	if err != nil {
		t.Fatalf("v1->old Transform: %v", err)
	}
	if n != 32 {
		t.Fatalf("v1->old n = %d, want 32", n)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("round trip: back = %v, want %v", back, src)
	}
}

func TestTransformVectorAbsentHasNoOutOfLine(t *testing.T) {
	old, _ := vectorStructPair()
	src := make([]byte, 16)
	u64(src, 0, 0)
	u64(src, 8, wire.Absent)
	dst := make([]byte, 16)

	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}

func TestTransformStringRoundTrip(t *testing.T) {
	old, v1 := stringStructPair()

	src := make([]byte, 24)
	u64(src, 0, 3)
	u64(src, 8, wire.Present)
	copy(src[16:19], "abc")

	dst := make([]byte, 24)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("old->v1 Transform: %v", err)
	}
	if n != 24 {
		t.Fatalf("n = %d, want 24", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}

	back := make([]byte, 24)
	if _, err := Transform(DirectionV1ToOld, v1, dst, back); err != nil {
		t.Fatalf("v1->old Transform: %v", err)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("round trip: back = %v, want %v", back, src)
	}
}

func TestTransformUnionRoundTrip(t *testing.T) {
	old, v1 := unionStructPair()

	src := make([]byte, 24)
	u64(src, 0, 0) // tag: variant index 0, ordinal 1
	u32(src, 8, 0xdeadbeef)
	// bytes [12:24) are the union's own mandated-zero trailing padding.

	dst := make([]byte, 32)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("old->v1 Transform: %v", err)
	}
	if n != 32 {
		t.Fatalf("n = %d, want 32", n)
	}
	if got := ru32(dst, 0); got != 1 {
		t.Errorf("ordinal = %d, want 1", got)
	}
	if got := ru32(dst, 8); got != 8 {
		t.Errorf("num_bytes = %d, want 8", got)
	}
	if got := ru32(dst, 12); got != 0 {
		t.Errorf("num_handles = %d, want 0", got)
	}
	if got := ru64(dst, 16); got != wire.Present {
		t.Errorf("presence = %#x, want PRESENT", got)
	}
	if got := ru32(dst, 24); got != 0xdeadbeef {
		t.Errorf("payload = %#x, want 0xdeadbeef", got)
	}
	if got := ru32(dst, 28); got != 0 {
		t.Errorf("trailing envelope pad = %#x, want 0", got)
	}

	back := make([]byte, 24)
	if _, err := Transform(DirectionV1ToOld, v1, dst, back); err != nil {
		t.Fatalf("v1->old Transform: %v", err)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("round trip: back = %v, want %v", back, src)
	}
}

func TestTransformUnionSecondVariant(t *testing.T) {
	old, _ := unionStructPair()
	src := make([]byte, 24)
	u64(src, 0, 1) // tag: variant index 1, ordinal 2
	u32(src, 8, 42)

	dst := make([]byte, 32)
	if _, err := Transform(DirectionOldToV1, old, src, dst); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got := ru32(dst, 0); got != 2 {
		t.Errorf("ordinal = %d, want 2", got)
	}
	if got := ru32(dst, 24); got != 42 {
		t.Errorf("payload = %d, want 42", got)
	}
}

func TestTransformNestedUnionOfUnion(t *testing.T) {
	old, v1 := nestedUnionStructPair()

	src := make([]byte, 32)
	u64(src, 0, 0)            // outer tag: variant index 0 (ordinal 1)
	u64(src, 8, 1)             // inner tag: variant index 1 (ordinal 2)
	u32(src, 16, 0xcafebabe)   // inner payload
	// bytes [20:32) are the inner union's own zero padding.

	dst := make([]byte, 56)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("old->v1 Transform: %v", err)
	}
	if n != 56 {
		t.Fatalf("n = %d, want 56", n)
	}

	// Outer xunion header at [0, 24).
	if got := ru32(dst, 0); got != 1 {
		t.Errorf("outer ordinal = %d, want 1", got)
	}
	if got := ru32(dst, 8); got != 32 {
		t.Errorf("outer num_bytes = %d, want 32", got)
	}
	// Inner xunion header at [24, 48).
	if got := ru32(dst, 24); got != 2 {
		t.Errorf("inner ordinal = %d, want 2", got)
	}
	if got := ru32(dst, 32); got != 8 {
		t.Errorf("inner num_bytes = %d, want 8", got)
	}
	// Inner payload at [48, 56).
	if got := ru32(dst, 48); got != 0xcafebabe {
		t.Errorf("inner payload = %#x, want 0xcafebabe", got)
	}

	back := make([]byte, 32)
	n, err = Transform(DirectionV1ToOld, v1, dst, back)
	if err != nil {
		t.Fatalf("v1->old Transform: %v", err)
	}
	if n != 32 {
		t.Fatalf("v1->old n = %d, want 32", n)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("round trip: back = %v, want %v", back, src)
	}
}

func TestTransformOptionalRecordPresent(t *testing.T) {
	old, v1 := optionalRecordStructPair()

	src := make([]byte, 16)
	u64(src, 0, wire.Present)
	u64(src, 8, 0x0102030405060708)

	dst := make([]byte, 16)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}

	back := make([]byte, 16)
	if _, err := Transform(DirectionV1ToOld, v1, dst, back); err != nil {
		t.Fatalf("reverse Transform: %v", err)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("round trip: back = %v, want %v", back, src)
	}
}

func TestTransformOptionalRecordAbsent(t *testing.T) {
	old, _ := optionalRecordStructPair()
	src := make([]byte, 8)
	u64(src, 0, wire.Absent)
	dst := make([]byte, 8)

	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 8 {
		t.Errorf("n = %d, want 8", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}

func TestTransformFixedArray(t *testing.T) {
	old, _ := fixedArrayStructPair()
	src := make([]byte, 16)
	u32(src, 0, 1)
	u32(src, 4, 2)
	u32(src, 8, 3)
	u32(src, 12, 0xff) // trailing raw field, untouched by the array transform

	dst := make([]byte, 16)
	n, err := Transform(DirectionOldToV1, old, src, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}

func TestTransformUnknownOrdinalIsBadInput(t *testing.T) {
	_, v1 := unionStructPair()
	src := make([]byte, 24)
	u32(src, 0, 99) // no variant maps to ordinal 99
	u64(src, 16, wire.Present)
	dst := make([]byte, 32)

	_, err := Transform(DirectionV1ToOld, v1, src, dst)
	if !status.Is(err, status.BadInput) {
		t.Fatalf("err = %v, want BAD_INPUT", err)
	}
	if !strings.Contains(err.Error(), "ordinal has no corresponding variant") {
		t.Errorf("err = %q, want it to contain %q", err.Error(), "ordinal has no corresponding variant")
	}
}

func TestTransformSourceTooShortIsBadInput(t *testing.T) {
	old, _ := flatStructPair()
	src := make([]byte, 8) // flat struct declares 16
	dst := make([]byte, 16)

	_, err := Transform(DirectionOldToV1, old, src, dst)
	if !status.Is(err, status.BadInput) {
		t.Fatalf("err = %v, want BAD_INPUT", err)
	}
}

func TestTransformDestinationTooSmallIsBufferTooSmall(t *testing.T) {
	old, _ := flatStructPair()
	src := make([]byte, 16)
	dst := make([]byte, 4)

	_, err := Transform(DirectionOldToV1, old, src, dst)
	if !status.Is(err, status.BufferTooSmall) {
		t.Fatalf("err = %v, want BUFFER_TOO_SMALL", err)
	}
}

func TestTransformAliasingSourceAndDestinationIsInvalidArgs(t *testing.T) {
	old, _ := flatStructPair()
	buf := make([]byte, 16)

	_, err := Transform(DirectionOldToV1, old, buf, buf)
	if !status.Is(err, status.InvalidArgs) {
		t.Fatalf("err = %v, want INVALID_ARGS", err)
	}
}

func TestTransformWrongTopTypeLayoutIsInvalidArgs(t *testing.T) {
	_, v1 := flatStructPair()
	src := make([]byte, 16)
	dst := make([]byte, 16)

	// v1 is a V1-layout descriptor; DirectionOldToV1 expects an Old one.
	_, err := Transform(DirectionOldToV1, v1, src, dst)
	if !status.Is(err, status.InvalidArgs) {
		t.Fatalf("err = %v, want INVALID_ARGS", err)
	}
}

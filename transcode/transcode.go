// Package transcode implements the recursive old<->v1 wire-format
// transform: given a coding-table root describing a message already
// expressed in one layout, it rewrites that message into the other layout
// into a caller-supplied destination buffer.
//
// The engine dispatches purely on the source type graph's own Kind at each
// recursion step (vom/binary_to_json_transcoder.go's dispatch-by-kind
// shape, adapted from JSON rendering to a second binary layout): a
// schema.KindUnion node is always transcoded old->v1 and a schema.KindXUnion
// node is always transcoded v1->old, so no direction flag needs to be
// threaded through the recursion once Transform has validated that its
// top-level type matches the requested direction.
package transcode

import (
	"github.com/tengyifei/llcpptransformer/cursor"
	"github.com/tengyifei/llcpptransformer/position"
	"github.com/tengyifei/llcpptransformer/schema"
	"github.com/tengyifei/llcpptransformer/status"
	"github.com/tengyifei/llcpptransformer/wire"
)

// Transform rewrites src, a message whose top-level record is described by
// topType, into dst according to direction. topType must be expressed in
// whichever layout direction reads from: a schema.Old-layout schema.Type
// for DirectionOldToV1, a schema.V1-layout one for DirectionV1ToOld.
//
// It returns the number of bytes written to dst. src and dst must not
// overlap. DirectionNone is a valid no-op: it returns 0 without touching
// either buffer.
func Transform(direction Direction, topType *schema.Type, src, dst []byte) (uint32, error) {
	if direction == DirectionNone {
		return 0, nil
	}
	if direction != DirectionV1ToOld && direction != DirectionOldToV1 {
		return 0, status.New(status.InvalidArgs, "transcode: unknown direction %v", direction)
	}
	if topType == nil || topType.Kind != schema.KindStruct {
		return 0, status.New(status.InvalidArgs, "transcode: top_type must describe a struct, got %v", topType)
	}

	wantLayout := schema.V1
	if direction == DirectionOldToV1 {
		wantLayout = schema.Old
	}
	if topType.Layout != wantLayout {
		return 0, status.New(status.InvalidArgs, "transcode: top_type is %s-layout, direction %v needs %s", topType.Layout, direction, wantLayout)
	}
	if topType.Alt == nil {
		return 0, status.New(status.InvalidArgs, "transcode: top_type has no counterpart descriptor")
	}

	if aliases(src, dst) {
		return 0, status.New(status.InvalidArgs, "transcode: source and destination regions must not overlap")
	}
	if len(src) > wire.MaxMessageBytes || len(dst) > wire.MaxMessageBytes {
		return 0, status.New(status.InvalidArgs, "transcode: region exceeds the %d-byte message cap", wire.MaxMessageBytes)
	}

	srcSize := schema.InlineSize(topType, topType.Layout)
	if uint32(len(src)) < srcSize {
		return 0, status.New(status.BadInput, "transcode: source length %d is smaller than top_type's declared size %d", len(src), srcSize)
	}

	altType := topType.Alt
	dstSize := schema.InlineSize(altType, altType.Layout)

	// The top-level record's own inline bytes occupy [0, srcSize) in src
	// and [0, dstSize) in dst, so the first out-of-line byte available to
	// its fields starts immediately after that, not at offset 0.
	start := position.Position{SrcOutOfLine: srcSize, DstOutOfLine: dstSize}

	tc := &transcoder{region: cursor.New(src, dst)}
	if _, err := tc.value(topType, start, dstSize); err != nil {
		return 0, err
	}
	return tc.region.HighWater(), nil
}

// aliases reports whether a and b share a backing array, detected the cheap
// way by comparing the address of their first elements. It does not detect
// partial overlap between two slices into the same larger array at
// different offsets; callers are expected to pass independently allocated
// buffers.
func aliases(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

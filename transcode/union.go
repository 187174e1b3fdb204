package transcode

import (
	"github.com/tengyifei/llcpptransformer/position"
	"github.com/tengyifei/llcpptransformer/schema"
	"github.com/tengyifei/llcpptransformer/status"
	"github.com/tengyifei/llcpptransformer/wire"
)

// xunionToUnion transcodes a v1 extensible union into its old-layout
// static-union counterpart. xunionType is the source descriptor (a
// schema.KindXUnion); its Alt is the destination static union.
func (tc *transcoder) xunionToUnion(xunionType *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	staticUnion := xunionType.Alt

	ordinal, err := tc.region.ReadUint32(pos.SrcInline)
	if err != nil {
		return pos, err
	}
	numBytes, err := tc.region.ReadUint32(pos.SrcInline + 8)
	if err != nil {
		return pos, err
	}
	presence, err := tc.region.ReadUint64(pos.SrcInline + 16)
	if err != nil {
		return pos, err
	}
	if presence != wire.Present {
		return pos, status.New(status.BadInput, "transcode: %s: xunion envelope presence %#x, want PRESENT", xunionType, presence)
	}

	variantIndex := -1
	var variant schema.UnionVariant
	for i, v := range staticUnion.Variants {
		if v.XUnionOrdinal == ordinal {
			variantIndex, variant = i, v
			break
		}
	}
	if variantIndex < 0 {
		return pos, status.New(status.BadInput, "ordinal has no corresponding variant")
	}

	switch staticUnion.DataOffset {
	case 4:
		if err := tc.region.WriteUint32(pos.DstInline, uint32(variantIndex)); err != nil {
			return pos, err
		}
	case 8:
		if err := tc.region.WriteUint64(pos.DstInline, uint64(variantIndex)); err != nil {
			return pos, err
		}
	default:
		return pos, status.New(status.BadState, "transcode: %s: invalid tag width %d", staticUnion, staticUnion.DataOffset)
	}

	payloadOldSize := variant.OldSize
	payloadStart := pos.SrcOutOfLine

	// variant.Type is always recorded in the old layout (see UnionVariant),
	// but this function reads from a v1-encoded source: the bytes at this
	// position are actually laid out however the v1 side represents this
	// payload. A payload that is itself a union only has a v1 encoding
	// here, and so does anything containing one (a vector of unions has a
	// v1 element stride and v1 elements), so dispatch follows the payload's
	// v1 counterpart whenever it has one. Primitives and raw blobs carry no
	// counterpart and are read as they are.
	srcType := variant.Type
	if srcType != nil && srcType.Alt != nil {
		srcType = srcType.Alt
	}

	// The recursion's own out-of-line cursor starts right after the
	// payload's immediate v1 header (variant.V1Size): if the payload is
	// itself a vector or nested union, that's where its own further
	// out-of-line content belongs, not at the end of the whole envelope
	// (num_bytes), which isn't a meaningful position for anything nested
	// inside this payload to allocate from.
	child := position.Position{
		SrcInline:    payloadStart,
		SrcOutOfLine: payloadStart + variant.V1Size,
		DstInline:    pos.DstInline + staticUnion.DataOffset,
		DstOutOfLine: pos.DstOutOfLine,
	}
	next, err := tc.value(srcType, child, payloadOldSize)
	if err != nil {
		return next, err
	}

	// The envelope's own num_bytes, not however far the payload's
	// recursion happened to advance the cursor itself, is authoritative
	// for how much of the source's out-of-line region this variant
	// consumed: a bare primitive or fixed-size payload never touches
	// SrcOutOfLine on its own, even though its envelope still reserved
	// an aligned block for it.
	pos.SrcOutOfLine = payloadStart + numBytes
	pos.DstOutOfLine = next.DstOutOfLine

	if variant.Padding > 0 {
		padStart := pos.DstInline + staticUnion.DataOffset + payloadOldSize
		if err := tc.region.Pad(padStart, variant.Padding); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

// unionToXUnion transcodes a static union into its v1 extensible-union
// counterpart. staticUnion is the source descriptor (a schema.KindUnion);
// its Alt is the destination xunion.
func (tc *transcoder) unionToXUnion(staticUnion *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	var tag uint64
	switch staticUnion.DataOffset {
	case 4:
		v, err := tc.region.ReadUint32(pos.SrcInline)
		if err != nil {
			return pos, err
		}
		tag = uint64(v)
	case 8:
		v, err := tc.region.ReadUint64(pos.SrcInline)
		if err != nil {
			return pos, err
		}
		tag = v
	default:
		return pos, status.New(status.BadState, "transcode: %s: invalid tag width %d", staticUnion, staticUnion.DataOffset)
	}
	if tag >= uint64(len(staticUnion.Variants)) {
		return pos, status.New(status.BadInput, "transcode: %s: tag %d is out of range", staticUnion, tag)
	}
	variant := staticUnion.Variants[tag]

	// num_bytes can't be known before the payload is written: a variant
	// whose payload is itself a vector, string, or nested union carries
	// its own out-of-line allocation beyond its immediate v1 inline size,
	// and the envelope's num_bytes must cover that transitive footprint
	// too. Reserve the payload's own inline span first, recurse, then
	// backfill num_bytes from how far the out-of-line cursor actually
	// moved — the same write-then-backpatch order a real FIDL encoder
	// uses for variable-length envelope contents.
	//
	// num_handles is backfilled the same way: a descriptor alone can't
	// say how many handles a vector or array of handles actually carries
	// (that's a runtime length), so the recursion's own running handle
	// count is sampled before and after instead of asking the type for a
	// static answer.
	handlesBefore := tc.handles
	payloadStart := pos.DstOutOfLine
	child := position.Position{
		SrcInline:    pos.SrcInline + staticUnion.DataOffset,
		SrcOutOfLine: pos.SrcOutOfLine,
		DstInline:    payloadStart,
		DstOutOfLine: payloadStart + variant.V1Size,
	}
	next, err := tc.value(variant.Type, child, variant.V1Size)
	if err != nil {
		return next, err
	}
	numHandles := tc.handles - handlesBefore

	consumed := next.DstOutOfLine - payloadStart
	numBytes := wire.Align(consumed)
	if gap := numBytes - consumed; gap > 0 {
		if err := tc.region.Pad(payloadStart+consumed, gap); err != nil {
			return pos, err
		}
	}

	if err := tc.region.WriteUint32(pos.DstInline, variant.XUnionOrdinal); err != nil {
		return pos, err
	}
	if err := tc.region.Pad(pos.DstInline+4, 4); err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint32(pos.DstInline+8, numBytes); err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint32(pos.DstInline+12, numHandles); err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint64(pos.DstInline+16, wire.Present); err != nil {
		return pos, err
	}

	pos.SrcOutOfLine = next.SrcOutOfLine
	pos.DstOutOfLine = payloadStart + numBytes
	return pos, nil
}

package transcode

import (
	"github.com/tengyifei/llcpptransformer/cursor"
	"github.com/tengyifei/llcpptransformer/position"
	"github.com/tengyifei/llcpptransformer/schema"
	"github.com/tengyifei/llcpptransformer/status"
	"github.com/tengyifei/llcpptransformer/wire"
)

// transcoder holds the single Region a Transform call writes through. Its
// methods recurse over the schema.Type graph rooted at whatever top_type
// Transform was given; which of two union-transform rules applies, and
// which layout a record or array descriptor's Alt points at, falls out of
// the source type's own Kind rather than a direction flag threaded through
// every call — see value for the dispatch.
type transcoder struct {
	region *cursor.Region

	// handles counts every handle slot copied so far. unionToXUnion reads
	// the delta across a variant's own recursion to populate that
	// variant's xunion envelope num_handles field: a vector or array of
	// handles only reveals its true count by being walked, since the
	// descriptor alone only knows the element type, not how many of them
	// a given encoded value has.
	handles uint32
}

// value transcodes one value of type t, currently positioned at pos, into a
// destination region of dstSize bytes. It returns pos with SrcOutOfLine and
// DstOutOfLine advanced by whatever this call (directly or through
// recursion) allocated out-of-line; the returned inline offsets are not
// meaningful to the caller, which tracks its own inline advance using the
// source and destination inline sizes it already knows.
func (tc *transcoder) value(t *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	if t == nil {
		if err := tc.region.Copy(pos.SrcInline, pos.DstInline, dstSize); err != nil {
			return pos, err
		}
		return pos, nil
	}
	switch t.Kind {
	case schema.KindPrimitive, schema.KindEnum, schema.KindBits:
		if err := tc.region.Copy(pos.SrcInline, pos.DstInline, dstSize); err != nil {
			return pos, err
		}
		return pos, nil
	case schema.KindHandle:
		if err := tc.region.Copy(pos.SrcInline, pos.DstInline, dstSize); err != nil {
			return pos, err
		}
		tc.handles++
		return pos, nil
	case schema.KindStruct:
		return tc.record(t, pos, dstSize)
	case schema.KindStructPointer:
		return tc.recordPointer(t, pos)
	case schema.KindArray:
		return tc.array(t, pos, dstSize)
	case schema.KindVector, schema.KindString:
		return tc.vector(t, pos, dstSize)
	case schema.KindUnion:
		return tc.unionToXUnion(t, pos, dstSize)
	case schema.KindXUnion:
		return tc.xunionToUnion(t, pos, dstSize)
	default:
		return pos, status.New(status.BadState, "transcode: %s has no transform rule", t)
	}
}

// record transcodes a struct, walking its fields in declaration order and
// recursing into every field that carries a descriptor. Fields with no
// descriptor (raw primitives, padding, or handle runs collapsed at
// coding-table construction time) are copied verbatim using the exact span
// the field recorded, never a derived offset subtraction.
func (tc *transcoder) record(t *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	dstStart := pos.DstInline

	if len(t.Fields) == 0 {
		if err := tc.region.Copy(pos.SrcInline, pos.DstInline, dstSize); err != nil {
			return pos, err
		}
		return pos, nil
	}

	cur := pos
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Type == nil {
			if err := tc.region.Copy(cur.SrcInline, cur.DstInline, f.Size); err != nil {
				return cur, err
			}
			cur = cur.AdvanceInline(f.Size, f.Size)
			continue
		}

		df := f.Alt
		if df == nil {
			return cur, status.New(status.BadState, "transcode: field of %s has no counterpart", t)
		}
		if cur.DstInline < df.Offset {
			if err := tc.region.Pad(cur.DstInline, df.Offset-cur.DstInline); err != nil {
				return cur, err
			}
		}
		cur.SrcInline = f.Offset
		cur.DstInline = df.Offset

		srcFieldSize := schema.InlineSize(f.Type, t.Layout)
		dstFieldSize := schema.InlineSize(df.Type, t.Layout.Other())

		next, err := tc.value(f.Type, cur, dstFieldSize)
		if err != nil {
			return next, err
		}
		cur.SrcOutOfLine, cur.DstOutOfLine = next.SrcOutOfLine, next.DstOutOfLine
		cur = cur.AdvanceInline(srcFieldSize, dstFieldSize)
	}

	end := dstStart + dstSize
	if cur.DstInline < end {
		if err := tc.region.Pad(cur.DstInline, end-cur.DstInline); err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// recordPointer transcodes an optional record: the 8-byte presence word is
// identical in both layouts and is copied verbatim, and a present pointer
// recurses into the out-of-line region both cursors currently point at.
func (tc *transcoder) recordPointer(t *schema.Type, pos position.Position) (position.Position, error) {
	presence, err := tc.region.ReadUint64(pos.SrcInline)
	if err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint64(pos.DstInline, presence); err != nil {
		return pos, err
	}
	switch presence {
	case wire.Absent:
		return pos, nil
	case wire.Present:
		// fall through
	default:
		return pos, status.New(status.BadInput, "transcode: %s: presence word %#x is neither PRESENT nor ABSENT", t, presence)
	}

	pointee := t.Pointee
	alt := pointee.Alt
	srcSize := schema.InlineSize(pointee, pointee.Layout)
	dstSize := schema.InlineSize(alt, alt.Layout)

	child := pos.EnterOutOfLine(srcSize, dstSize)
	next, err := tc.value(pointee, child, dstSize)
	if err != nil {
		return next, err
	}
	pos.SrcOutOfLine, pos.DstOutOfLine = next.SrcOutOfLine, next.DstOutOfLine
	return pos, nil
}

// array transcodes a fixed-length array inline, delegating the per-element
// walk to elements.
func (tc *transcoder) array(t *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	if t.Elem == nil {
		if err := tc.region.Copy(pos.SrcInline, pos.DstInline, dstSize); err != nil {
			return pos, err
		}
		return pos, nil
	}
	dstArray := t.Alt
	srcStride := t.ElementSize + t.ElementPadding
	dstStride := dstArray.ElementSize + dstArray.ElementPadding
	return tc.elements(t.Elem, pos, t.Count, srcStride, dstStride, dstArray.ElementSize, dstSize)
}

// vector transcodes a vector or string: the 16-byte length/presence header
// is identical in both layouts, and a present vector's elements are walked
// out-of-line by elements, reusing the array rule exactly as a nullable
// vector of no-descriptor bytes when Elem is nil.
func (tc *transcoder) vector(t *schema.Type, pos position.Position, dstSize uint32) (position.Position, error) {
	count, err := tc.region.ReadUint64(pos.SrcInline)
	if err != nil {
		return pos, err
	}
	presence, err := tc.region.ReadUint64(pos.SrcInline + 8)
	if err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint64(pos.DstInline, count); err != nil {
		return pos, err
	}
	if err := tc.region.WriteUint64(pos.DstInline+8, presence); err != nil {
		return pos, err
	}

	switch presence {
	case wire.Absent:
		return pos, nil
	case wire.Present:
		// fall through
	default:
		return pos, status.New(status.BadInput, "transcode: %s: presence word %#x is neither PRESENT nor ABSENT", t, presence)
	}

	dstVec := t.Alt
	srcStride := t.ElementSize + t.ElementPadding
	dstStride := dstVec.ElementSize + dstVec.ElementPadding

	srcArraySize := wire.Align(uint32(count) * srcStride)
	dstArraySize := wire.Align(uint32(count) * dstStride)

	child := pos.EnterOutOfLine(srcArraySize, dstArraySize)
	next, err := tc.elements(t.Elem, child, uint32(count), srcStride, dstStride, dstVec.ElementSize, dstArraySize)
	if err != nil {
		return next, err
	}
	pos.SrcOutOfLine, pos.DstOutOfLine = next.SrcOutOfLine, next.DstOutOfLine
	return pos, nil
}

// elements walks count fixed-stride elements of type elemType starting at
// pos, recursing into each one and zero-padding both the per-element
// trailing gap and the region's own trailing gap up to dstTotalSize.
func (tc *transcoder) elements(elemType *schema.Type, pos position.Position, count, srcStride, dstStride, dstElemSize, dstTotalSize uint32) (position.Position, error) {
	dstStart := pos.DstInline
	cur := pos
	for i := uint32(0); i < count; i++ {
		next, err := tc.value(elemType, cur, dstElemSize)
		if err != nil {
			return next, err
		}
		cur.SrcOutOfLine, cur.DstOutOfLine = next.SrcOutOfLine, next.DstOutOfLine

		if pad := dstStride - dstElemSize; pad > 0 {
			if err := tc.region.Pad(cur.DstInline+dstElemSize, pad); err != nil {
				return cur, err
			}
		}
		cur = cur.AdvanceInline(srcStride, dstStride)
	}
	end := dstStart + dstTotalSize
	if cur.DstInline < end {
		if err := tc.region.Pad(cur.DstInline, end-cur.DstInline); err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// Package position carries the four offsets threaded through every
// recursive call of the transcoding engine. There is no ambient cursor
// state: every call receives a Position by value and returns, via its
// side effects on the cursor, enough information for the caller to compute
// the next one.
package position

// Position tracks the current source inline offset, source out-of-line
// offset, destination inline offset, and destination out-of-line offset.
// Inline offsets point at the byte currently being emitted; out-of-line
// offsets point at the next 8-byte-aligned region available for
// out-of-line payloads in each buffer.
type Position struct {
	SrcInline    uint32
	SrcOutOfLine uint32
	DstInline    uint32
	DstOutOfLine uint32
}

// AdvanceInline returns a copy of p with both inline offsets advanced by
// srcDelta and dstDelta respectively.
func (p Position) AdvanceInline(srcDelta, dstDelta uint32) Position {
	p.SrcInline += srcDelta
	p.DstInline += dstDelta
	return p
}

// AdvanceOutOfLine returns a copy of p with both out-of-line offsets
// advanced by srcDelta and dstDelta respectively.
func (p Position) AdvanceOutOfLine(srcDelta, dstDelta uint32) Position {
	p.SrcOutOfLine += srcDelta
	p.DstOutOfLine += dstDelta
	return p
}

// EnterOutOfLine returns a Position suitable for transcoding the value
// that src/dst's current out-of-line cursors point at: its inline offsets
// become the parent's out-of-line offsets, and its own out-of-line offsets
// start immediately past the region of size srcSize/dstSize about to be
// consumed.
func (p Position) EnterOutOfLine(srcSize, dstSize uint32) Position {
	return Position{
		SrcInline:    p.SrcOutOfLine,
		SrcOutOfLine: p.SrcOutOfLine + srcSize,
		DstInline:    p.DstOutOfLine,
		DstOutOfLine: p.DstOutOfLine + dstSize,
	}
}

// Package cursor provides the byte-region primitives the transcoding engine
// builds on: bounds-checked reads from a fixed source slice, bounds-checked
// copies, zero-fills, and fixed-width writes into a fixed destination
// slice, and a running high-water mark used to report the output length.
//
// Unlike vom's encbuf/decbuf, which grow and stream, a Region wraps two
// slices whose capacity is fixed by the caller up front — the transcoding
// core never allocates a backing store of its own.
package cursor

import (
	"encoding/binary"

	"github.com/tengyifei/llcpptransformer/status"
)

// Region wraps the caller-supplied source and destination byte slices and
// tracks the highest destination offset touched by a write.
type Region struct {
	Src []byte
	Dst []byte

	highWater uint32
}

// New returns a Region over src and dst. It does not copy either slice.
func New(src, dst []byte) *Region {
	return &Region{Src: src, Dst: dst}
}

// HighWater returns the highest destination offset touched by any write so
// far, which callers report as the transcoded message length.
func (r *Region) HighWater() uint32 {
	return r.highWater
}

func (r *Region) touch(end uint32) {
	if end > r.highWater {
		r.highWater = end
	}
}

// ReadUint64 reads a little-endian uint64 from the source at off.
func (r *Region) ReadUint64(off uint32) (uint64, error) {
	if err := r.checkSrcBounds(off, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.Src[off : off+8]), nil
}

// ReadUint32 reads a little-endian uint32 from the source at off.
func (r *Region) ReadUint32(off uint32) (uint32, error) {
	if err := r.checkSrcBounds(off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.Src[off : off+4]), nil
}

// WriteUint64 writes a little-endian uint64 into the destination at off.
func (r *Region) WriteUint64(off uint32, v uint64) error {
	if err := r.checkDstBounds(off, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(r.Dst[off:off+8], v)
	r.touch(off + 8)
	return nil
}

// WriteUint32 writes a little-endian uint32 into the destination at off.
func (r *Region) WriteUint32(off uint32, v uint32) error {
	if err := r.checkDstBounds(off, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(r.Dst[off:off+4], v)
	r.touch(off + 4)
	return nil
}

// Copy copies n bytes from the source at srcOff to the destination at
// dstOff. n == 0 is a no-op.
func (r *Region) Copy(srcOff, dstOff, n uint32) error {
	if n == 0 {
		return nil
	}
	if err := r.checkSrcBounds(srcOff, n); err != nil {
		return err
	}
	if err := r.checkDstBounds(dstOff, n); err != nil {
		return err
	}
	copy(r.Dst[dstOff:dstOff+n], r.Src[srcOff:srcOff+n])
	r.touch(dstOff + n)
	return nil
}

// Pad writes n zero bytes into the destination at dstOff. n == 0 is a
// no-op.
func (r *Region) Pad(dstOff, n uint32) error {
	if n == 0 {
		return nil
	}
	if err := r.checkDstBounds(dstOff, n); err != nil {
		return err
	}
	region := r.Dst[dstOff : dstOff+n]
	for i := range region {
		region[i] = 0
	}
	r.touch(dstOff + n)
	return nil
}

func (r *Region) checkSrcBounds(off, n uint32) error {
	if uint64(off)+uint64(n) > uint64(len(r.Src)) {
		return status.New(status.BadInput, "source region [%d, %d) exceeds source length %d", off, uint64(off)+uint64(n), len(r.Src))
	}
	return nil
}

func (r *Region) checkDstBounds(off, n uint32) error {
	if uint64(off)+uint64(n) > uint64(len(r.Dst)) {
		return status.New(status.BufferTooSmall, "destination region [%d, %d) exceeds destination capacity %d", off, uint64(off)+uint64(n), len(r.Dst))
	}
	return nil
}

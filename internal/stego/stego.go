// Package stego hides one byte sequence inside another by least-significant
// bit embedding: each payload bit occupies the low bit of one cover byte,
// in order, starting at cover byte 0 and most significant bit first.
//
// The message is framed with a 4-byte big-endian length prefix. A container
// always has exactly the cover's length, since embedding flips low bits and
// never grows or shrinks anything, so the hidden channel cannot be detected
// by size comparison. The package operates on raw bytes; it neither knows nor
// cares what the payload deserializes to.
package stego

import (
	"encoding/binary"

	"github.com/phantomkeep/phantomkeep/internal/common"
)

// headerSize is the length prefix in payload bytes.
const headerSize = 4

// bitsPerByte: one payload bit per cover byte, eight cover bytes per
// payload byte.
const bitsPerByte = 8

// Capacity returns the largest payload, in bytes, that a cover of coverLen
// bytes can carry. Negative results are clamped to zero.
func Capacity(coverLen int) int {
	c := coverLen/bitsPerByte - headerSize
	if c < 0 {
		return 0
	}
	return c
}

// Embed writes the length-prefixed payload into the low bits of a copy of
// cover and returns the copy. The cover itself is never mutated. Fails with
// common.ErrInsufficientCoverCapacity when the cover has fewer bytes than
// the framed message has bits.
func Embed(cover, payload []byte) ([]byte, error) {
	need := bitsPerByte * (headerSize + len(payload))
	if len(cover) < need {
		return nil, common.ErrInsufficientCoverCapacity
	}

	container := make([]byte, len(cover))
	copy(container, cover)

	var prefix [headerSize]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))

	writeBits(container, 0, prefix[:])
	writeBits(container, headerSize, payload)
	return container, nil
}

// Extract reads the length prefix from the container's first 32 low bits
// and reconstructs the payload. Every failure mode (container too short to
// hold a prefix, implied payload not fitting in the remaining bytes) is
// the same common.ErrNotPresent, so a corrupted extraction attempt is
// indistinguishable from the absence of any payload.
func Extract(container []byte) ([]byte, error) {
	if len(container) < headerSize*bitsPerByte {
		return nil, common.ErrNotPresent
	}

	prefix := readBits(container, 0, headerSize)
	n := binary.BigEndian.Uint32(prefix)

	need := uint64(bitsPerByte) * (headerSize + uint64(n))
	if need > uint64(len(container)) {
		return nil, common.ErrNotPresent
	}

	return readBits(container, headerSize, int(n)), nil
}

// writeBits places msg's bits, MSB first, into the low bits of dst starting
// at the cover byte corresponding to payload byte offset off.
func writeBits(dst []byte, off int, msg []byte) {
	base := off * bitsPerByte
	for i, b := range msg {
		for bit := 0; bit < bitsPerByte; bit++ {
			v := (b >> (7 - bit)) & 1
			idx := base + i*bitsPerByte + bit
			dst[idx] = dst[idx]&0xfe | v
		}
	}
}

// readBits reconstructs count bytes from the low bits of src starting at
// payload byte offset off.
func readBits(src []byte, off, count int) []byte {
	base := off * bitsPerByte
	out := make([]byte, count)
	for i := range out {
		var b byte
		for bit := 0; bit < bitsPerByte; bit++ {
			b = b<<1 | src[base+i*bitsPerByte+bit]&1
		}
		out[i] = b
	}
	return out
}

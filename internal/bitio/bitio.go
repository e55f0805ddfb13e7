/*
NAME
  bitio.go

DESCRIPTION
  bitio.go provides the MSB-first packed bit-stream reader and writer
  used to parse and emit DCS compressed frames. Codewords are packed
  without byte alignment, so both reader and writer operate on
  arbitrary bit widths from 1 to 24 (reader) or 1 to 32 (writer).

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitio provides MSB-first packed bit-stream reading and
// writing over a byte buffer, as used by the DCS frame codec.
package bitio

// Reader is a (byte-pointer, lookahead-buffer, bit-count) triple
// providing MSB-first Peek/Consume over a byte slice, per the DCS "bit
// pointer" data model. Peek may read bytes past the logical end of the
// stream as zero padding, since Huffman decode occasionally needs to
// peek a maximal codeword length near the final frame; callers that
// care should check Pos/Len.
type Reader struct {
	data  []byte
	pos   int    // byte pointer: index of next byte to load into buf.
	buf   uint32 // lookahead buffer, MSB-aligned.
	nBits int    // number of valid bits currently in buf.
}

// NewReader returns a Reader over data starting at the given byte
// offset.
func NewReader(data []byte, byteOffset int) *Reader {
	return &Reader{data: data, pos: byteOffset}
}

// Pos returns the current byte pointer (the index of the next byte
// that has not yet been loaded into the lookahead buffer).
func (r *Reader) Pos() int { return r.pos }

// SetPos resets the reader to begin at the given byte offset with an
// empty lookahead buffer.
func (r *Reader) SetPos(byteOffset int) {
	r.pos = byteOffset
	r.buf = 0
	r.nBits = 0
}

// fill ensures at least n bits are available in buf, reading
// additional bytes from data as needed without consuming them. Bytes
// past the end of data are treated as zero.
func (r *Reader) fill(n int) {
	for r.nBits <= n {
		var b byte
		if r.pos < len(r.data) {
			b = r.data[r.pos]
		}
		r.buf |= uint32(b) << uint(24-r.nBits)
		r.pos++
		r.nBits += 8
	}
}

// Peek returns the next n bits (1 <= n <= 24) without advancing past
// them; a subsequent Consume(n) of the same or smaller width advances
// the stream.
func (r *Reader) Peek(n int) uint32 {
	r.fill(n)
	return r.buf >> uint(32-n)
}

// Consume advances the stream by n bits, which must already have been
// made available by a prior Peek (or Peek(n) itself, since Consume
// does not fill).
func (r *Reader) Consume(n int) {
	r.nBits -= n
	r.buf <<= uint(n)
}

// Get peeks and consumes n bits (1 <= n <= 24) in one step, returning
// the unsigned value.
func (r *Reader) Get(n int) uint32 {
	v := r.Peek(n)
	r.Consume(n)
	return v
}

// GetSigned peeks and consumes n bits, sign-extending the result as a
// two's-complement value of that width.
func (r *Reader) GetSigned(n int) int32 {
	v := r.Get(n)
	shift := uint(32 - n)
	return int32(v<<shift) >> shift
}

// BytePos reports the logical bit-pointer position of the reader in
// (byte, bitOffset) form, where bitOffset is the number of bits
// already consumed from the byte at that offset. It is used by
// stream byte-alignment checks.
func (r *Reader) BytePos() (byteOffset, bitOffset int) {
	consumedBits := r.pos*8 - r.nBits
	return consumedBits / 8, consumedBits % 8
}

// Writer accumulates bits MSB-first into an output byte buffer,
// flushing whole bytes as they fill and zero-padding the final
// partial byte on Close.
type Writer struct {
	out   []byte
	acc   uint64
	nBits uint
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// WriteBits appends the low n bits (1 <= n <= 32) of v, MSB-first.
func (w *Writer) WriteBits(v uint32, n int) {
	mask := uint64(1)<<uint(n) - 1
	w.acc = (w.acc << uint(n)) | (uint64(v) & mask)
	w.nBits += uint(n)
	for w.nBits >= 8 {
		w.nBits -= 8
		w.out = append(w.out, byte(w.acc>>w.nBits))
	}
}

// WriteSigned appends the low n bits of a two's-complement value.
func (w *Writer) WriteSigned(v int32, n int) {
	w.WriteBits(uint32(v), n)
}

// Len returns the number of whole bytes flushed so far (excludes any
// pending partial byte).
func (w *Writer) Len() int { return len(w.out) }

// BitLen returns the total number of bits written so far, including
// any pending partial byte.
func (w *Writer) BitLen() int { return len(w.out)*8 + int(w.nBits) }

// Bytes returns the flushed bytes without closing the writer; any
// pending partial byte is not included.
func (w *Writer) Bytes() []byte { return w.out }

// Close flushes any pending partial byte (zero-padded in the
// low-order bits) and returns the complete output.
func (w *Writer) Close() []byte {
	if w.nBits > 0 {
		w.out = append(w.out, byte(w.acc<<(8-w.nBits)))
		w.nBits = 0
		w.acc = 0
	}
	return w.out
}

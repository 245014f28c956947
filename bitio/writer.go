/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bitio provides a minimal in-memory bit writer/reader used by
// the entropy package to pack variable-length Huffman codes into bytes.
//
// Adapted from bitstream/DefaultInputBitStream.go's cached-word
// buffering technique (a uint64 accumulator plus a count of unconsumed
// bits), but reworked from a stream-oriented io.Reader/io.Writer pipe
// into a plain []byte in, []byte out API: the compressed buffer this
// core produces is a single in-memory byte slice, not a stream, so there
// is no Close()/Written() lifecycle to model.
package bitio

import "fmt"

// Writer accumulates bits most-significant-bit first into a byte slice.
type Writer struct {
	out     []byte
	current uint64
	nbits   uint // bits held in current, in [0..7]; full bytes are flushed eagerly
	written uint64
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits writes the low 'count' bits of v, most-significant first.
// Panics if count is outside [1..57]: an invalid bit count is a
// programming error, not a runtime condition.
func (w *Writer) WriteBits(v uint64, count uint) {
	if count == 0 || count > 57 {
		panic(fmt.Errorf("bitio: invalid bit count %d (must be in [1..57])", count))
	}

	w.current = (w.current << count) | (v & (uint64(1)<<count - 1))
	w.nbits += count
	w.written += uint64(count)

	for w.nbits >= 8 {
		w.nbits -= 8
		w.out = append(w.out, byte(w.current>>w.nbits))
	}
}

// WriteBit writes a single bit (0 or 1).
func (w *Writer) WriteBit(bit int) {
	w.WriteBits(uint64(bit&1), 1)
}

// BitsWritten returns the total number of bits written so far, including
// any not yet byte-aligned.
func (w *Writer) BitsWritten() uint64 {
	return w.written
}

// Bytes flushes any partial trailing byte (zero-padded in the low bits)
// and returns the accumulated bytes. Safe to call more than once; it
// does not reset the writer.
func (w *Writer) Bytes() []byte {
	if w.nbits == 0 {
		return w.out
	}

	pad := 8 - w.nbits
	last := byte(w.current<<pad) & 0xFF
	return append(w.out, last)
}

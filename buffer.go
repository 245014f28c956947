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

package sz

import (
	"encoding/binary"
	"math"

	"github.com/cds-lab/szgo/ndrange"
)

// Buffer is a self-describing, cursor-tracking byte buffer: the write
// side grows a slice and the read side advances a position while keeping
// track of how many bytes remain, so every component's Save/Load can be
// handed the same buffer back to back with no separately recorded
// lengths.
type Buffer struct {
	data []byte // write side: accumulated bytes; read side: full backing slice
	pos  int    // read side: next unread byte
}

// NewWriteBuffer creates an empty Buffer for serialization, optionally
// pre-sized to avoid reallocation (the driver sizes this to an upper
// bound on the worst-case compressed size).
func NewWriteBuffer(capacityHint int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacityHint)}
}

// NewReadBuffer wraps an existing byte slice for sequential deserialization.
func NewReadBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the accumulated bytes written so far (or the full backing
// slice on the read side).
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Remaining returns the number of unread bytes on the read side.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// ensure checks that n bytes are available to read. An exactly-sized
// remaining field is valid, not an overflow: the bound is n <=
// remaining, not n < remaining.
func (b *Buffer) ensure(n int) error {
	if n < 0 || n > b.Remaining() {
		return ndrange.NewFatalError("buffer underflow: insufficient bytes remaining", ndrange.ErrBufferUnderflow)
	}
	return nil
}

// WriteUint32 appends a little-endian uint32.
func (b *Buffer) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// WriteUint64 appends a little-endian uint64.
func (b *Buffer) WriteUint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// WriteInt64 appends a little-endian int64.
func (b *Buffer) WriteInt64(v int64) {
	b.WriteUint64(uint64(v))
}

// WriteFloat64 appends a little-endian IEEE-754 double.
func (b *Buffer) WriteFloat64(v float64) {
	b.WriteUint64(math.Float64bits(v))
}

// WriteBytes appends raw bytes verbatim.
func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}

// ReadUint32 consumes the next little-endian uint32.
func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.ensure(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4
	return v, nil
}

// ReadUint64 consumes the next little-endian uint64.
func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.ensure(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(b.data[b.pos : b.pos+8])
	b.pos += 8
	return v, nil
}

// ReadInt64 consumes the next little-endian int64.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadFloat64 consumes the next little-endian IEEE-754 double.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytes consumes and returns the next n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.ensure(n); err != nil {
		return nil, err
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

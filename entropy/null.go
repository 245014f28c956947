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

package entropy

import (
	"fmt"

	sz "github.com/cds-lab/szgo"
)

// Null is a passthrough Encoder: it zig-zag/varint encodes each index
// without building any frequency table or doing any actual entropy
// coding. Useful as an always-available baseline and for round-trip
// tests that don't care about compression ratio.
type Null struct{}

// NewNull creates a Null encoder.
func NewNull() *Null {
	return &Null{}
}

// PreprocessEncode is a no-op: Null needs no frequency table.
func (n *Null) PreprocessEncode(indices []int32, alphabetSize int) error { return nil }

// PostprocessEncode is a no-op.
func (n *Null) PostprocessEncode() {}

// PostprocessDecode is a no-op.
func (n *Null) PostprocessDecode() {}

// Save persists nothing: Null carries no state between encode and decode.
func (n *Null) Save(buf *sz.Buffer) error { return nil }

// Load reads back nothing.
func (n *Null) Load(buf *sz.Buffer) error { return nil }

// Encode appends a 4-byte index count followed by each index zig-zag
// varint encoded.
func (n *Null) Encode(indices []int32, buf *sz.Buffer) error {
	buf.WriteUint32(uint32(len(indices)))

	var tmp []byte
	for _, idx := range indices {
		tmp = appendVarint(tmp[:0], zigzag(idx))
		buf.WriteBytes(tmp)
	}

	return nil
}

// Decode reads back exactly count indices.
func (n *Null) Decode(buf *sz.Buffer, count int) ([]int32, error) {
	storedCount, err := buf.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(storedCount) != count {
		return nil, fmt.Errorf("entropy: expected %d indices, bitstream holds %d", count, storedCount)
	}

	out := make([]int32, count)
	for i := 0; i < count; i++ {
		u, err := readVarint(buf)
		if err != nil {
			return nil, err
		}
		out[i] = unzigzag(u)
	}

	return out, nil
}

// zigzag maps a signed index to an unsigned value where small-magnitude
// indices (the common case for a well-bounded quantizer) produce small
// varints: 0, -1, 1, -2, 2, ... -> 0, 1, 2, 3, 4, ...
func zigzag(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

func unzigzag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// appendVarint appends the standard LEB128 encoding of v to dst.
func appendVarint(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// readVarint reads one LEB128-encoded uint32 from buf.
func readVarint(buf *sz.Buffer) (uint32, error) {
	var result uint32
	var shift uint

	for {
		b, err := buf.ReadBytes(1)
		if err != nil {
			return 0, err
		}

		result |= uint32(b[0]&0x7F) << shift
		if b[0]&0x80 == 0 {
			return result, nil
		}

		shift += 7
		if shift >= 32 {
			return 0, fmt.Errorf("entropy: varint too long")
		}
	}
}

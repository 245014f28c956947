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
	"github.com/cds-lab/szgo/bitio"
)

// Huffman is a canonical Huffman Encoder over a caller-supplied alphabet
// size, generalized to the arbitrary integer alphabet a quantizer
// produces rather than a fixed 256-byte-symbol alphabet. Symbols are
// centered on zero via toSymbol/fromSymbol so the typical near-zero
// index distribution a quantizer produces maps to a compact, low-valued
// symbol range.
//
// maxCodeLength caps how deep the Moffat-Katajainen tree is allowed to
// grow; alphabets this domain sees (4*radius, usually well under a few
// thousand) never approach it, but bitio.Writer.WriteBits rejects counts
// above 57 so the cap exists to fail fast instead of panicking deep
// inside Encode.
const maxCodeLength = 57

// Huffman implements sz.Encoder.
type Huffman struct {
	alphabetSize int
	lengths      []byte
	codes        []uint32
}

// NewHuffman creates a Huffman encoder with no tables loaded; call
// PreprocessEncode before Encode, or Load before Decode.
func NewHuffman() *Huffman {
	return &Huffman{}
}

// PreprocessEncode builds the canonical code table from the frequency
// distribution of indices over [-alphabetSize/2, alphabetSize/2).
func (h *Huffman) PreprocessEncode(indices []int32, alphabetSize int) error {
	if alphabetSize <= 0 {
		return fmt.Errorf("entropy: alphabet size must be positive, got %d", alphabetSize)
	}

	h.alphabetSize = alphabetSize
	freqs := make([]int, alphabetSize)
	for _, idx := range indices {
		freqs[toSymbol(idx, alphabetSize)]++
	}

	lengths, maxLen := computeCodeLengths(freqs)
	if maxLen > maxCodeLength {
		return fmt.Errorf("entropy: canonical code length %d exceeds the %d-bit packing limit", maxLen, maxCodeLength)
	}

	h.lengths = lengths
	h.codes = canonicalCodes(lengths)
	return nil
}

// PostprocessEncode is a no-op: the code tables stay in place after
// encoding.
func (h *Huffman) PostprocessEncode() {}

// PostprocessDecode is a no-op: Decode holds no resources beyond the
// tables Load already populated.
func (h *Huffman) PostprocessDecode() {}

// Save writes the alphabet size followed by one length byte per symbol.
// The canonical codes themselves are never stored: Load rebuilds them
// from the lengths alone, exactly as canonical Huffman coding intends.
func (h *Huffman) Save(buf *sz.Buffer) error {
	buf.WriteUint32(uint32(h.alphabetSize))
	buf.WriteBytes(h.lengths)
	return nil
}

// Load reads back the table Save wrote and rebuilds the canonical codes.
func (h *Huffman) Load(buf *sz.Buffer) error {
	n, err := buf.ReadUint32()
	if err != nil {
		return err
	}

	lengths, err := buf.ReadBytes(int(n))
	if err != nil {
		return err
	}

	h.alphabetSize = int(n)
	h.lengths = append([]byte(nil), lengths...)
	h.codes = canonicalCodes(h.lengths)
	return nil
}

// Encode appends a 4-byte index count, a 4-byte packed byte length, and
// then the packed bitstream for indices to buf.
func (h *Huffman) Encode(indices []int32, buf *sz.Buffer) error {
	buf.WriteUint32(uint32(len(indices)))

	w := bitio.NewWriter()
	for _, idx := range indices {
		sym := toSymbol(idx, h.alphabetSize)
		length := h.lengths[sym]
		if length == 0 {
			return fmt.Errorf("entropy: symbol %d has no assigned code", sym)
		}
		w.WriteBits(uint64(h.codes[sym]), uint(length))
	}

	packed := w.Bytes()
	buf.WriteUint32(uint32(len(packed)))
	buf.WriteBytes(packed)
	return nil
}

// Decode reads back exactly count indices.
func (h *Huffman) Decode(buf *sz.Buffer, count int) ([]int32, error) {
	storedCount, err := buf.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(storedCount) != count {
		return nil, fmt.Errorf("entropy: expected %d indices, bitstream holds %d", count, storedCount)
	}

	packedLen, err := buf.ReadUint32()
	if err != nil {
		return nil, err
	}

	packed, err := buf.ReadBytes(int(packedLen))
	if err != nil {
		return nil, err
	}

	tree := buildDecodeTree(h.lengths, h.codes)
	r := bitio.NewReader(packed)
	out := make([]int32, count)

	for i := 0; i < count; i++ {
		sym := tree.decodeOne(r)
		out[i] = fromSymbol(sym, h.alphabetSize)
	}

	return out, nil
}

// decodeNode is a bit-indexed binary trie over canonical codes, built
// once per Decode call from the (length, code) table. Small alphabets
// make this cheap; a bit-serial walk avoids needing the max code length
// up front the way a direct lookup table would.
type decodeNode struct {
	sym       int
	isLeaf    bool
	zero, one *decodeNode
}

func buildDecodeTree(lengths []byte, codes []uint32) *decodeNode {
	root := &decodeNode{}

	for sym, length := range lengths {
		if length == 0 {
			continue
		}

		node := root
		code := codes[sym]

		for b := int(length) - 1; b >= 0; b-- {
			bit := (code >> uint(b)) & 1
			var next **decodeNode
			if bit == 0 {
				next = &node.zero
			} else {
				next = &node.one
			}
			if *next == nil {
				*next = &decodeNode{}
			}
			node = *next
		}

		node.isLeaf = true
		node.sym = sym
	}

	return root
}

func (n *decodeNode) decodeOne(r *bitio.Reader) int {
	node := n
	for !node.isLeaf {
		if r.ReadBit() == 0 {
			node = node.zero
		} else {
			node = node.one
		}
		if node == nil {
			panic(sz.NewFatalError("entropy: invalid Huffman code in bitstream", sz.ErrUnknown))
		}
	}
	return node.sym
}

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

import "github.com/cds-lab/szgo/ndrange"

// Predictor estimates the value of the element under an iterator from
// already-reconstructed neighbors reachable through the iterator's
// Neighbor look-back. Implementations are polymorphic over this
// capability set; the core never inspects them beyond it.
type Predictor[T Float] interface {
	// PrecompressData brackets the whole-array compression pass.
	PrecompressData(iter *ndrange.Iterator[T])
	// PostcompressData closes the whole-array compression pass.
	PostcompressData(iter *ndrange.Iterator[T])
	// PrecompressBlock brackets a single block's compression.
	PrecompressBlock(block *ndrange.Range[T])
	// PostcompressBlock closes a single block's compression.
	PostcompressBlock(block *ndrange.Range[T])

	// PredecompressData/PredecompressBlock/PostdecompressData/
	// PostdecompressBlock mirror the compress-side brackets during
	// decompression.
	PredecompressData(iter *ndrange.Iterator[T])
	PostdecompressData(iter *ndrange.Iterator[T])
	PredecompressBlock(block *ndrange.Range[T])
	PostdecompressBlock(block *ndrange.Range[T])

	// Predict returns a predicted value for the element at iter, using
	// only already-visited (already-reconstructed) neighbors reachable
	// through iter.Neighbor.
	Predict(iter *ndrange.Iterator[T]) T

	// Save serializes internal state to buf.
	Save(buf *Buffer) error
	// Load deserializes internal state from buf.
	Load(buf *Buffer) error
}

// Quantizer maps a (true value, predicted value) pair to a signed index
// under an absolute error bound, with a matching inverse.
type Quantizer[T Float] interface {
	PrecompressData()
	PostcompressData()
	PrecompressBlock()
	PostcompressBlock()

	PredecompressData()
	PostdecompressData()
	PredecompressBlock()
	PostdecompressBlock()

	// QuantizeAndOverwrite computes a signed index such that
	// Recover(predicted, idx) equals the reconstructed value, writes
	// that reconstructed value back through elem, and returns idx.
	QuantizeAndOverwrite(elem *T, predicted T) int32

	// Recover is the decoder-side inverse of QuantizeAndOverwrite.
	Recover(predicted T, idx int32) T

	// GetRadius returns the half-width of the expected index range,
	// used to pre-size the entropy alphabet.
	GetRadius() int

	Save(buf *Buffer) error
	Load(buf *Buffer) error
}

// Encoder compresses a bounded-alphabet sequence of signed indices into a
// shorter bitstream and reverses the process.
type Encoder interface {
	// PreprocessEncode builds any frequency/code tables needed to encode
	// indices, given a safety-margin alphabet size (conventionally
	// 4*radius).
	PreprocessEncode(indices []int32, alphabetSize int) error
	// PostprocessEncode releases any resources acquired by
	// PreprocessEncode/Encode.
	PostprocessEncode()
	// PostprocessDecode releases any resources acquired by Decode.
	PostprocessDecode()

	// Save persists encode-side tables to buf.
	Save(buf *Buffer) error
	// Load restores tables from buf.
	Load(buf *Buffer) error

	// Encode appends the compressed bitstream for indices to buf.
	Encode(indices []int32, buf *Buffer) error
	// Decode reads exactly count indices back from buf.
	Decode(buf *Buffer, count int) ([]int32, error)
}

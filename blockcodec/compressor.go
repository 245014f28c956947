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

package blockcodec

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/ndrange"
)

// Compress runs the predict-quantize-entropy-code pipeline over data
// (shape elements, row-major), returning an owned compressed buffer.
//
// The absolute error bound is not a parameter here: its interpretation
// is delegated entirely to the Quantizer component bound at Build time,
// so the driver never inspects it directly.
func (c *Codec[T]) Compress(data []T, shape []int) ([]byte, error) {
	o := c.opts

	if len(shape) != o.dims {
		panic(sz.NewFatalError("blockcodec: shape arity does not match the codec's configured dimensionality", sz.ErrShapeMismatch))
	}

	p := productOf(shape)
	if len(data) != p {
		panic(sz.NewFatalError("blockcodec: data length does not match the product of shape", sz.ErrShapeMismatch))
	}

	// Copy the input into a working buffer that will be mutated in
	// place to hold reconstructions, so every later prediction sees
	// exactly what the decoder will see.
	working := append([]T(nil), data...)

	interRange := ndrange.NewRange(working, shape, o.blockSize, 0)
	intraRange := ndrange.NewRange(working, shape, 1, 0)

	indices := make([]int32, p)
	count := 0

	blockGridDims := interRange.Dimensions()
	numBlocks := productOf(blockGridDims)

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtCompressionStart, -1, int64(p), 0))

	interBegin := interRange.Begin()
	o.predictor.PrecompressData(interBegin)
	o.quantizer.PrecompressData()

	blockID := 0
	for blockIter := interRange.Begin(); !blockIter.Done(); blockIter.Next() {
		seatIntraBlock(intraRange, shape, o.blockSize, blockGridDims, blockIter)

		o.predictor.PrecompressBlock(intraRange)
		o.quantizer.PrecompressBlock()

		sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtBlockStart, blockID, 0, 0))

		for elemIter := intraRange.Begin(); !elemIter.Done(); elemIter.Next() {
			predicted := o.predictor.Predict(elemIter)
			indices[count] = o.quantizer.QuantizeAndOverwrite(elemIter.Elem(), predicted)
			count++
		}

		o.predictor.PostcompressBlock(intraRange)
		o.quantizer.PostcompressBlock()

		sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtBlockEnd, blockID, 0, 0))
		blockID++
	}

	o.predictor.PostcompressData(interBegin)
	o.quantizer.PostcompressData()

	if blockID != numBlocks {
		panic(sz.NewFatalError("blockcodec: block grid traversal visited an unexpected number of blocks", sz.ErrUnknown))
	}
	if count != p {
		panic(sz.NewFatalError("blockcodec: intra-block traversal visited an unexpected number of elements", sz.ErrUnknown))
	}

	// Serialize header, component state, and the encoded index stream,
	// in a fixed order so readHeader/Load can reverse it deterministically.
	buf := sz.NewWriteBuffer(2 * p * sizeOf[T]())
	writeHeader(buf, shape, o.blockSize)

	if err := o.predictor.Save(buf); err != nil {
		return nil, errors.Wrap(err, "blockcodec: saving predictor state")
	}
	if err := o.quantizer.Save(buf); err != nil {
		return nil, errors.Wrap(err, "blockcodec: saving quantizer state")
	}

	radius := o.quantizer.GetRadius()
	alphabetSize := 4 * radius

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtBeforeEntropy, -1, int64(count), 0))

	if err := o.encoder.PreprocessEncode(indices, alphabetSize); err != nil {
		return nil, errors.Wrap(err, "blockcodec: preprocessing entropy encoder")
	}
	if err := o.encoder.Save(buf); err != nil {
		return nil, errors.Wrap(err, "blockcodec: saving encoder tables")
	}
	if err := o.encoder.Encode(indices, buf); err != nil {
		return nil, errors.Wrap(err, "blockcodec: entropy encoding index stream")
	}
	o.encoder.PostprocessEncode()

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtAfterEntropy, -1, int64(len(buf.Bytes())), 0))

	digest := xxhash.Sum64(buf.Bytes())
	buf.WriteUint64(digest)

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtCompressionEnd, -1, int64(len(buf.Bytes())), digest))

	return buf.Bytes(), nil
}

// sizeOf returns sizeof(T) in bytes for the two Float instantiations the
// core supports, used only to size the output buffer's capacity hint.
func sizeOf[T ndrange.Float]() int {
	var v T
	switch any(v).(type) {
	case float32:
		return 4
	default:
		return 8
	}
}

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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/ndrange"
)

// Decompress is the exact inverse of Compress. It returns the
// reconstructed array together with the shape it was written with
// (decoded from the buffer's header, not supplied by the caller — the
// shape is part of the wire format, not the call).
func (c *Codec[T]) Decompress(buf []byte) ([]T, []int, error) {
	o := c.opts

	digestSize := 8
	if len(buf) < digestSize {
		return nil, nil, sz.NewFatalError("blockcodec: buffer underflow: shorter than the trailing digest field", sz.ErrBufferUnderflow)
	}

	body := buf[:len(buf)-digestSize]
	storedDigest := binary.LittleEndian.Uint64(buf[len(buf)-digestSize:])

	if got := xxhash.Sum64(body); got != storedDigest {
		return nil, nil, sz.NewFatalError("blockcodec: compressed buffer failed its integrity digest check", sz.ErrUnknown)
	}

	rb := sz.NewReadBuffer(body)

	shape, blockSize, err := readHeader(rb, o.dims)
	if err != nil {
		return nil, nil, err
	}

	p := productOf(shape)

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtDecompressionStart, -1, int64(p), 0))

	if err := o.predictor.Load(rb); err != nil {
		return nil, nil, errors.Wrap(err, "blockcodec: loading predictor state")
	}
	if err := o.quantizer.Load(rb); err != nil {
		return nil, nil, errors.Wrap(err, "blockcodec: loading quantizer state")
	}
	if err := o.encoder.Load(rb); err != nil {
		return nil, nil, errors.Wrap(err, "blockcodec: loading encoder tables")
	}

	indices, err := o.encoder.Decode(rb, p)
	if err != nil {
		return nil, nil, errors.Wrap(err, "blockcodec: entropy decoding index stream")
	}
	o.encoder.PostprocessDecode()

	// Allocate the output array (zero-initialized is fine, every cell
	// is written) and build ranges over it exactly as Compress does
	// over its working buffer.
	out := make([]T, p)
	interRange := ndrange.NewRange(out, shape, blockSize, 0)
	intraRange := ndrange.NewRange(out, shape, 1, 0)

	blockGridDims := interRange.Dimensions()

	interBegin := interRange.Begin()
	o.predictor.PredecompressData(interBegin)
	o.quantizer.PredecompressData()

	count := 0
	blockID := 0
	for blockIter := interRange.Begin(); !blockIter.Done(); blockIter.Next() {
		seatIntraBlock(intraRange, shape, blockSize, blockGridDims, blockIter)

		o.predictor.PredecompressBlock(intraRange)
		o.quantizer.PredecompressBlock()

		sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtBlockStart, blockID, 0, 0))

		for elemIter := intraRange.Begin(); !elemIter.Done(); elemIter.Next() {
			predicted := o.predictor.Predict(elemIter)
			elemIter.Set(o.quantizer.Recover(predicted, indices[count]))
			count++
		}

		o.predictor.PostdecompressBlock(intraRange)
		o.quantizer.PostdecompressBlock()

		sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtBlockEnd, blockID, 0, 0))
		blockID++
	}

	o.predictor.PostdecompressData(interBegin)
	o.quantizer.PostdecompressData()

	if count != p {
		return nil, nil, sz.NewFatalError("blockcodec: intra-block traversal during decompression visited an unexpected number of elements", sz.ErrUnknown)
	}

	sz.NotifyListeners(o.listeners, sz.NewEvent(sz.EvtDecompressionEnd, -1, int64(p), storedDigest))

	return out, shape, nil
}

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
	"github.com/pkg/errors"

	sz "github.com/cds-lab/szgo"
)

// bitstreamType and formatVersion are the magic/version prefix that
// frames the on-wire layout: a 32-bit ASCII tag followed by a format
// version, so a reader can fail fast on a foreign or incompatible
// buffer before trusting anything else in it.
const (
	bitstreamType uint32 = 0x53_5A_47_4F // "SZGO"
	formatVersion uint32 = 1
)

// writeHeader appends the magic/version prefix, the global shape, and
// the block size, in that fixed order.
func writeHeader(buf *sz.Buffer, shape []int, blockSize int) {
	buf.WriteUint32(bitstreamType)
	buf.WriteUint32(formatVersion)

	for _, d := range shape {
		buf.WriteInt64(int64(d))
	}

	buf.WriteUint32(uint32(blockSize))
}

// readHeader reads back what writeHeader wrote, given the dimension
// count n the caller's builder was configured with: the shape field
// has no length prefix of its own, so the reader must already know how
// many dimension values to read.
func readHeader(buf *sz.Buffer, n int) (shape []int, blockSize int, err error) {
	magic, err := buf.ReadUint32()
	if err != nil {
		return nil, 0, errors.Wrap(err, "blockcodec: reading bitstream type")
	}
	if magic != bitstreamType {
		return nil, 0, sz.NewFatalError("blockcodec: not an szgo compressed buffer", sz.ErrUnknown)
	}

	version, err := buf.ReadUint32()
	if err != nil {
		return nil, 0, errors.Wrap(err, "blockcodec: reading format version")
	}
	if version != formatVersion {
		return nil, 0, sz.NewFatalError("blockcodec: unsupported format version", sz.ErrUnknown)
	}

	shape = make([]int, n)
	for i := range shape {
		d, err := buf.ReadInt64()
		if err != nil {
			return nil, 0, errors.Wrap(err, "blockcodec: reading global shape")
		}
		shape[i] = int(d)
	}

	b, err := buf.ReadUint32()
	if err != nil {
		return nil, 0, errors.Wrap(err, "blockcodec: reading block size")
	}

	return shape, int(b), nil
}

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

import "github.com/cds-lab/szgo/ndrange"

// blockExtents computes, for the block at blockIdx (the inter-block
// range's current per-axis logical index), the per-axis intra-block
// extent: B on every axis except where blockIdx sits in the last grid
// position along that axis, where the extent truncates to the
// boundary remainder.
func blockExtents(shape []int, blockSize int, blockGridDims, blockIdx []int) []int {
	extents := make([]int, len(shape))
	for i := range extents {
		if blockIdx[i] == blockGridDims[i]-1 {
			extents[i] = shape[i] - blockIdx[i]*blockSize
		} else {
			extents[i] = blockSize
		}
	}
	return extents
}

// seatIntraBlock reconfigures intra, the reusable intra-block range, to
// cover the block at blockIter's current position: it sets the local
// dimensions to the (possibly truncated) extents, resets the
// start/end offsets to the block's linear offset, and records which
// axes this block starts at the global array origin on.
func seatIntraBlock[T ndrange.Float](intra *ndrange.Range[T], shape []int, blockSize int, blockGridDims []int, blockIter *ndrange.Iterator[T]) {
	idx := blockIter.Index()
	intra.SetDimensions(blockExtents(shape, blockSize, blockGridDims, idx))
	intra.SetOffsets(blockIter.Offset())
	intra.SetStartingPosition(idx)
}

// productOf multiplies every entry of dims together (the total element
// or block count for a shape/grid).
func productOf(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

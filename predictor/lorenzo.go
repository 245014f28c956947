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

package predictor

import (
	"math/bits"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/ndrange"
)

// lorenzoCorner is one term of the inclusion-exclusion sum: a per-axis
// back-offset vector (each axis either 0 or 1 elements back) together
// with its signed contribution.
type lorenzoCorner struct {
	offsets []int
	sign    float64
}

// lorenzoCorners enumerates the 2^n-1 nonzero corners of the unit
// hypercube {0,1}^n, each signed (-1)^(popcount+1), the standard
// N-dimensional generalization of the first-order Lorenzo predictor:
// predict(x) = sum over nonempty subsets S of axes of
// (-1)^(|S|+1) * neighbor(1 on axes in S, 0 elsewhere).
// For n=1 this is just neighbor({1}); for n=2 it is the familiar
// left + up - upleft predictor.
func lorenzoCorners(n int) []lorenzoCorner {
	corners := make([]lorenzoCorner, 0, (1<<n)-1)

	for mask := 1; mask < (1 << n); mask++ {
		offsets := make([]int, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				offsets[i] = 1
			}
		}

		sign := 1.0
		if bits.OnesCount(uint(mask))%2 == 0 {
			sign = -1.0
		}

		corners = append(corners, lorenzoCorner{offsets: offsets, sign: sign})
	}

	return corners
}

// Lorenzo is a first-order Lorenzo predictor: it estimates the current
// element from the 2^n-1 already-reconstructed neighbors forming the
// unit hypercube behind it, via inclusion-exclusion. Neighbors are read
// through Iterator.Neighbor in global coordinates, so at a block's
// leading edge they come from previously visited blocks; only at the
// global array origin do they read as zero.
type Lorenzo[T sz.Float] struct {
	corners []lorenzoCorner
}

// NewLorenzo creates a Lorenzo predictor. The corner table is built
// lazily from the first block's dimensionality, since the predictor
// itself is not told N up front.
func NewLorenzo[T sz.Float]() *Lorenzo[T] {
	return &Lorenzo[T]{}
}

func (p *Lorenzo[T]) PrecompressData(iter *ndrange.Iterator[T]) {}
func (p *Lorenzo[T]) PostcompressData(iter *ndrange.Iterator[T]) {}

// PrecompressBlock builds the corner table for this block's
// dimensionality, if not already built. The table only depends on N, not
// on block extents, so it is built once and reused across blocks.
func (p *Lorenzo[T]) PrecompressBlock(block *ndrange.Range[T]) {
	p.ensureCorners(block.N())
}

func (p *Lorenzo[T]) PostcompressBlock(block *ndrange.Range[T]) {}

func (p *Lorenzo[T]) PredecompressData(iter *ndrange.Iterator[T])  {}
func (p *Lorenzo[T]) PostdecompressData(iter *ndrange.Iterator[T]) {}

func (p *Lorenzo[T]) PredecompressBlock(block *ndrange.Range[T]) {
	p.ensureCorners(block.N())
}

func (p *Lorenzo[T]) PostdecompressBlock(block *ndrange.Range[T]) {}

func (p *Lorenzo[T]) ensureCorners(n int) {
	if p.corners == nil {
		p.corners = lorenzoCorners(n)
	}
}

// Predict sums the signed hypercube-corner neighbors reachable from iter.
// Corners that fall outside the global array (per Iterator.Neighbor's
// origin policy) contribute zero, the same way the original's boundary
// handling degrades gracefully at the edges of the array.
func (p *Lorenzo[T]) Predict(iter *ndrange.Iterator[T]) T {
	var sum float64
	for _, c := range p.corners {
		sum += c.sign * float64(iter.Neighbor(c.offsets))
	}
	return T(sum)
}

// Save persists nothing: the corner table is a deterministic function of
// dimensionality, which the decoder rediscovers on its own from the
// block shape it reads, so there is nothing for the encoder to hand over.
func (p *Lorenzo[T]) Save(buf *sz.Buffer) error { return nil }

// Load reads back nothing.
func (p *Lorenzo[T]) Load(buf *sz.Buffer) error { return nil }

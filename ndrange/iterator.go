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

package ndrange

// Iterator walks a Range in row-major order (last axis fastest). It does
// not own the Range: the Range is expected to outlive every Iterator
// created from it, the way the driver's inter-block and intra-block
// ranges outlive the element iterators spawned while visiting a block.
type Iterator[T Float] struct {
	rng    *Range[T]
	offset int64
	index  []int
}

// newIterator positions a fresh Iterator at offset, with a zeroed index
// vector (only valid for offset == rng.StartOffset(); callers walking
// from elsewhere must not rely on Index() until the first Next()).
func newIterator[T Float](rng *Range[T], offset int64) *Iterator[T] {
	return &Iterator[T]{rng: rng, offset: offset, index: make([]int, rng.N())}
}

// Range returns the parent Range this iterator was built from.
func (it *Iterator[T]) Range() *Range[T] { return it.rng }

// Offset returns the current linear offset.
func (it *Iterator[T]) Offset() int64 { return it.offset }

// Index returns the current per-axis logical index, copied so callers
// (e.g. SetStartingPosition) can't mutate the iterator through it.
func (it *Iterator[T]) Index() []int {
	return append([]int(nil), it.index...)
}

// Done reports whether the iterator has reached the range's sentinel end
// offset.
func (it *Iterator[T]) Done() bool {
	return it.offset == it.rng.endOffset
}

// Get dereferences the iterator, reading the element at its current
// offset.
func (it *Iterator[T]) Get() T {
	return it.rng.data[it.offset]
}

// Set overwrites the element at the iterator's current offset. The
// compression driver calls this so that every later prediction sees the
// reconstructed value, never the original.
func (it *Iterator[T]) Set(v T) {
	it.rng.data[it.offset] = v
}

// Elem returns a pointer to the element at the iterator's current
// offset, letting the driver hand the quantizer a single reference it
// can both read the true value from and overwrite with the
// reconstructed value through, per the QuantizeAndOverwrite contract.
func (it *Iterator[T]) Elem() *T {
	return &it.rng.data[it.offset]
}

// Next advances the iterator by one position using the odometer
// recurrence: the last axis is least significant and is incremented
// first; axes that overflow roll over and carry into the
// next-most-significant axis. Axis 0 is allowed to reach dimensions[0],
// which is exactly end_offset and terminates iteration.
func (it *Iterator[T]) Next() {
	dims := it.rng.dimensions
	strides := it.rng.dimStrides
	i := len(dims) - 1

	it.index[i]++
	it.offset += strides[i]

	for i > 0 && it.index[i] == dims[i] {
		it.offset -= int64(dims[i]) * strides[i]
		it.index[i] = 0
		i--
		it.offset += strides[i]
		it.index[i]++
	}
}

// Prev steps the iterator back by one position; the exact mirror of Next.
func (it *Iterator[T]) Prev() {
	dims := it.rng.dimensions
	strides := it.rng.dimStrides
	i := len(dims) - 1

	it.index[i]--
	it.offset -= strides[i]

	for i > 0 && it.index[i] < 0 {
		it.offset += int64(dims[i]) * strides[i]
		it.index[i] = dims[i] - 1
		i--
		it.offset -= strides[i]
		it.index[i]--
	}
}

// Neighbor performs the sole mechanism predictors use to read previously
// visited neighbors: given per-axis back-offsets p (p[i] >= 0), it reads
// (current_index - p) in global coordinates. If the range is flagged as
// starting at the global origin on axis i (SetStartingPosition) and
// current_index[i] < p[i], the read is out of bounds and Neighbor
// returns the identity-for-prediction value 0 instead of reading
// underflowing memory.
func (it *Iterator[T]) Neighbor(p []int) T {
	origin := it.rng.startPosition
	strides := it.rng.globalDimStrides

	offset := it.offset
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		if origin[i] && it.index[i] < pi {
			return 0
		}
		offset -= int64(pi) * strides[i]
	}

	return it.rng.data[offset]
}

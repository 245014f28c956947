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

// Package quantizer provides Linear, a reference sz.Quantizer
// implementation: a uniform-step linear quantizer under an absolute
// error bound.
package quantizer

import (
	"math"

	sz "github.com/cds-lab/szgo"
)

// Linear quantizes (value - predicted) onto a uniform grid with step
// 2*eb, guaranteeing |reconstructed-true| <= eb unconditionally: values
// whose bin would fall outside [-radius, radius] fall back to verbatim
// storage via a reserved escape index, a two-tier scheme (quantized fast
// path, escape slow path) rather than one that only bounds error in the
// common case.
//
// GetRadius returns the fixed radius the caller constructed this
// quantizer with; there is no training pass that narrows it from the
// data actually seen. A caller sizing radius far above what the data
// needs pays for that margin in the entropy coder's alphabet size, since
// downstream encoders preprocess over the full [0, 4*radius) symbol
// range regardless of how much of it indices actually touch.
type Linear[T sz.Float] struct {
	eb     float64
	radius int

	// unpredictable holds verbatim values for indices that escaped the
	// quantized range, keyed by the order they were produced in; Recover
	// replays them in the same order the encode side produced them.
	unpredictable []T
	readPos       int
}

// NewLinear creates a Linear quantizer with absolute error bound eb and
// the given radius (half-width of the quantized index range before an
// escape is used).
func NewLinear[T sz.Float](eb float64, radius int) *Linear[T] {
	if eb <= 0 {
		panic(sz.NewFatalError("quantizer: error bound must be positive", sz.ErrUnknown))
	}
	if radius <= 0 {
		panic(sz.NewFatalError("quantizer: radius must be positive", sz.ErrUnknown))
	}
	return &Linear[T]{eb: eb, radius: radius}
}

func (q *Linear[T]) PrecompressData()  { q.unpredictable = q.unpredictable[:0] }
func (q *Linear[T]) PostcompressData() {}
func (q *Linear[T]) PrecompressBlock() {}
func (q *Linear[T]) PostcompressBlock() {}

func (q *Linear[T]) PredecompressData()  { q.readPos = 0 }
func (q *Linear[T]) PostdecompressData() {}
func (q *Linear[T]) PredecompressBlock() {}
func (q *Linear[T]) PostdecompressBlock() {}

// escapeIndex returns the reserved index that marks an out-of-range
// residual as stored verbatim instead of reconstructed from predicted.
// An alphabet of size 4*radius has radius unused symbols below the
// nominal [-radius, radius] range once centered (toSymbol maps idx to
// idx+2*radius), so -(radius+1) always lands on the last of those unused
// symbols, never inside the nominal range and never outside the
// alphabet an entropy coder preprocesses over. Earlier this package used
// a sentinel of math.MaxInt32, which an entropy coder's bounded-alphabet
// symbol mapping rejects; picking a sentinel from inside the alphabet's
// own safety margin keeps every index, escape included, encodable.
func (q *Linear[T]) escapeIndex() int32 {
	return -(int32(q.radius) + 1)
}

// QuantizeAndOverwrite computes the signed bin index nearest to
// (*elem-predicted)/(2*eb), reconstructs the quantized value, and writes
// it back through elem so later predictions see exactly what the decoder
// will reconstruct. If the bin falls outside [-radius, radius] the true
// value is stored verbatim instead and escapeIndex() is returned.
func (q *Linear[T]) QuantizeAndOverwrite(elem *T, predicted T) int32 {
	diff := float64(*elem) - float64(predicted)
	bin := math.Floor(diff/(2*q.eb) + 0.5)

	if bin < float64(-q.radius) || bin > float64(q.radius) {
		q.unpredictable = append(q.unpredictable, *elem)
		return q.escapeIndex()
	}

	idx := int32(bin)
	reconstructed := predicted + T(float64(idx)*2*q.eb)
	*elem = reconstructed
	return idx
}

// Recover is the decode-side inverse: for escapeIndex() it replays the
// next verbatim value, otherwise it reconstructs predicted + idx*2*eb
// exactly as the encode side did.
func (q *Linear[T]) Recover(predicted T, idx int32) T {
	if idx == q.escapeIndex() {
		v := q.unpredictable[q.readPos]
		q.readPos++
		return v
	}
	return predicted + T(float64(idx)*2*q.eb)
}

// GetRadius returns the half-width of the quantized index range.
func (q *Linear[T]) GetRadius() int { return q.radius }

// Save persists the error bound, radius, and the verbatim escape values
// accumulated during compression, in the order Recover expects to replay
// them.
func (q *Linear[T]) Save(buf *sz.Buffer) error {
	buf.WriteFloat64(q.eb)
	buf.WriteUint32(uint32(q.radius))
	buf.WriteUint32(uint32(len(q.unpredictable)))

	for _, v := range q.unpredictable {
		buf.WriteFloat64(float64(v))
	}

	return nil
}

// Load reads back what Save wrote.
func (q *Linear[T]) Load(buf *sz.Buffer) error {
	eb, err := buf.ReadFloat64()
	if err != nil {
		return err
	}

	radius, err := buf.ReadUint32()
	if err != nil {
		return err
	}

	n, err := buf.ReadUint32()
	if err != nil {
		return err
	}

	q.unpredictable = make([]T, n)
	for i := range q.unpredictable {
		v, err := buf.ReadFloat64()
		if err != nil {
			return err
		}
		q.unpredictable[i] = T(v)
	}

	q.eb = eb
	q.radius = int(radius)
	q.readPos = 0
	return nil
}

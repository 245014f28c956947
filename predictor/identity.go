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

// Package predictor provides reference sz.Predictor implementations:
// Identity, which always predicts zero, and Lorenzo, a first-order
// Lorenzo predictor. Concrete predictors are external
// collaborators reached only through the sz.Predictor interface, so
// callers are free to supply their own in place of these two.
package predictor

import (
	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/ndrange"
)

// Identity always predicts zero, regardless of neighbors. It carries no
// state and needs no bracket hooks; useful as a baseline and for tests
// that want to reason about the quantizer/encoder stages in isolation.
type Identity[T sz.Float] struct{}

// NewIdentity creates an Identity predictor.
func NewIdentity[T sz.Float]() *Identity[T] { return &Identity[T]{} }

func (p *Identity[T]) PrecompressData(iter *ndrange.Iterator[T])    {}
func (p *Identity[T]) PostcompressData(iter *ndrange.Iterator[T])   {}
func (p *Identity[T]) PrecompressBlock(block *ndrange.Range[T])     {}
func (p *Identity[T]) PostcompressBlock(block *ndrange.Range[T])    {}
func (p *Identity[T]) PredecompressData(iter *ndrange.Iterator[T])  {}
func (p *Identity[T]) PostdecompressData(iter *ndrange.Iterator[T]) {}
func (p *Identity[T]) PredecompressBlock(block *ndrange.Range[T])   {}
func (p *Identity[T]) PostdecompressBlock(block *ndrange.Range[T])  {}

// Predict always returns the zero value of T.
func (p *Identity[T]) Predict(iter *ndrange.Iterator[T]) T {
	var zero T
	return zero
}

// Save persists nothing: Identity carries no state.
func (p *Identity[T]) Save(buf *sz.Buffer) error { return nil }

// Load reads back nothing.
func (p *Identity[T]) Load(buf *sz.Buffer) error { return nil }

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

// Package blockcodec implements the compression and decompression
// drivers: the two-level (inter-block then intra-block) traversal that
// invokes a Predictor/Quantizer per element and an Encoder over the
// resulting index stream. Both directions live in one package because
// they share the header/component-state plumbing.
package blockcodec

import (
	sz "github.com/cds-lab/szgo"
)

// Option configures a Codec built via NewBuilder: a private options
// struct, exported WithXxx constructors, and a terminal Build.
type Option[T sz.Float] func(*options[T])

type options[T sz.Float] struct {
	dims      int
	blockSize int
	predictor sz.Predictor[T]
	quantizer sz.Quantizer[T]
	encoder   sz.Encoder
	listeners []sz.Listener
}

// WithDimensions fixes N, the array's dimensionality. Required: the
// decompressor must know N before it can read a global shape back out
// of a header, and the compressor uses it to validate the shape passed
// to Compress.
func WithDimensions[T sz.Float](n int) Option[T] {
	return func(o *options[T]) { o.dims = n }
}

// WithBlockSize sets B. Passing 0 defers to sz.DefaultBlockSize(N) at
// Build time.
func WithBlockSize[T sz.Float](b int) Option[T] {
	return func(o *options[T]) { o.blockSize = b }
}

// WithPredictor binds the Predictor component.
func WithPredictor[T sz.Float](p sz.Predictor[T]) Option[T] {
	return func(o *options[T]) { o.predictor = p }
}

// WithQuantizer binds the Quantizer component.
func WithQuantizer[T sz.Float](q sz.Quantizer[T]) Option[T] {
	return func(o *options[T]) { o.quantizer = q }
}

// WithEncoder binds the Encoder component.
func WithEncoder[T sz.Float](e sz.Encoder) Option[T] {
	return func(o *options[T]) { o.encoder = e }
}

// WithListener registers a Listener notified of lifecycle Events during
// both Compress and Decompress. May be called more than once.
func WithListener[T sz.Float](l sz.Listener) Option[T] {
	return func(o *options[T]) { o.listeners = append(o.listeners, l) }
}

// Builder accumulates options and produces a Codec. NewBuilder binds the
// generic parameter T, the dimensionality N, the block size B, and the
// three component instances that make up a Codec's programmatic surface.
type Builder[T sz.Float] struct {
	opts options[T]
}

// NewBuilder creates a Builder for element type T.
func NewBuilder[T sz.Float](opts ...Option[T]) *Builder[T] {
	b := &Builder[T]{}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Build validates the accumulated options and returns a ready Codec.
// Panics with a sz.FatalError if a required component is missing or N
// was never set — these are programming errors at the call boundary,
// not runtime conditions.
func (b *Builder[T]) Build() *Codec[T] {
	o := b.opts

	if o.dims <= 0 {
		panic(sz.NewFatalError("blockcodec: WithDimensions is required", sz.ErrShapeMismatch))
	}
	if o.predictor == nil {
		panic(sz.NewFatalError("blockcodec: WithPredictor is required", sz.ErrUnknown))
	}
	if o.quantizer == nil {
		panic(sz.NewFatalError("blockcodec: WithQuantizer is required", sz.ErrUnknown))
	}
	if o.encoder == nil {
		panic(sz.NewFatalError("blockcodec: WithEncoder is required", sz.ErrUnknown))
	}
	if o.blockSize == 0 {
		o.blockSize = sz.DefaultBlockSize(o.dims)
	}

	return &Codec[T]{opts: o}
}

// Codec binds a predictor/quantizer/encoder triple and a dimensionality
// to the Compress/Decompress operations. One Codec should be used for
// either all-compress or all-decompress calls at a time: its components
// are mutated by the driver and must not be used concurrently elsewhere.
type Codec[T sz.Float] struct {
	opts options[T]
}

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

// Package sz defines the top level contracts of a block-structured,
// error-bounded lossy compressor for dense N-dimensional numeric arrays.
//
// The package itself contains no compression logic: it declares the
// Predictor, Quantizer and Encoder interfaces that the driver in the
// blockcodec package composes, plus the shared event/listener mechanism
// and the fatal error type used for unrecoverable programming errors.
// Concrete predictor, quantizer and encoder implementations live in the
// predictor, quantizer and entropy sub-packages; the N-dimensional
// traversal engine lives in ndrange.
package sz

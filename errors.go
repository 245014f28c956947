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

package sz

import "github.com/cds-lab/szgo/ndrange"

// Float is the set of element types the core operates on. Re-exported
// from ndrange, the innermost leaf package, so callers of this package
// don't need to import ndrange just to write T sz.Float.
type Float = ndrange.Float

// FatalError represents a programming error that the core cannot
// recover from: a malformed range construction or a compressed buffer
// that ends before an expected field. Re-exported from ndrange for the
// same reason as Float.
type FatalError = ndrange.FatalError

// NewFatalError creates a FatalError with the given message and code.
func NewFatalError(msg string, code int) FatalError {
	return ndrange.NewFatalError(msg, code)
}

const (
	ErrShapeMismatch   = ndrange.ErrShapeMismatch
	ErrBufferUnderflow = ndrange.ErrBufferUnderflow
	ErrUnknown         = ndrange.ErrUnknown
)

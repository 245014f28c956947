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

import "fmt"

// Error codes for FatalError. ndrange is the innermost leaf package (no
// dependencies of its own), so the fatal-error vocabulary the rest of
// the module panics/recovers with is rooted here, where every other
// package already imports it.
const (
	// ErrShapeMismatch is raised when a range is constructed with a
	// dimension count or access stride that violates its preconditions.
	ErrShapeMismatch = 1

	// ErrBufferUnderflow is raised when a compressed buffer ends before
	// an expected header or component field has been fully read.
	ErrBufferUnderflow = 2

	// ErrUnknown covers fatal conditions that do not fit another code.
	ErrUnknown = 127
)

// FatalError represents a programming error the core cannot recover
// from: a malformed range construction or a compressed buffer that ends
// before an expected field. These are not runtime conditions to retry
// around; the caller is expected to have violated a precondition.
type FatalError struct {
	msg  string
	code int
}

// NewFatalError creates a FatalError with the given message and code.
func NewFatalError(msg string, code int) FatalError {
	return FatalError{msg: msg, code: code}
}

// Error implements the error interface.
func (e FatalError) Error() string {
	return fmt.Sprintf("%v (code %v)", e.msg, e.code)
}

// Code returns the ErrXxx code associated with this error.
func (e FatalError) Code() int {
	return e.code
}

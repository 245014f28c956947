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

package entropy

import (
	"fmt"
	"strings"

	sz "github.com/cds-lab/szgo"
)

// Name identifies a registered Encoder implementation by short name.
type Name string

const (
	NameNull    Name = "NONE"
	NameHuffman Name = "HUFFMAN"
)

// New constructs an Encoder by name.
func New(name Name) (sz.Encoder, error) {
	switch Name(strings.ToUpper(string(name))) {
	case NameNull:
		return NewNull(), nil
	case NameHuffman:
		return NewHuffman(), nil
	default:
		return nil, fmt.Errorf("entropy: unknown encoder name %q", name)
	}
}

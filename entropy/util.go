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

// Package entropy provides reference Encoder implementations: Null, a
// varint passthrough, and Huffman, a canonical Huffman coder over a
// caller-supplied alphabet size. The core treats entropy coders as
// external collaborators reached only through the Encoder interface;
// these two exist so the pipeline is directly usable and testable
// without requiring a caller to bring their own.
package entropy

import (
	sz "github.com/cds-lab/szgo"
)

// toSymbol maps a signed quantization index into a zero-based symbol in
// [0, alphabetSize), centering the alphabet on zero: a quantizer
// nominally emitting indices in [-radius, radius] lands comfortably
// inside [0, alphabetSize) when alphabetSize is the conventional
// 4*radius safety margin. Indices outside the alphabet are a quantizer
// contract violation, not a runtime condition, so this panics rather
// than returning an error.
func toSymbol(idx int32, alphabetSize int) int {
	s := int(idx) + alphabetSize/2
	if s < 0 || s >= alphabetSize {
		panic(sz.NewFatalError("entropy: quantization index outside the preprocessed alphabet", sz.ErrUnknown))
	}
	return s
}

// fromSymbol is the inverse of toSymbol.
func fromSymbol(sym int, alphabetSize int) int32 {
	return int32(sym - alphabetSize/2)
}

// computeCodeLengths assigns a canonical Huffman code length to every
// entry of freqs (freqs[i] is the frequency of symbol i; entries may be
// zero) and returns the lengths indexed by symbol plus the max length
// used, via Moffat & Katajainen's in-place minimum-redundancy algorithm
// over an arbitrary-size alphabet.
func computeCodeLengths(freqs []int) ([]byte, int) {
	n := len(freqs)
	symbols := make([]int, 0, n)
	work := make([]int, 0, n)

	for sym, f := range freqs {
		if f > 0 {
			symbols = append(symbols, sym)
			work = append(work, f)
		}
	}

	lengths := make([]byte, n)

	switch len(work) {
	case 0:
		return lengths, 0
	case 1:
		lengths[symbols[0]] = 1
		return lengths, 1
	}

	order := make([]int, len(work))
	for i := range order {
		order[i] = i
	}
	sortBy(order, work)

	sorted := make([]int, len(work))
	for i, o := range order {
		sorted[i] = work[o]
	}

	inPlaceSizesPhase1(sorted)
	maxLen := inPlaceSizesPhase2(sorted)

	for i, o := range order {
		lengths[symbols[o]] = byte(sorted[i])
	}

	return lengths, maxLen
}

// sortBy sorts order by increasing work[order[i]] (insertion sort: the
// inputs here are small alphabets, typically 4*radius entries).
func sortBy(order, work []int) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && work[order[j-1]] > work[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
}

// inPlaceSizesPhase1 and inPlaceSizesPhase2 implement the in-place
// minimum-redundancy code length computation described in "In-Place
// Calculation of Minimum-Redundancy Codes" (Moffat & Katajainen). data
// must be sorted by increasing frequency on entry.
func inPlaceSizesPhase1(data []int) {
	n := len(data)

	for s, r, t := 0, 0, 0; t < n-1; t++ {
		sum := 0

		for i := 0; i < 2; i++ {
			if s >= n || (r < t && data[r] < data[s]) {
				sum += data[r]
				data[r] = t
				r++
				continue
			}

			sum += data[s]

			if s > t {
				data[s] = 0
			}

			s++
		}

		data[t] = sum
	}
}

// inPlaceSizesPhase2 turns the phase-1 parent links into code lengths in
// place and returns the maximum code length produced. len(data) >= 2.
func inPlaceSizesPhase2(data []int) int {
	levelTop := len(data) - 2
	depth := 1
	i := len(data)
	totalNodesAtLevel := 2

	for i > 0 {
		k := levelTop
		for k > 0 && data[k-1] >= levelTop {
			k--
		}

		internalNodesAtLevel := levelTop - k
		leavesAtLevel := totalNodesAtLevel - internalNodesAtLevel

		for j := 0; j < leavesAtLevel; j++ {
			i--
			data[i] = depth
		}

		totalNodesAtLevel = internalNodesAtLevel << 1
		levelTop = k
		depth++
	}

	return depth - 1
}

// codeEntry pairs a symbol with its assigned code length, for sorting by
// (length, symbol) when assigning canonical codes.
type codeEntry struct {
	sym int
	len byte
}

// canonicalCodes assigns canonical Huffman codes given per-symbol code
// lengths: symbols are ordered by (length, symbol) and assigned
// consecutive codes, incrementing the code and left-shifting whenever
// the length increases.
func canonicalCodes(lengths []byte) []uint32 {
	entries := make([]codeEntry, 0, len(lengths))
	for sym, l := range lengths {
		if l > 0 {
			entries = append(entries, codeEntry{sym: sym, len: l})
		}
	}

	sortEntries(entries)

	codes := make([]uint32, len(lengths))
	if len(entries) == 0 {
		return codes
	}

	code := uint32(0)
	curLen := entries[0].len

	for _, e := range entries {
		if e.len > curLen {
			code <<= e.len - curLen
			curLen = e.len
		}
		codes[e.sym] = code
		code++
	}

	return codes
}

func sortEntries(entries []codeEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if a.len < b.len || (a.len == b.len && a.sym <= b.sym) {
				break
			}
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

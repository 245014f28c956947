package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cds-lab/szgo/bitio"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBits(0x1F, 5)
	w.WriteBit(1)
	w.WriteBits(0x2A, 7)

	r := bitio.NewReader(w.Bytes())
	assert.Equal(t, uint64(0x1F), r.ReadBits(5))
	assert.Equal(t, 1, r.ReadBit())
	assert.Equal(t, uint64(0x2A), r.ReadBits(7))
}

// TestBitsWrittenTracksUnflushedBits checks that BitsWritten counts every
// bit handed to WriteBits/WriteBit, including ones still held in the
// not-yet-byte-aligned accumulator.
func TestBitsWrittenTracksUnflushedBits(t *testing.T) {
	w := bitio.NewWriter()
	assert.Equal(t, uint64(0), w.BitsWritten())

	w.WriteBits(0x3, 3)
	assert.Equal(t, uint64(3), w.BitsWritten())

	w.WriteBit(1)
	assert.Equal(t, uint64(4), w.BitsWritten())

	w.WriteBits(0x7F, 7)
	assert.Equal(t, uint64(11), w.BitsWritten())
}

func TestWriteBitsPanicsOnInvalidCount(t *testing.T) {
	w := bitio.NewWriter()
	assert.Panics(t, func() { w.WriteBits(1, 0) })
	assert.Panics(t, func() { w.WriteBits(1, 58) })
}

func TestReaderPanicsPastEndOfBuffer(t *testing.T) {
	require.NotPanics(t, func() { bitio.NewReader(nil) })

	r := bitio.NewReader([]byte{0xFF})
	assert.Panics(t, func() { r.ReadBits(9) })
}

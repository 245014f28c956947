package blockcodec_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/blockcodec"
	"github.com/cds-lab/szgo/entropy"
	"github.com/cds-lab/szgo/predictor"
	"github.com/cds-lab/szgo/quantizer"
)

func identityCodec(dims int, blockSize int, eb float64) *blockcodec.Codec[float64] {
	return blockcodec.NewBuilder[float64](
		blockcodec.WithDimensions[float64](dims),
		blockcodec.WithBlockSize[float64](blockSize),
		blockcodec.WithPredictor[float64](predictor.NewIdentity[float64]()),
		blockcodec.WithQuantizer[float64](quantizer.NewLinear[float64](eb, 1<<20)),
		blockcodec.WithEncoder[float64](entropy.NewNull()),
	).Build()
}

// TestE1OneDimensionalDefaultBlock covers a 1-D array with the default
// block size.
func TestE1OneDimensionalDefaultBlock(t *testing.T) {
	shape := []int{10}
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	eb := 0.5

	c := identityCodec(1, 0, eb) // B=0 -> default(128) for N=1

	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)

	out, gotShape, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, shape, gotShape)

	for i := range data {
		assert.LessOrEqual(t, math.Abs(out[i]-data[i]), eb)
	}
}

// TestE2TwoDimensionalBoundaryTruncation covers a 2-D array whose shape
// does not evenly divide the block size: shape (5,5), B=2, block count 9.
func TestE2TwoDimensionalBoundaryTruncation(t *testing.T) {
	shape := []int{5, 5}
	data := make([]float64, 25)
	for i := range data {
		data[i] = float64(i)
	}
	eb := 0.5

	blockCount := 0
	listener := listenerFunc(func(evt *sz.Event) {
		if evt.Type() == sz.EvtBlockStart {
			blockCount++
		}
	})

	c := blockcodec.NewBuilder[float64](
		blockcodec.WithDimensions[float64](2),
		blockcodec.WithBlockSize[float64](2),
		blockcodec.WithPredictor[float64](predictor.NewIdentity[float64]()),
		blockcodec.WithQuantizer[float64](quantizer.NewLinear[float64](eb, 1<<20)),
		blockcodec.WithEncoder[float64](entropy.NewNull()),
		blockcodec.WithListener[float64](listener),
	).Build()

	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)
	assert.Equal(t, 9, blockCount)

	out, _, err := c.Decompress(compressed)
	require.NoError(t, err)
	for i := range data {
		assert.LessOrEqual(t, math.Abs(out[i]-data[i]), eb)
	}
}

// TestE3ThreeDimensionalDefault covers a 3-D array with the default
// block size: shape (8,8,8), B=6 (default), block count 8.
func TestE3ThreeDimensionalDefault(t *testing.T) {
	shape := []int{8, 8, 8}
	data := make([]float64, 8*8*8)
	for i := range data {
		data[i] = float64(i % 17)
	}
	eb := 0.5

	blockCount := 0
	listener := listenerFunc(func(evt *sz.Event) {
		if evt.Type() == sz.EvtBlockStart {
			blockCount++
		}
	})

	c := blockcodec.NewBuilder[float64](
		blockcodec.WithDimensions[float64](3),
		blockcodec.WithBlockSize[float64](0), // default(6) for N>=3
		blockcodec.WithPredictor[float64](predictor.NewIdentity[float64]()),
		blockcodec.WithQuantizer[float64](quantizer.NewLinear[float64](eb, 1<<20)),
		blockcodec.WithEncoder[float64](entropy.NewNull()),
		blockcodec.WithListener[float64](listener),
	).Build()

	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)
	assert.Equal(t, 8, blockCount)

	out, _, err := c.Decompress(compressed)
	require.NoError(t, err)
	for i := range data {
		assert.LessOrEqual(t, math.Abs(out[i]-data[i]), eb)
	}
}

// TestE4RoundTripLorenzoHuffman covers a full round trip using a real
// predictor and entropy coder rather than the identity/null pair.
func TestE4RoundTripLorenzoHuffman(t *testing.T) {
	shape := []int{64, 64}
	data := make([]float64, 64*64)
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			data[i*64+j] = math.Sin(float64(i)/8) + math.Cos(float64(j)/8)
		}
	}
	eb := 1e-3

	c := blockcodec.NewBuilder[float64](
		blockcodec.WithDimensions[float64](2),
		blockcodec.WithBlockSize[float64](16),
		blockcodec.WithPredictor[float64](predictor.NewLorenzo[float64]()),
		blockcodec.WithQuantizer[float64](quantizer.NewLinear[float64](eb, 2048)),
		blockcodec.WithEncoder[float64](entropy.NewHuffman()),
	).Build()

	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)

	out, gotShape, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, shape, gotShape)

	maxErr := 0.0
	for i := range data {
		e := math.Abs(out[i] - data[i])
		if e > maxErr {
			maxErr = e
		}
	}
	assert.LessOrEqual(t, maxErr, eb)
}

// TestHuffmanRoundTripsEscapedQuantizerIndices pins down the composition
// between Linear's escape index and Huffman's alphabet: a residual that
// falls outside the quantizer's nominal radius must still be encodable
// and decodable, not just the values Null would round-trip unchanged.
func TestHuffmanRoundTripsEscapedQuantizerIndices(t *testing.T) {
	shape := []int{8}
	data := []float64{0, 1, 2, 3, 1000, 5, 6, 7}
	eb := 0.5

	c := blockcodec.NewBuilder[float64](
		blockcodec.WithDimensions[float64](1),
		blockcodec.WithBlockSize[float64](0),
		blockcodec.WithPredictor[float64](predictor.NewIdentity[float64]()),
		blockcodec.WithQuantizer[float64](quantizer.NewLinear[float64](eb, 10)),
		blockcodec.WithEncoder[float64](entropy.NewHuffman()),
	).Build()

	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)

	out, _, err := c.Decompress(compressed)
	require.NoError(t, err)

	for i := range data {
		assert.LessOrEqual(t, math.Abs(out[i]-data[i]), eb)
	}
}

// TestE5HeaderIntegrity checks the on-wire header layout directly: the
// first 8 bytes are the magic+version frame, the next N*8 bytes decode
// to the input shape, and the following 4 bytes decode to B.
func TestE5HeaderIntegrity(t *testing.T) {
	shape := []int{10}
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	blockSize := 3

	c := identityCodec(1, blockSize, 0.5)
	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(compressed), 8+8+4)

	gotShape0 := binary.LittleEndian.Uint64(compressed[8:16])
	assert.Equal(t, uint64(shape[0]), gotShape0)

	gotBlockSize := binary.LittleEndian.Uint32(compressed[16:20])
	assert.Equal(t, uint32(blockSize), gotBlockSize)
}

// TestDigestDetectsCorruption ensures a bit flip anywhere in the body is
// caught by the trailing xxhash64 digest rather than silently
// misdecoding.
func TestDigestDetectsCorruption(t *testing.T) {
	shape := []int{10}
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	c := identityCodec(1, 4, 0.5)
	compressed, err := c.Compress(data, shape)
	require.NoError(t, err)

	corrupted := append([]byte(nil), compressed...)
	corrupted[20] ^= 0xFF

	_, _, err = c.Decompress(corrupted)
	assert.Error(t, err)
}

type listenerFunc func(evt *sz.Event)

func (f listenerFunc) ProcessEvent(evt *sz.Event) { f(evt) }

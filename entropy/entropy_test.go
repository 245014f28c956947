package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/entropy"
)

func TestNullEncodeDecodeRoundTrip(t *testing.T) {
	e := entropy.NewNull()
	indices := []int32{0, 1, -1, 2, -2, 500, -500}

	buf := sz.NewWriteBuffer(0)
	require.NoError(t, e.PreprocessEncode(indices, 4000))
	require.NoError(t, e.Encode(indices, buf))

	rb := sz.NewReadBuffer(buf.Bytes())
	got, err := e.Decode(rb, len(indices))
	require.NoError(t, err)
	assert.Equal(t, indices, got)
}

// TestHuffmanEncodeDecoderAgreement covers testable property 2: the
// index sequence produced on compress equals the one recovered on
// decompress, element for element.
func TestHuffmanEncodeDecoderAgreement(t *testing.T) {
	e := entropy.NewHuffman()
	radius := 8
	alphabet := 4 * radius
	indices := make([]int32, 0, 200)
	for i := 0; i < 200; i++ {
		indices = append(indices, int32((i%7)-3))
	}

	require.NoError(t, e.PreprocessEncode(indices, alphabet))

	buf := sz.NewWriteBuffer(0)
	require.NoError(t, e.Save(buf))
	require.NoError(t, e.Encode(indices, buf))

	rb := sz.NewReadBuffer(buf.Bytes())
	e2, err := entropy.New(entropy.NameHuffman)
	require.NoError(t, err)
	require.NoError(t, e2.Load(rb))

	got, err := e2.Decode(rb, len(indices))
	require.NoError(t, err)
	assert.Equal(t, indices, got)
}

func TestHuffmanCompressesSkewedDistribution(t *testing.T) {
	e := entropy.NewHuffman()
	radius := 16
	alphabet := 4 * radius

	indices := make([]int32, 1000)
	for i := range indices {
		if i%10 == 0 {
			indices[i] = 3
		} else {
			indices[i] = 0
		}
	}

	require.NoError(t, e.PreprocessEncode(indices, alphabet))

	buf := sz.NewWriteBuffer(0)
	require.NoError(t, e.Encode(indices, buf))

	// A heavily skewed distribution should compress to less than one
	// byte per index.
	assert.Less(t, len(buf.Bytes()), len(indices))
}

func TestFactoryUnknownNameErrors(t *testing.T) {
	_, err := entropy.New("bogus")
	assert.Error(t, err)
}

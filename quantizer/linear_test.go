package quantizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sz "github.com/cds-lab/szgo"
	"github.com/cds-lab/szgo/quantizer"
)

// TestLinearRoundTripUnderTolerance covers testable property 1 for the
// quantizer in isolation: reconstructed values stay within eb of true.
func TestLinearRoundTripUnderTolerance(t *testing.T) {
	eb := 0.5
	q := quantizer.NewLinear[float64](eb, 1024)
	q.PrecompressData()

	values := []float64{0, 1, 2.4, -3.7, 100.2}
	for _, v := range values {
		predicted := 0.0
		elem := v
		idx := q.QuantizeAndOverwrite(&elem, predicted)
		assert.LessOrEqual(t, math.Abs(elem-v), eb)

		recovered := q.Recover(predicted, idx)
		assert.Equal(t, elem, recovered)
	}
}

// TestLinearEscapeRoute checks that values quantizing outside
// [-radius, radius] are stored verbatim via the escape index and replayed
// in order by Recover.
func TestLinearEscapeRoute(t *testing.T) {
	eb := 0.5
	q := quantizer.NewLinear[float64](eb, 2)
	q.PrecompressData()

	elem := 1000.0
	idx := q.QuantizeAndOverwrite(&elem, 0)
	assert.Equal(t, 1000.0, elem)

	recovered := q.Recover(0, idx)
	assert.Equal(t, 1000.0, recovered)
}

func TestLinearSaveLoadRoundTrip(t *testing.T) {
	eb := 0.25
	q := quantizer.NewLinear[float64](eb, 4)
	q.PrecompressData()

	elem := 50.0
	idx := q.QuantizeAndOverwrite(&elem, 0)
	_ = idx

	escaped := 1e9
	escIdx := q.QuantizeAndOverwrite(&escaped, 0)

	buf := sz.NewWriteBuffer(0)
	require.NoError(t, q.Save(buf))

	q2 := quantizer.NewLinear[float64](1, 1)
	rb := sz.NewReadBuffer(buf.Bytes())
	require.NoError(t, q2.Load(rb))
	q2.PredecompressData()

	assert.Equal(t, escaped, q2.Recover(0, escIdx))
	assert.Equal(t, q.GetRadius(), q2.GetRadius())
}

func TestNewLinearPanicsOnNonPositiveErrorBound(t *testing.T) {
	assert.Panics(t, func() {
		quantizer.NewLinear[float64](0, 10)
	})
}

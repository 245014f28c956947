package sz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sz "github.com/cds-lab/szgo"
)

func TestBufferRoundTrip(t *testing.T) {
	buf := sz.NewWriteBuffer(0)
	buf.WriteUint32(42)
	buf.WriteUint64(1 << 40)
	buf.WriteFloat64(3.5)
	buf.WriteBytes([]byte("hello"))

	rb := sz.NewReadBuffer(buf.Bytes())

	v32, err := rb.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v32)

	v64, err := rb.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), v64)

	vf, err := rb.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 3.5, vf)

	vb, err := rb.ReadBytes(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(vb))
}

// TestBufferExactSizedReadIsNotUnderflow checks that a field whose size
// exactly matches the remaining bytes is readable, not rejected as an
// overflow.
func TestBufferExactSizedReadIsNotUnderflow(t *testing.T) {
	buf := sz.NewWriteBuffer(0)
	buf.WriteUint32(7)

	rb := sz.NewReadBuffer(buf.Bytes())
	v, err := rb.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
	assert.Equal(t, 0, rb.Remaining())
}

func TestBufferUnderflowIsFatal(t *testing.T) {
	rb := sz.NewReadBuffer([]byte{1, 2, 3})
	_, err := rb.ReadUint32()
	require.Error(t, err)

	var fatal sz.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, sz.ErrBufferUnderflow, fatal.Code())
}

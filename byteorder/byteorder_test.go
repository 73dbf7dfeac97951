package byteorder

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapUint(t *testing.T) {
	assert.Equal(t, uint16(0x3412), SwapUint16(0x1234))
	assert.Equal(t, uint32(0x78563412), SwapUint32(0x12345678))
	assert.Equal(t, uint64(0xefcdab8967452301), SwapUint64(0x0123456789abcdef))
}

func TestSwapInt(t *testing.T) {
	assert.Equal(t, int16(0x3412), SwapInt16(0x1234))
	assert.Equal(t, int32(0x78563412), SwapInt32(0x12345678))
	assert.Equal(t, int64(0x2301), SwapInt64(0x0123000000000000))

	// Swapping twice restores the original, sign bit included.
	for _, v := range []int32{0, 1, -1, 0x7fffffff, -0x80000000} {
		assert.Equal(t, v, SwapInt32(SwapInt32(v)), "value %d", v)
	}
}

func TestSwapFloat(t *testing.T) {
	for _, v := range []float32{0, 1.5, -2.25, 3.14159} {
		assert.Equal(t, v, SwapFloat32(SwapFloat32(v)), "value %f", v)
	}
	for _, v := range []float64{0, 1.5, -2.25, 2.718281828} {
		assert.Equal(t, v, SwapFloat64(SwapFloat64(v)), "value %f", v)
	}
}

func TestWriteSwapped(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteSwappedUint16(&buf, 0x1234))
	assert.Equal(t, []byte{0x34, 0x12}, buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteSwappedUint32(&buf, 0x12345678))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteSwappedUint64(&buf, 0x0123456789abcdef))
	assert.Equal(t, []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}, buf.Bytes())
}

func TestReadSwapped(t *testing.T) {
	v16, err := ReadSwappedUint16(bytes.NewReader([]byte{0x34, 0x12}))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v32, err := ReadSwappedUint32(bytes.NewReader([]byte{0x78, 0x56, 0x34, 0x12}))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v32)

	v64, err := ReadSwappedUint64(bytes.NewReader([]byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789abcdef), v64)
}

func TestReadSwapped_ShortInput(t *testing.T) {
	_, err := ReadSwappedUint32(bytes.NewReader([]byte{0x01, 0x02}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadSwappedUint16(strings.NewReader(""))
	require.ErrorIs(t, err, io.EOF)
}

func TestFloatWireRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSwappedFloat32(&buf, 1.25))
	require.NoError(t, WriteSwappedFloat64(&buf, -9.875))

	f32, err := ReadSwappedFloat32(&buf)
	require.NoError(t, err)
	assert.Equal(t, float32(1.25), f32)

	f64, err := ReadSwappedFloat64(&buf)
	require.NoError(t, err)
	assert.Equal(t, -9.875, f64)
}

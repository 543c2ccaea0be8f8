package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC8Vectors(t *testing.T) {
	assert.Equal(t, byte(0xF4), CRC8([]byte("123456789")))
	assert.Equal(t, byte(0x00), CRC8([]byte("")))
}

func TestInt8RoundTrip(t *testing.T) {
	for _, v := range []int8{-128, 0, 127} {
		w := NewWriter()
		w.WriteInt8(v)
		r := NewReader(w.Buf)
		got, err := r.ReadInt8()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{math.MinInt32, math.MaxInt32, 0} {
		w := NewWriter()
		w.WriteInt32(v)
		r := NewReader(w.Buf)
		got, err := r.ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	vals := []float32{0.0, float32(math.Copysign(0, -1)), float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range vals {
		w := NewWriter()
		w.WriteFloat32(v)
		r := NewReader(w.Buf)
		got, err := r.ReadFloat32()
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}

	w := NewWriter()
	w.WriteFloat32(float32(math.NaN()))
	r := NewReader(w.Buf)
	got, err := r.ReadFloat32()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))
}

func TestFloat16RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 500.0, 12.5, -3.8} {
		bits := Float32ToFloat16(v)
		back := Float16ToFloat32(bits)
		assert.InDelta(t, v, back, 0.05)
	}
	assert.Equal(t, uint16(0x3C00), Float32ToFloat16(1.0))
}

func TestFloat16Subnormals(t *testing.T) {
	// smallest positive subnormal (2^-24) and a mid-range one (2^-15)
	assert.Equal(t, float32(math.Ldexp(1, -24)), Float16ToFloat32(0x0001))
	assert.Equal(t, float32(math.Ldexp(1, -15)), Float16ToFloat32(0x0200))
	assert.Equal(t, uint16(0x0200), Float32ToFloat16(float32(math.Ldexp(1, -15))))
}

func TestFloat16Specials(t *testing.T) {
	assert.Equal(t, uint16(0x7C00), Float32ToFloat16(float32(math.Inf(1))))
	assert.Equal(t, uint16(0xFC00), Float32ToFloat16(float32(math.Inf(-1))))
	assert.True(t, math.IsNaN(float64(Float16ToFloat32(Float32ToFloat16(float32(math.NaN()))))))
	assert.Equal(t, uint16(0x8000), Float32ToFloat16(float32(math.Copysign(0, -1))))

	// values past the binary16 range overflow to infinity
	assert.Equal(t, uint16(0x7C00), Float32ToFloat16(70000))
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "\U0001F916"} {
		w := NewWriter()
		require.NoError(t, w.WriteString(s))
		r := NewReader(w.Buf)
		got, err := r.ReadString()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestVarIntBoundaries(t *testing.T) {
	cases := []uint32{0, 126, 127, 128, 16383, 16384, 2097151, 2097152, 268435455, 268435456, 0xFFFFFFFF}
	for _, v := range cases {
		w := NewWriter()
		require.NoError(t, w.WriteVarInt(v))
		r := NewReader(w.Buf)
		got, err := r.ReadVarInt()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarIntMinimalEncoding(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteVarInt(127))
	assert.Len(t, w.Buf, 1)

	w2 := NewWriter()
	require.NoError(t, w2.WriteVarInt(128))
	assert.Len(t, w2.Buf, 2)
}

func TestTruncatedRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.ReadUint32()
	require.Error(t, err)
	var trunc *Truncated
	assert.ErrorAs(t, err, &trunc)
}

func TestUUIDRoundTrip(t *testing.T) {
	var id [16]byte
	for i := range id {
		id[i] = byte(i)
	}
	w := NewWriter()
	w.WriteUUID(id)
	r := NewReader(w.Buf)
	got, err := r.ReadUUID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

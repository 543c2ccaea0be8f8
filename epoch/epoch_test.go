package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpochRoundTripSizes(t *testing.T) {
	for _, size := range []int{0, 1, 8192} {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i)
		}
		frame, err := Encode(7, payload)
		require.NoError(t, err)

		decoded, consumed, err := Decode(frame)
		require.NoError(t, err)
		require.Equal(t, len(frame), consumed)
		require.True(t, decoded.CRCOK)
		require.Equal(t, uint16(7), decoded.Seq)
		require.Equal(t, payload, decoded.Payload)
	}
}

func TestEpochOverMaxPayloadRejected(t *testing.T) {
	_, err := Encode(0, make([]byte, MaxPayload+1))
	require.Error(t, err)
}

func TestEpochCRCFailureDetection(t *testing.T) {
	frame, err := Encode(1, []byte("test data"))
	require.NoError(t, err)

	corrupt := make([]byte, len(frame))
	copy(corrupt, frame)
	corrupt[5] ^= 0x01 // flip one bit inside the payload, not the CRC byte

	decoded, _, err := Decode(corrupt)
	require.NoError(t, err)
	require.False(t, decoded.CRCOK)
}

func TestEpochTruncated(t *testing.T) {
	_, _, err := Decode([]byte{0x00, 0x01})
	require.Error(t, err)
}

func TestWriterFlushesAtBoundary(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Write(make([]byte, MaxPayload)))
	require.Len(t, w.Frames(), 0) // exactly full, not flushed until more arrives or explicit Flush

	require.NoError(t, w.Write([]byte{0x01}))
	require.Len(t, w.Frames(), 1)
	require.Equal(t, uint16(1), w.Seq())

	require.NoError(t, w.Flush())
	require.Len(t, w.Frames(), 2)
	require.Equal(t, uint16(2), w.Seq())
}

func TestWriterSequenceWraps(t *testing.T) {
	w := &Writer{seq: 0xFFFF}
	require.NoError(t, w.Flush())
	require.Equal(t, uint16(0), w.Seq())
}

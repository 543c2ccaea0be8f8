package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ts(v int64) *int64 { return &v }

func TestAssertInt32Wire(t *testing.T) {
	b := New()
	_, err := b.StartUtterance(1.0, 3, ts(0))
	require.NoError(t, err)
	_, err = b.Assert(func() error {
		_, err := b.Int32(42)
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	want := []byte{
		0x00,
		0x90, 0x3C, 0x00,
		0x91, 0x03,
		0x94, 0, 0, 0, 0, 0, 0, 0, 0,
		0x81,
		0x12, 0x00, 0x00, 0x00, 0x2A,
		0x01,
	}
	require.Equal(t, want, b.Bytes())
}

func TestPredictedEmitsHorizon(t *testing.T) {
	b := New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.Assert(func() error {
		_, err := b.Predicted(500.0, func() error {
			_, err := b.Float32(2.0)
			return err
		})
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	buf := b.Bytes()
	// body starts right after the 15-byte mandatory header (1 start
	// + 3 confidence + 2 priority + 9 timestamp)
	require.Equal(t, byte(0x81), buf[15]) // ASSERT
	require.Equal(t, byte(0x7D), buf[16]) // PREDICTED
}

func TestBuilderStateErrors(t *testing.T) {
	b := New()
	_, err := b.Int32(1)
	require.Error(t, err)

	_, err = b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.EndStruct()
	require.Error(t, err)

	_, err = b.BeginStruct()
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.Error(t, err)
}

func TestAbortResetsLifecycleWithoutRollback(t *testing.T) {
	b := New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.BeginStruct()
	require.NoError(t, err)

	b.Abort()
	sizeAfterAbort := b.CurrentSize()

	// a fresh utterance can start right away; the aborted bytes stay
	// in the buffer (no rollback)
	_, err = b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	require.Greater(t, b.CurrentSize(), sizeAfterAbort)
	require.Equal(t, byte(0x02), b.Bytes()[sizeAfterAbort-1]) // ABORT byte preserved
}

func TestListOfFloat32(t *testing.T) {
	b := New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.ListOfFloat32([]float32{12.5, -3.8, 2.1})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)
}

package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/encoder"
	"github.com/jmpatri615/aill/epoch"
	"github.com/jmpatri615/aill/expr"
)

func ts(v int64) *int64 { return &v }

func TestAssertInt32Wire(t *testing.T) {
	buf := []byte{
		0x00,
		0x90, 0x3C, 0x00,
		0x91, 0x03,
		0x94, 0, 0, 0, 0, 0, 0, 0, 0,
		0x81,
		0x12, 0x00, 0x00, 0x00, 0x2A,
		0x01,
	}
	u, err := Decode(buf)
	require.NoError(t, err)
	require.Len(t, u.Body, 1)
	prag, ok := u.Body[0].(*expr.Pragmatic)
	require.True(t, ok)
	require.Equal(t, codebook.Assert, prag.Act)
	lit, ok := prag.Inner.(*expr.Literal)
	require.True(t, ok)
	require.Equal(t, expr.VInt32, lit.ValueType)
	require.Equal(t, int32(42), lit.Value)
}

func TestPositionReportRoundTrip(t *testing.T) {
	b := encoder.New()
	_, err := b.StartUtterance(1.0, 3, ts(0))
	require.NoError(t, err)
	_, err = b.Assert(func() error {
		_, err := b.Modal(codebook.Observed, func() error {
			_, err := b.BeginStruct()
			if err != nil {
				return err
			}
			if _, err := b.FieldID(0x0000); err != nil {
				return err
			}
			if _, err := b.ListOfFloat32([]float32{12.5, -3.8, 2.1}); err != nil {
				return err
			}
			_, err = b.EndStruct()
			return err
		})
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	u, err := Decode(b.Bytes())
	require.NoError(t, err)
	prag := u.Body[0].(*expr.Pragmatic)
	require.Equal(t, codebook.Assert, prag.Act)
	modal := prag.Inner.(*expr.Modal)
	require.Equal(t, codebook.Observed, modal.Modality)
	st := modal.Inner.(*expr.Struct)
	lst := st.Fields[0x0000].(*expr.List)
	require.Equal(t, uint16(3), lst.Declared)
	require.Len(t, lst.Elements, 3)
	require.False(t, lst.Incomplete)
}

func TestDomainQueryRoundTrip(t *testing.T) {
	b := encoder.New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.Query(func() error {
		_, err := b.DomainRef(1, 0x0000)
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	u, err := Decode(b.Bytes())
	require.NoError(t, err)
	prag := u.Body[0].(*expr.Pragmatic)
	require.Equal(t, codebook.Query, prag.Act)
	ref := prag.Inner.(*expr.DomainRef)
	require.Equal(t, 1, ref.Level)
	require.Equal(t, uint16(0x0000), ref.DomainCode)
}

func TestPredictedHorizonRoundTrip(t *testing.T) {
	b := encoder.New()
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

	u, err := Decode(b.Bytes())
	require.NoError(t, err)
	prag := u.Body[0].(*expr.Pragmatic)
	modal := prag.Inner.(*expr.Modal)
	require.Equal(t, codebook.Predicted, modal.Modality)
	require.InDelta(t, 500.0, modal.Extra.HorizonMs, 1.0)
	lit := modal.Inner.(*expr.Literal)
	require.Equal(t, float32(2.0), lit.Value)
}

func TestTruncatedUtterance(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x90, 0x3C})
	require.Error(t, err)
}

func TestMetaMissing(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x91, 0x00})
	require.Error(t, err)
	_, ok := err.(*MetaMissing)
	require.True(t, ok)
}

func TestDuplicateMetaCodeRejected(t *testing.T) {
	buf := []byte{
		0x00,
		0x90, 0x3C, 0x00,
		0x91, 0x00,
		0x94, 0, 0, 0, 0, 0, 0, 0, 0,
		0x9E, 0x00, 0x05, // TTL
		0x9E, 0x00, 0x06, // TTL again
		0x01,
	}
	_, err := Decode(buf)
	require.Error(t, err)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestTruncatedListWithoutEndUtteranceFails(t *testing.T) {
	b := encoder.New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.BeginList(3)
	require.NoError(t, err)
	_, err = b.Int32(1)
	require.NoError(t, err)
	_, err = b.Int32(2)
	require.NoError(t, err)
	_, err = b.EndList()
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	buf := b.Bytes()
	// chop off the second element (5 bytes), END_LIST and
	// END_UTTERANCE: the list itself decodes as incomplete, but the
	// utterance has no terminator
	truncated := buf[:len(buf)-7]

	u, err := Decode(truncated)
	require.Error(t, err) // missing END_UTTERANCE remains fatal
	_ = u
}

func TestTreeRoundTrip(t *testing.T) {
	topic := uint16(7)
	st := expr.NewStruct()
	st.Set(0x0001, &expr.Literal{ValueType: expr.VString, Value: "wp-alpha"})
	st.Set(0x0002, &expr.Literal{ValueType: expr.VTimestamp, Value: int64(1700000000000000)})
	u := &expr.Utterance{
		Meta: expr.MetaHeader{Confidence: 0.5, Priority: 2, TimestampUs: 42, Topic: &topic},
		Body: []expr.Expression{
			&expr.Pragmatic{Act: codebook.Command, Inner: &expr.Temporal{
				Modifier: codebook.TDeadline,
				Inner:    st,
			}},
			&expr.DomainRef{Level: 2, DomainCode: 0x0030},
			&expr.ContextRef{Index: 300},
			&expr.Extension{Proposed: 0xC010},
			&expr.Map{Declared: 1, Pairs: []expr.MapPair{{
				Key:   &expr.Literal{ValueType: expr.VUint8, Value: uint8(1)},
				Value: &expr.Literal{ValueType: expr.VBool, Value: true},
			}}},
		},
	}

	buf, err := encoder.Encode(u)
	require.NoError(t, err)
	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestDecodeNextConsumesExactly(t *testing.T) {
	b := encoder.New()
	_, err := b.StartUtterance(1.0, 0, ts(0))
	require.NoError(t, err)
	_, err = b.Assert(func() error {
		_, err := b.Int32(1)
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)
	first := b.Bytes()

	b2 := encoder.New()
	_, err = b2.StartUtterance(1.0, 1, ts(0))
	require.NoError(t, err)
	_, err = b2.Assert(func() error {
		_, err := b2.Int32(2)
		return err
	})
	require.NoError(t, err)
	_, err = b2.EndUtterance()
	require.NoError(t, err)

	stream := append(append([]byte{}, first...), b2.Bytes()...)

	u1, n, err := DecodeNext(stream)
	require.NoError(t, err)
	require.Equal(t, len(first), n)

	// decoding the exact prefix yields the same tree
	again, err := Decode(stream[:n])
	require.NoError(t, err)
	require.Equal(t, u1, again)

	u2, _, err := DecodeNext(stream[n:])
	require.NoError(t, err)
	require.Equal(t, uint8(1), u2.Meta.Priority)
}

func TestEpochFramedExchange(t *testing.T) {
	b := encoder.New()
	_, err := b.StartUtterance(0.9, 5, ts(1700000000000000))
	require.NoError(t, err)
	_, err = b.Warn(func() error {
		_, err := b.DomainRef(1, 0x0001)
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	w := epoch.NewWriter()
	require.NoError(t, w.Write(b.Bytes()))
	require.NoError(t, w.Flush())

	var payload []byte
	for _, frame := range w.Frames() {
		decoded, _, err := epoch.Decode(frame)
		require.NoError(t, err)
		require.True(t, decoded.CRCOK)
		payload = append(payload, decoded.Payload...)
	}

	u, err := Decode(payload)
	require.NoError(t, err)
	prag := u.Body[0].(*expr.Pragmatic)
	require.Equal(t, codebook.Warn, prag.Act)
	ref := prag.Inner.(*expr.DomainRef)
	require.Equal(t, uint16(0x0001), ref.DomainCode)
}

func TestUnknownCodeIsOpaque(t *testing.T) {
	buf := []byte{
		0x00,
		0x90, 0x3C, 0x00,
		0x91, 0x00,
		0x94, 0, 0, 0, 0, 0, 0, 0, 0,
		0xD0, // reserved
		0x01,
	}
	u, err := Decode(buf)
	require.NoError(t, err)
	op := u.Body[0].(*expr.Opaque)
	require.Equal(t, byte(0xD0), op.Code)
	require.Equal(t, "RESERVED", op.Mnemonic)
}

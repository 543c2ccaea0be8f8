package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/expr"
)

func TestEncodeTreeMatchesBuilder(t *testing.T) {
	st := expr.NewStruct()
	st.Set(0x0000, &expr.List{
		Declared: 3,
		Elements: []expr.Expression{
			&expr.Literal{ValueType: expr.VFloat32, Value: float32(12.5)},
			&expr.Literal{ValueType: expr.VFloat32, Value: float32(-3.8)},
			&expr.Literal{ValueType: expr.VFloat32, Value: float32(2.1)},
		},
	})
	u := &expr.Utterance{
		Meta: expr.MetaHeader{Confidence: 1.0, Priority: 3},
		Body: []expr.Expression{
			&expr.Pragmatic{Act: codebook.Assert, Inner: &expr.Modal{
				Modality: codebook.Observed,
				Inner:    st,
			}},
		},
	}
	fromTree, err := Encode(u)
	require.NoError(t, err)

	b := New()
	_, err = b.StartUtterance(1.0, 3, ts(0))
	require.NoError(t, err)
	_, err = b.Assert(func() error {
		_, err := b.Modal(codebook.Observed, func() error {
			if _, err := b.BeginStruct(); err != nil {
				return err
			}
			if _, err := b.FieldID(0x0000); err != nil {
				return err
			}
			if _, err := b.ListOfFloat32([]float32{12.5, -3.8, 2.1}); err != nil {
				return err
			}
			_, err := b.EndStruct()
			return err
		})
		return err
	})
	require.NoError(t, err)
	_, err = b.EndUtterance()
	require.NoError(t, err)

	require.Equal(t, b.Bytes(), fromTree)
}

func TestEncodeTreeMetaAnnotations(t *testing.T) {
	var src, dst [16]byte
	src[0], dst[0] = 0xAA, 0xBB
	seq := uint32(9)
	u := &expr.Utterance{
		Meta: expr.MetaHeader{
			Confidence:  0.5,
			Priority:    1,
			TimestampUs: 1234,
			SourceAgent: &src,
			DestAgent:   &dst,
			Seqnum:      &seq,
		},
		Body: []expr.Expression{
			&expr.Extension{Proposed: 0xC001},
			&expr.Annotated{
				Annotation: codebook.Label,
				Label:      "battery",
				Inner:      &expr.Literal{ValueType: expr.VFloat32, Value: float32(0.87)},
			},
		},
	}
	buf, err := Encode(u)
	require.NoError(t, err)
	require.Equal(t, byte(codebook.StartUtterance), buf[0])
	require.Equal(t, byte(codebook.EndUtterance), buf[len(buf)-1])
}

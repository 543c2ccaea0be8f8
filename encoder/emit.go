package encoder

import (
	"fmt"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/expr"
	"github.com/jmpatri615/aill/wire"
)

// Encode serializes a complete expression tree back to wire bytes, the
// inverse of decoder.Decode. Optional meta annotations are emitted in
// the canonical field order of expr.MetaHeader; struct fields are
// always emitted with an explicit FIELD_ID, so positional fields
// round-trip through their assigned index.
func Encode(u *expr.Utterance) ([]byte, error) {
	w := wire.NewWriter()
	w.WriteByte(codebook.StartUtterance)

	w.WriteByte(codebook.Confidence)
	w.WriteFloat16(u.Meta.Confidence)
	w.WriteByte(codebook.Priority)
	w.WriteUint8(u.Meta.Priority)
	w.WriteByte(codebook.TimestampMeta)
	w.WriteInt64(u.Meta.TimestampUs)

	if id := u.Meta.SourceAgent; id != nil {
		w.WriteByte(codebook.SourceAgent)
		w.WriteUUID(*id)
	}
	if id := u.Meta.DestAgent; id != nil {
		w.WriteByte(codebook.DestAgent)
		w.WriteUUID(*id)
	}
	if v := u.Meta.Seqnum; v != nil {
		w.WriteByte(codebook.Seqnum)
		w.WriteUint32(*v)
	}
	if v := u.Meta.TraceID; v != nil {
		w.WriteByte(codebook.TraceID)
		w.WriteUint64(*v)
	}
	if v := u.Meta.TTL; v != nil {
		w.WriteByte(codebook.TTL)
		w.WriteUint16(*v)
	}
	if v := u.Meta.Topic; v != nil {
		w.WriteByte(codebook.Topic)
		w.WriteUint16(*v)
	}
	if v := u.Meta.VersionTag; v != nil {
		w.WriteByte(codebook.VersionTag)
		w.WriteUint16(v[0])
		w.WriteUint16(v[1])
	}

	for _, e := range u.Body {
		if err := emitExpression(w, e); err != nil {
			return nil, err
		}
	}

	w.WriteByte(codebook.EndUtterance)
	return w.Buf, nil
}

func emitExpression(w *wire.Writer, e expr.Expression) error {
	switch n := e.(type) {
	case *expr.Literal:
		return emitLiteral(w, n)

	case *expr.Struct:
		w.WriteByte(codebook.BeginStruct)
		for _, id := range n.Order {
			w.WriteByte(codebook.FieldID)
			w.WriteUint16(id)
			if err := emitExpression(w, n.Fields[id]); err != nil {
				return err
			}
		}
		w.WriteByte(codebook.EndStruct)
		return nil

	case *expr.List:
		w.WriteByte(codebook.BeginList)
		w.WriteUint16(n.Declared)
		for _, el := range n.Elements {
			if err := emitExpression(w, el); err != nil {
				return err
			}
		}
		w.WriteByte(codebook.EndList)
		return nil

	case *expr.Map:
		w.WriteByte(codebook.BeginMap)
		w.WriteUint16(n.Declared)
		for _, p := range n.Pairs {
			if err := emitExpression(w, p.Key); err != nil {
				return err
			}
			if err := emitExpression(w, p.Value); err != nil {
				return err
			}
		}
		w.WriteByte(codebook.EndMap)
		return nil

	case *expr.Pragmatic:
		w.WriteByte(n.Act)
		return emitExpression(w, n.Inner)

	case *expr.Modal:
		w.WriteByte(n.Modality)
		switch n.Modality {
		case codebook.Predicted:
			var horizon float32
			if n.Extra != nil {
				horizon = n.Extra.HorizonMs
			}
			w.WriteFloat16(horizon)
		case codebook.Reported:
			var reporter [16]byte
			if n.Extra != nil {
				reporter = n.Extra.Reporter
			}
			w.WriteUUID(reporter)
		}
		return emitExpression(w, n.Inner)

	case *expr.Temporal:
		w.WriteByte(n.Modifier)
		return emitExpression(w, n.Inner)

	case *expr.DomainRef:
		switch n.Level {
		case 1:
			w.WriteByte(codebook.EscapeL1)
		case 2:
			w.WriteByte(codebook.EscapeL2)
		case 3:
			w.WriteByte(codebook.EscapeL3)
		default:
			return &wire.RangeError{Value: n.Level, Want: "domain ref level in 1..3"}
		}
		w.WriteUint16(n.DomainCode)
		return nil

	case *expr.ContextRef:
		w.WriteByte(codebook.ContextRef)
		return w.WriteVarInt(n.Index)

	case *expr.Annotated:
		w.WriteByte(n.Annotation)
		switch n.Annotation {
		case codebook.Confidence:
			w.WriteFloat16(n.Confidence)
		case codebook.Label:
			if err := w.WriteString(n.Label); err != nil {
				return err
			}
		default:
			return fmt.Errorf("aill: annotation code 0x%02X is not CONFIDENCE or LABEL", n.Annotation)
		}
		return emitExpression(w, n.Inner)

	case *expr.Extension:
		w.WriteByte(codebook.Extension)
		w.WriteUint16(n.Proposed)
		return nil

	case *expr.Opaque:
		w.WriteByte(n.Code)
		return nil

	default:
		return fmt.Errorf("aill: cannot encode expression of kind %d", e.Kind())
	}
}

func emitLiteral(w *wire.Writer, lit *expr.Literal) error {
	switch lit.ValueType {
	case expr.VInt8:
		w.WriteByte(codebook.TInt8)
		w.WriteInt8(lit.Value.(int8))
	case expr.VInt16:
		w.WriteByte(codebook.TInt16)
		w.WriteInt16(lit.Value.(int16))
	case expr.VInt32:
		w.WriteByte(codebook.TInt32)
		w.WriteInt32(lit.Value.(int32))
	case expr.VInt64:
		w.WriteByte(codebook.TInt64)
		w.WriteInt64(lit.Value.(int64))
	case expr.VUint8:
		w.WriteByte(codebook.TUint8)
		w.WriteUint8(lit.Value.(uint8))
	case expr.VUint16:
		w.WriteByte(codebook.TUint16)
		w.WriteUint16(lit.Value.(uint16))
	case expr.VUint32:
		w.WriteByte(codebook.TUint32)
		w.WriteUint32(lit.Value.(uint32))
	case expr.VUint64:
		w.WriteByte(codebook.TUint64)
		w.WriteUint64(lit.Value.(uint64))
	case expr.VFloat16:
		w.WriteByte(codebook.TFloat16)
		w.WriteFloat16(lit.Value.(float32))
	case expr.VFloat32:
		w.WriteByte(codebook.TFloat32)
		w.WriteFloat32(lit.Value.(float32))
	case expr.VFloat64:
		w.WriteByte(codebook.TFloat64)
		w.WriteFloat64(lit.Value.(float64))
	case expr.VBool:
		w.WriteByte(codebook.TBool)
		if lit.Value.(bool) {
			w.WriteUint8(1)
		} else {
			w.WriteUint8(0)
		}
	case expr.VString:
		w.WriteByte(codebook.TString)
		return w.WriteString(lit.Value.(string))
	case expr.VBytes:
		w.WriteByte(codebook.TBytes)
		return w.WriteBytes(lit.Value.([]byte))
	case expr.VTimestamp:
		w.WriteByte(codebook.TTimestamp)
		w.WriteInt64(lit.Value.(int64))
	case expr.VNull:
		w.WriteByte(codebook.TNull)
	default:
		return fmt.Errorf("aill: unknown literal value type %d", lit.ValueType)
	}
	return nil
}

// Package decoder implements the AILL streaming decoder: a
// forward-only parser producing a tagged-variant expr.Expression tree
// from wire bytes, with precise offset-tagged errors.
package decoder

import (
	"fmt"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/expr"
	"github.com/jmpatri615/aill/wire"
)

// Decode parses one complete utterance from buf, starting at byte 0.
// It does not resynchronize on error: any fatal error aborts the
// entire decode, and recovery happens at an epoch boundary. Trailing
// bytes past END_UTTERANCE are ignored; use DecodeNext to consume
// several utterances from one buffer.
func Decode(buf []byte) (*expr.Utterance, error) {
	u, _, err := DecodeNext(buf)
	return u, err
}

// DecodeNext parses one utterance from the front of buf and also
// returns the number of bytes consumed, letting a caller walk a
// de-framed epoch payload carrying several utterances back to back.
func DecodeNext(buf []byte) (*expr.Utterance, int, error) {
	r := wire.NewReader(buf)

	start, err := r.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	if start != codebook.StartUtterance {
		return nil, 0, &StructuralError{Offset: 0, Expected: "START_UTTERANCE", Got: mnemonicOf(start)}
	}

	meta, err := decodeMetaHeader(r)
	if err != nil {
		return nil, 0, err
	}

	var body []expr.Expression
	for {
		peek, err := r.PeekByte()
		if err != nil {
			return nil, 0, err
		}
		if peek == codebook.EndUtterance {
			r.ReadByte()
			break
		}
		e, err := decodeExpression(r)
		if err != nil {
			return nil, 0, err
		}
		if e != nil {
			body = append(body, e)
		}
	}

	return &expr.Utterance{Meta: *meta, Body: body}, r.Offset(), nil
}

func mnemonicOf(code byte) string {
	e := codebook.Lookup(code)
	return fmt.Sprintf("0x%02X(%s)", code, e.Mnemonic)
}

func decodeMetaHeader(r *wire.Reader) (*expr.MetaHeader, error) {
	var meta expr.MetaHeader

	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if code != codebook.Confidence {
		return nil, &MetaMissing{Which: "CONFIDENCE"}
	}
	conf, err := r.ReadFloat16()
	if err != nil {
		return nil, err
	}
	meta.Confidence = conf

	code, err = r.ReadByte()
	if err != nil {
		return nil, err
	}
	if code != codebook.Priority {
		return nil, &MetaMissing{Which: "PRIORITY"}
	}
	prio, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	meta.Priority = prio

	code, err = r.ReadByte()
	if err != nil {
		return nil, err
	}
	if code != codebook.TimestampMeta {
		return nil, &MetaMissing{Which: "TIMESTAMP_META"}
	}
	tsUs, err := r.ReadInt64()
	if err != nil {
		return nil, err
	}
	meta.TimestampUs = tsUs

	seen := make(map[byte]bool)
	for {
		peek, err := r.PeekByte()
		if err != nil {
			// No more bytes at all: treat as end of header: the
			// subsequent body/END_UTTERANCE read will itself report
			// Truncated if that is wrong.
			return &meta, nil
		}
		switch peek {
		case codebook.SourceAgent, codebook.DestAgent, codebook.Seqnum,
			codebook.TraceID, codebook.TTL, codebook.Topic, codebook.VersionTag:
			// each optional meta code appears at most once
			if seen[peek] {
				return nil, &StructuralError{Offset: r.Offset(), Expected: "unique meta code", Got: mnemonicOf(peek)}
			}
			seen[peek] = true
		}
		switch peek {
		case codebook.SourceAgent:
			r.ReadByte()
			id, err := r.ReadUUID()
			if err != nil {
				return nil, err
			}
			meta.SourceAgent = &id
		case codebook.DestAgent:
			r.ReadByte()
			id, err := r.ReadUUID()
			if err != nil {
				return nil, err
			}
			meta.DestAgent = &id
		case codebook.Seqnum:
			r.ReadByte()
			v, err := r.ReadUint32()
			if err != nil {
				return nil, err
			}
			meta.Seqnum = &v
		case codebook.TraceID:
			r.ReadByte()
			v, err := r.ReadUint64()
			if err != nil {
				return nil, err
			}
			meta.TraceID = &v
		case codebook.TTL:
			r.ReadByte()
			v, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			meta.TTL = &v
		case codebook.Topic:
			r.ReadByte()
			v, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			meta.Topic = &v
		case codebook.VersionTag:
			r.ReadByte()
			major, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			minor, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			meta.VersionTag = &[2]uint16{major, minor}
		default:
			// Unknown meta code ends the header: a conservative,
			// forward-compatible stopping point.
			return &meta, nil
		}
	}
}

// decodeExpression reads and dispatches exactly one expression,
// recursing into prefix wrappers (pragmatic/modal/temporal) and
// containers (struct/list/map) as needed.
func decodeExpression(r *wire.Reader) (expr.Expression, error) {
	offset := r.Offset()
	code, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	entry := codebook.Lookup(code)

	switch entry.Category {
	case codebook.TypeMarker:
		return decodeLiteral(code, r)

	case codebook.Structure:
		switch code {
		case codebook.BeginStruct:
			return decodeStruct(r)
		case codebook.BeginList:
			return decodeList(r)
		case codebook.BeginMap:
			return decodeMap(r)
		default:
			return nil, &StructuralError{Offset: offset, Expected: "structure opener", Got: mnemonicOf(code)}
		}

	case codebook.Pragmatic:
		inner, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &expr.Pragmatic{Act: code, Inner: inner}, nil

	case codebook.Modality:
		return decodeModal(code, r)

	case codebook.Temporal:
		inner, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &expr.Temporal{Modifier: code, Inner: inner}, nil

	case codebook.Meta:
		switch code {
		case codebook.Confidence:
			value, err := r.ReadFloat16()
			if err != nil {
				return nil, err
			}
			inner, err := decodeExpression(r)
			if err != nil {
				return nil, err
			}
			return &expr.Annotated{Annotation: code, Confidence: value, Inner: inner}, nil
		case codebook.Label:
			label, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			inner, err := decodeExpression(r)
			if err != nil {
				return nil, err
			}
			return &expr.Annotated{Annotation: code, Label: label, Inner: inner}, nil
		case codebook.ContextRef:
			idx, err := r.ReadVarInt()
			if err != nil {
				return nil, err
			}
			return &expr.ContextRef{Index: idx}, nil
		default:
			return &expr.Opaque{Code: code, Mnemonic: entry.Mnemonic}, nil
		}

	case codebook.Escape:
		switch code {
		case codebook.EscapeL1, codebook.EscapeL2, codebook.EscapeL3:
			domainCode, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			level := map[byte]int{codebook.EscapeL1: 1, codebook.EscapeL2: 2, codebook.EscapeL3: 3}[code]
			return &expr.DomainRef{Level: level, DomainCode: domainCode}, nil
		case codebook.Extension:
			proposed, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			return &expr.Extension{Proposed: proposed}, nil
		case codebook.Comment:
			if _, err := r.ReadString(); err != nil {
				return nil, err
			}
			return nil, nil
		case codebook.Nop:
			return nil, nil
		default:
			return &expr.Opaque{Code: code, Mnemonic: entry.Mnemonic}, nil
		}

	default:
		// FrameControl (other than START/END), Quantifier, Logic,
		// Relational, Arithmetic, Reserved: surfaced as opaque. The
		// expression validator that would give these operands lives
		// above the codec.
		return &expr.Opaque{Code: code, Mnemonic: entry.Mnemonic}, nil
	}
}

func decodeModal(code byte, r *wire.Reader) (expr.Expression, error) {
	switch code {
	case codebook.Predicted:
		horizon, err := r.ReadFloat16()
		if err != nil {
			return nil, err
		}
		inner, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &expr.Modal{Modality: code, Inner: inner, Extra: &expr.ModalExtra{HasHorizon: true, HorizonMs: horizon}}, nil
	case codebook.Reported:
		reporter, err := r.ReadUUID()
		if err != nil {
			return nil, err
		}
		inner, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &expr.Modal{Modality: code, Inner: inner, Extra: &expr.ModalExtra{HasReporter: true, Reporter: reporter}}, nil
	default:
		inner, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &expr.Modal{Modality: code, Inner: inner}, nil
	}
}

func decodeLiteral(code byte, r *wire.Reader) (expr.Expression, error) {
	switch code {
	case codebook.TInt8:
		v, err := r.ReadInt8()
		return &expr.Literal{ValueType: expr.VInt8, Value: v}, err
	case codebook.TInt16:
		v, err := r.ReadInt16()
		return &expr.Literal{ValueType: expr.VInt16, Value: v}, err
	case codebook.TInt32:
		v, err := r.ReadInt32()
		return &expr.Literal{ValueType: expr.VInt32, Value: v}, err
	case codebook.TInt64:
		v, err := r.ReadInt64()
		return &expr.Literal{ValueType: expr.VInt64, Value: v}, err
	case codebook.TUint8:
		v, err := r.ReadUint8()
		return &expr.Literal{ValueType: expr.VUint8, Value: v}, err
	case codebook.TUint16:
		v, err := r.ReadUint16()
		return &expr.Literal{ValueType: expr.VUint16, Value: v}, err
	case codebook.TUint32:
		v, err := r.ReadUint32()
		return &expr.Literal{ValueType: expr.VUint32, Value: v}, err
	case codebook.TUint64:
		v, err := r.ReadUint64()
		return &expr.Literal{ValueType: expr.VUint64, Value: v}, err
	case codebook.TFloat16:
		v, err := r.ReadFloat16()
		return &expr.Literal{ValueType: expr.VFloat16, Value: v}, err
	case codebook.TFloat32:
		v, err := r.ReadFloat32()
		return &expr.Literal{ValueType: expr.VFloat32, Value: v}, err
	case codebook.TFloat64:
		v, err := r.ReadFloat64()
		return &expr.Literal{ValueType: expr.VFloat64, Value: v}, err
	case codebook.TBool:
		v, err := r.ReadUint8()
		return &expr.Literal{ValueType: expr.VBool, Value: v != 0}, err
	case codebook.TString:
		v, err := r.ReadString()
		return &expr.Literal{ValueType: expr.VString, Value: v}, err
	case codebook.TBytes:
		v, err := r.ReadBytes()
		return &expr.Literal{ValueType: expr.VBytes, Value: v}, err
	case codebook.TTimestamp:
		v, err := r.ReadInt64()
		return &expr.Literal{ValueType: expr.VTimestamp, Value: v}, err
	case codebook.TNull:
		return &expr.Literal{ValueType: expr.VNull, Value: nil}, nil
	default:
		return nil, &StructuralError{Offset: r.Offset() - 1, Expected: "type marker", Got: mnemonicOf(code)}
	}
}

func decodeStruct(r *wire.Reader) (expr.Expression, error) {
	s := expr.NewStruct()
	var positional uint16
	for {
		peek, err := r.PeekByte()
		if err != nil {
			return nil, err
		}
		if peek == codebook.EndStruct {
			r.ReadByte()
			return s, nil
		}
		if peek == codebook.FieldSep {
			r.ReadByte()
			continue
		}
		if peek == codebook.FieldID {
			r.ReadByte()
			id, err := r.ReadUint16()
			if err != nil {
				return nil, err
			}
			value, err := decodeExpression(r)
			if err != nil {
				return nil, err
			}
			s.Set(id, value)
			continue
		}
		value, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		s.Set(positional, value)
		positional++
	}
}

func decodeList(r *wire.Reader) (expr.Expression, error) {
	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	lst := &expr.List{Declared: count}
	for i := uint16(0); i < count; i++ {
		peek, perr := r.PeekByte()
		if perr != nil {
			lst.Incomplete = true
			return lst, nil
		}
		if peek == codebook.EndList {
			lst.Incomplete = true
			r.ReadByte()
			return lst, nil
		}
		e, err := decodeExpression(r)
		if err != nil {
			if isTruncated(err) {
				lst.Incomplete = true
				return lst, nil
			}
			return nil, err
		}
		if e != nil {
			lst.Elements = append(lst.Elements, e)
		}
	}
	end, err := r.ReadByte()
	if err != nil {
		lst.Incomplete = true
		return lst, nil
	}
	if end != codebook.EndList {
		return nil, &StructuralError{Offset: r.Offset() - 1, Expected: "END_LIST", Got: mnemonicOf(end)}
	}
	return lst, nil
}

func decodeMap(r *wire.Reader) (expr.Expression, error) {
	count, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	m := &expr.Map{Declared: count}
	for i := uint16(0); i < count; i++ {
		peek, perr := r.PeekByte()
		if perr != nil {
			m.Incomplete = true
			return m, nil
		}
		if peek == codebook.EndMap {
			m.Incomplete = true
			r.ReadByte()
			return m, nil
		}
		key, err := decodeExpression(r)
		if err != nil {
			if isTruncated(err) {
				m.Incomplete = true
				return m, nil
			}
			return nil, err
		}
		value, err := decodeExpression(r)
		if err != nil {
			if isTruncated(err) {
				m.Incomplete = true
				return m, nil
			}
			return nil, err
		}
		m.Pairs = append(m.Pairs, expr.MapPair{Key: key, Value: value})
	}
	end, err := r.ReadByte()
	if err != nil {
		m.Incomplete = true
		return m, nil
	}
	if end != codebook.EndMap {
		return nil, &StructuralError{Offset: r.Offset() - 1, Expected: "END_MAP", Got: mnemonicOf(end)}
	}
	return m, nil
}

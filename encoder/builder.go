// Package encoder implements the AILL structural encoder: a builder
// that emits wire bytes for an utterance, enforcing the mandatory
// meta-header order and container nesting.
package encoder

import (
	"fmt"
	"time"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/wire"
)

type lifecycle int

const (
	stateNew lifecycle = iota
	stateMetaMandatory
	stateMetaOptional
	stateBody
	stateDone
)

// BuilderStateError reports a builder method invoked in a lifecycle
// state that does not permit it.
type BuilderStateError struct {
	State lifecycle
	Op    string
}

func (e *BuilderStateError) Error() string {
	return fmt.Sprintf("aill: operation %q invalid in builder state %d", e.Op, e.State)
}

type openKind int

const (
	openStruct openKind = iota
	openList
	openMap
)

// Builder is a single-utterance, single-writer byte-stream builder.
// Each session endpoint owns exactly one; it is not safe for
// concurrent use.
type Builder struct {
	w     *wire.Writer
	state lifecycle
	stack []openKind
}

func New() *Builder {
	return &Builder{w: wire.NewWriter()}
}

func (b *Builder) fail(op string) error {
	return &BuilderStateError{State: b.state, Op: op}
}

// StartUtterance begins a new utterance and writes the mandatory
// CONFIDENCE/PRIORITY/TIMESTAMP_META triplet in fixed order. A nil
// timestampUs means "use current wall-clock microseconds"; pass a
// pointer to emit an explicit value (including an explicit zero).
func (b *Builder) StartUtterance(confidence float32, priority uint8, timestampUs *int64) (*Builder, error) {
	if b.state != stateNew {
		return b, b.fail("StartUtterance")
	}
	b.w.WriteByte(codebook.StartUtterance)
	b.w.WriteByte(codebook.Confidence)
	b.w.WriteFloat16(confidence)
	b.w.WriteByte(codebook.Priority)
	b.w.WriteUint8(priority)
	ts := time.Now().UnixMicro()
	if timestampUs != nil {
		ts = *timestampUs
	}
	b.w.WriteByte(codebook.TimestampMeta)
	b.w.WriteInt64(ts)
	b.state = stateMetaOptional
	return b, nil
}

func (b *Builder) requireMetaOptional(op string) error {
	if b.state != stateMetaOptional {
		return b.fail(op)
	}
	return nil
}

func (b *Builder) DestAgent(id [16]byte) (*Builder, error) {
	if err := b.requireMetaOptional("DestAgent"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.DestAgent)
	b.w.WriteUUID(id)
	return b, nil
}

func (b *Builder) SourceAgent(id [16]byte) (*Builder, error) {
	if err := b.requireMetaOptional("SourceAgent"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.SourceAgent)
	b.w.WriteUUID(id)
	return b, nil
}

func (b *Builder) Seqnum(v uint32) (*Builder, error) {
	if err := b.requireMetaOptional("Seqnum"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Seqnum)
	b.w.WriteUint32(v)
	return b, nil
}

func (b *Builder) TraceID(v uint64) (*Builder, error) {
	if err := b.requireMetaOptional("TraceID"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TraceID)
	b.w.WriteUint64(v)
	return b, nil
}

func (b *Builder) TTL(v uint16) (*Builder, error) {
	if err := b.requireMetaOptional("TTL"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TTL)
	b.w.WriteUint16(v)
	return b, nil
}

func (b *Builder) Topic(v uint16) (*Builder, error) {
	if err := b.requireMetaOptional("Topic"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Topic)
	b.w.WriteUint16(v)
	return b, nil
}

func (b *Builder) VersionTag(major, minor uint16) (*Builder, error) {
	if err := b.requireMetaOptional("VersionTag"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.VersionTag)
	b.w.WriteUint16(major)
	b.w.WriteUint16(minor)
	return b, nil
}

// enterBody transitions from the optional-meta region to the body on
// first body emission, the encode-side mirror of the decoder's
// "unknown meta code ends the header" policy.
func (b *Builder) enterBody() {
	if b.state == stateMetaOptional {
		b.state = stateBody
	}
}

func (b *Builder) requireBody(op string) error {
	b.enterBody()
	if b.state != stateBody {
		return b.fail(op)
	}
	return nil
}

// EndUtterance closes the utterance. All containers opened with
// Begin* must already be closed.
func (b *Builder) EndUtterance() (*Builder, error) {
	if err := b.requireBody("EndUtterance"); err != nil {
		return b, err
	}
	if len(b.stack) != 0 {
		return b, b.fail("EndUtterance: unclosed container")
	}
	b.w.WriteByte(codebook.EndUtterance)
	b.state = stateDone
	return b, nil
}

// Abort emits an ABORT frame control byte and resets the builder's
// lifecycle state to stateNew, letting the caller start a fresh
// utterance. Bytes already written are never rolled back; the caller
// owns the decision to discard or keep them.
func (b *Builder) Abort() *Builder {
	b.w.WriteByte(codebook.Abort)
	b.state = stateNew
	b.stack = nil
	return b
}

// Bytes returns the accumulated wire bytes. Valid once EndUtterance
// has been called, but may be inspected mid-build for diagnostics.
func (b *Builder) Bytes() []byte { return b.w.Buf }

// CurrentSize returns the number of bytes written so far.
func (b *Builder) CurrentSize() int { return b.w.Len() }

// --- pragmatic acts ---

func (b *Builder) pragmatic(act byte, op string, inner func() error) (*Builder, error) {
	if err := b.requireBody(op); err != nil {
		return b, err
	}
	b.w.WriteByte(act)
	if err := inner(); err != nil {
		return b, err
	}
	return b, nil
}

func (b *Builder) Query(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Query, "Query", inner)
}
func (b *Builder) Assert(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Assert, "Assert", inner)
}
func (b *Builder) Request(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Request, "Request", inner)
}
func (b *Builder) Command(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Command, "Command", inner)
}
func (b *Builder) Acknowledge(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Acknowledge, "Acknowledge", inner)
}
func (b *Builder) Warn(inner func() error) (*Builder, error) {
	return b.pragmatic(codebook.Warn, "Warn", inner)
}

// --- modality / temporal ---

func (b *Builder) Modal(modality byte, inner func() error) (*Builder, error) {
	if err := b.requireBody("Modal"); err != nil {
		return b, err
	}
	b.w.WriteByte(modality)
	if err := inner(); err != nil {
		return b, err
	}
	return b, nil
}

// Predicted emits PREDICTED with its horizon_ms (f16) prefix, followed
// by the inner expression.
func (b *Builder) Predicted(horizonMs float32, inner func() error) (*Builder, error) {
	if err := b.requireBody("Predicted"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Predicted)
	b.w.WriteFloat16(horizonMs)
	if err := inner(); err != nil {
		return b, err
	}
	return b, nil
}

// Reported emits REPORTED with its reporter uuid prefix, followed by
// the inner expression.
func (b *Builder) Reported(reporter [16]byte, inner func() error) (*Builder, error) {
	if err := b.requireBody("Reported"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Reported)
	b.w.WriteUUID(reporter)
	if err := inner(); err != nil {
		return b, err
	}
	return b, nil
}

func (b *Builder) Temporal(modifier byte, inner func() error) (*Builder, error) {
	if err := b.requireBody("Temporal"); err != nil {
		return b, err
	}
	b.w.WriteByte(modifier)
	if err := inner(); err != nil {
		return b, err
	}
	return b, nil
}

// --- structure ---

func (b *Builder) BeginStruct() (*Builder, error) {
	if err := b.requireBody("BeginStruct"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.BeginStruct)
	b.stack = append(b.stack, openStruct)
	return b, nil
}

func (b *Builder) FieldID(id uint16) (*Builder, error) {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1] != openStruct {
		return b, b.fail("FieldID: not inside a struct")
	}
	b.w.WriteByte(codebook.FieldID)
	b.w.WriteUint16(id)
	return b, nil
}

// FieldSep emits an optional separator between struct fields. Decoders
// skip it.
func (b *Builder) FieldSep() (*Builder, error) {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1] != openStruct {
		return b, b.fail("FieldSep: not inside a struct")
	}
	b.w.WriteByte(codebook.FieldSep)
	return b, nil
}

func (b *Builder) EndStruct() (*Builder, error) {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1] != openStruct {
		return b, b.fail("EndStruct: no open struct")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.w.WriteByte(codebook.EndStruct)
	return b, nil
}

func (b *Builder) BeginList(count uint16) (*Builder, error) {
	if err := b.requireBody("BeginList"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.BeginList)
	b.w.WriteUint16(count)
	b.stack = append(b.stack, openList)
	return b, nil
}

func (b *Builder) EndList() (*Builder, error) {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1] != openList {
		return b, b.fail("EndList: no open list")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.w.WriteByte(codebook.EndList)
	return b, nil
}

func (b *Builder) BeginMap(count uint16) (*Builder, error) {
	if err := b.requireBody("BeginMap"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.BeginMap)
	b.w.WriteUint16(count)
	b.stack = append(b.stack, openMap)
	return b, nil
}

func (b *Builder) EndMap() (*Builder, error) {
	if len(b.stack) == 0 || b.stack[len(b.stack)-1] != openMap {
		return b, b.fail("EndMap: no open map")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.w.WriteByte(codebook.EndMap)
	return b, nil
}

// ListOfFloat32 is a convenience for the common "list of homogeneous
// float32 values" body shape used throughout the scenario examples.
func (b *Builder) ListOfFloat32(values []float32) (*Builder, error) {
	if _, err := b.BeginList(uint16(len(values))); err != nil {
		return b, err
	}
	for _, v := range values {
		if _, err := b.Float32(v); err != nil {
			return b, err
		}
	}
	return b.EndList()
}

func (b *Builder) ListOfInt32(values []int32) (*Builder, error) {
	if _, err := b.BeginList(uint16(len(values))); err != nil {
		return b, err
	}
	for _, v := range values {
		if _, err := b.Int32(v); err != nil {
			return b, err
		}
	}
	return b.EndList()
}

// --- typed literals ---

func (b *Builder) Int8(v int8) (*Builder, error) {
	if err := b.requireBody("Int8"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TInt8)
	b.w.WriteInt8(v)
	return b, nil
}

func (b *Builder) Int16(v int16) (*Builder, error) {
	if err := b.requireBody("Int16"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TInt16)
	b.w.WriteInt16(v)
	return b, nil
}

func (b *Builder) Int32(v int32) (*Builder, error) {
	if err := b.requireBody("Int32"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TInt32)
	b.w.WriteInt32(v)
	return b, nil
}

func (b *Builder) Int64(v int64) (*Builder, error) {
	if err := b.requireBody("Int64"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TInt64)
	b.w.WriteInt64(v)
	return b, nil
}

func (b *Builder) Uint8(v uint8) (*Builder, error) {
	if err := b.requireBody("Uint8"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TUint8)
	b.w.WriteUint8(v)
	return b, nil
}

func (b *Builder) Uint16(v uint16) (*Builder, error) {
	if err := b.requireBody("Uint16"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TUint16)
	b.w.WriteUint16(v)
	return b, nil
}

func (b *Builder) Uint32(v uint32) (*Builder, error) {
	if err := b.requireBody("Uint32"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TUint32)
	b.w.WriteUint32(v)
	return b, nil
}

func (b *Builder) Uint64(v uint64) (*Builder, error) {
	if err := b.requireBody("Uint64"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TUint64)
	b.w.WriteUint64(v)
	return b, nil
}

func (b *Builder) Float16(v float32) (*Builder, error) {
	if err := b.requireBody("Float16"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TFloat16)
	b.w.WriteFloat16(v)
	return b, nil
}

func (b *Builder) Float32(v float32) (*Builder, error) {
	if err := b.requireBody("Float32"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TFloat32)
	b.w.WriteFloat32(v)
	return b, nil
}

func (b *Builder) Float64(v float64) (*Builder, error) {
	if err := b.requireBody("Float64"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TFloat64)
	b.w.WriteFloat64(v)
	return b, nil
}

func (b *Builder) Bool(v bool) (*Builder, error) {
	if err := b.requireBody("Bool"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TBool)
	if v {
		b.w.WriteUint8(1)
	} else {
		b.w.WriteUint8(0)
	}
	return b, nil
}

func (b *Builder) String(v string) (*Builder, error) {
	if err := b.requireBody("String"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TString)
	if err := b.w.WriteString(v); err != nil {
		return b, err
	}
	return b, nil
}

func (b *Builder) Raw(v []byte) (*Builder, error) {
	if err := b.requireBody("Raw"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TBytes)
	if err := b.w.WriteBytes(v); err != nil {
		return b, err
	}
	return b, nil
}

func (b *Builder) Timestamp(v int64) (*Builder, error) {
	if err := b.requireBody("Timestamp"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TTimestamp)
	b.w.WriteInt64(v)
	return b, nil
}

func (b *Builder) Null() (*Builder, error) {
	if err := b.requireBody("Null"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.TNull)
	return b, nil
}

// --- references, annotations, operators ---

func (b *Builder) DomainRef(level int, domainCode uint16) (*Builder, error) {
	if err := b.requireBody("DomainRef"); err != nil {
		return b, err
	}
	var code byte
	switch level {
	case 1:
		code = codebook.EscapeL1
	case 2:
		code = codebook.EscapeL2
	case 3:
		code = codebook.EscapeL3
	default:
		return b, &wire.RangeError{Value: level, Want: "domain ref level in 1..3"}
	}
	b.w.WriteByte(code)
	b.w.WriteUint16(domainCode)
	return b, nil
}

func (b *Builder) ContextRef(index uint32) (*Builder, error) {
	if err := b.requireBody("ContextRef"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.ContextRef)
	return b, b.w.WriteVarInt(index)
}

// Extension emits an EXTENSION escape with its u16 proposed code. The
// binding of the proposed code to a definition is conventionally
// carried by a following Label plus definition struct; the codec does
// not formalize it.
func (b *Builder) Extension(proposed uint16) (*Builder, error) {
	if err := b.requireBody("Extension"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Extension)
	b.w.WriteUint16(proposed)
	return b, nil
}

func (b *Builder) Confidence(value float32, inner func() error) (*Builder, error) {
	if err := b.requireBody("Confidence"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Confidence)
	b.w.WriteFloat16(value)
	return b, inner()
}

func (b *Builder) Label(label string, inner func() error) (*Builder, error) {
	if err := b.requireBody("Label"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Label)
	if err := b.w.WriteString(label); err != nil {
		return b, err
	}
	return b, inner()
}

// Op emits a single opcode (Arithmetic/Logic/Relational/Quantifier
// category byte); callers are responsible for emitting the operand
// expressions matching its arity (see codebook.IsBinaryOp et al.).
func (b *Builder) Op(code byte) (*Builder, error) {
	if err := b.requireBody("Op"); err != nil {
		return b, err
	}
	b.w.WriteByte(code)
	return b, nil
}

func (b *Builder) Comment(text string) (*Builder, error) {
	if err := b.requireBody("Comment"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Comment)
	return b, b.w.WriteString(text)
}

func (b *Builder) Nop() (*Builder, error) {
	if err := b.requireBody("Nop"); err != nil {
		return b, err
	}
	b.w.WriteByte(codebook.Nop)
	return b, nil
}

// Package expr defines the AILL expression tree: the decoder's output
// type and the encoder's input type, a closed set of tagged variants
// behind the Expression interface.
package expr

// Kind discriminates the concrete type behind an Expression.
type Kind int

const (
	KindLiteral Kind = iota
	KindStruct
	KindList
	KindMap
	KindPragmatic
	KindModal
	KindTemporal
	KindDomainRef
	KindContextRef
	KindAnnotated
	KindExtension
	KindOpaque
)

// Expression is the common interface implemented by every node in a
// decoded or about-to-be-encoded utterance body.
type Expression interface {
	Kind() Kind
}

// ValueType tags the concrete Go type carried by a Literal.
type ValueType int

const (
	VInt8 ValueType = iota
	VInt16
	VInt32
	VInt64
	VUint8
	VUint16
	VUint32
	VUint64
	VFloat16
	VFloat32
	VFloat64
	VBool
	VString
	VBytes
	VTimestamp
	VNull
)

// Literal wraps one typed scalar value.
type Literal struct {
	ValueType ValueType
	Value     any
}

func (Literal) Kind() Kind { return KindLiteral }

// Struct carries an ordered set of fields keyed by a u16 field id (or
// a positional index when no FIELD_ID preceded the value). Duplicate
// field ids are last-write-wins.
type Struct struct {
	Order  []uint16
	Fields map[uint16]Expression
}

func (Struct) Kind() Kind { return KindStruct }

// NewStruct returns an empty Struct ready for Set.
func NewStruct() *Struct {
	return &Struct{Fields: make(map[uint16]Expression)}
}

// Set assigns field id to value, appending id to Order only the first
// time it is seen (later Set calls overwrite the value in place).
func (s *Struct) Set(id uint16, value Expression) {
	if _, exists := s.Fields[id]; !exists {
		s.Order = append(s.Order, id)
	}
	s.Fields[id] = value
}

// List carries a declared element count and the elements actually
// decoded. Incomplete is set when the stream ended before Declared
// elements were read.
type List struct {
	Declared   uint16
	Elements   []Expression
	Incomplete bool
}

func (List) Kind() Kind { return KindList }

// MapPair is one key-value entry of a Map.
type MapPair struct {
	Key   Expression
	Value Expression
}

// Map carries a declared pair count and the pairs actually decoded.
type Map struct {
	Declared   uint16
	Pairs      []MapPair
	Incomplete bool
}

func (Map) Kind() Kind { return KindMap }

// Pragmatic wraps an inner expression with a speech-act classification
// (ASSERT, QUERY, COMMAND, ...).
type Pragmatic struct {
	Act   byte
	Inner Expression
}

func (Pragmatic) Kind() Kind { return KindPragmatic }

// ModalExtra carries the payload that follows PREDICTED (horizon_ms)
// or REPORTED (reporter uuid). Exactly one of the two is set.
type ModalExtra struct {
	HasHorizon  bool
	HorizonMs   float32
	HasReporter bool
	Reporter    [16]byte
}

// Modal wraps an inner expression with an epistemic qualifier
// (OBSERVED, INFERRED, PREDICTED, CERTAIN, ...).
type Modal struct {
	Modality byte
	Inner    Expression
	Extra    *ModalExtra
}

func (Modal) Kind() Kind { return KindModal }

// Temporal wraps an inner expression with a temporal modifier
// (PAST, T_BEFORE, T_NOW, ...).
type Temporal struct {
	Modifier byte
	Inner    Expression
}

func (Temporal) Kind() Kind { return KindTemporal }

// DomainRef names a domain codebook entry via an ESCAPE_L{1,2,3} level
// and a u16 domain code.
type DomainRef struct {
	Level      int
	DomainCode uint16
}

func (DomainRef) Kind() Kind { return KindDomainRef }

// ContextRef names a previously interned value in the Session Context
// Table by its short index.
type ContextRef struct {
	Index uint32
}

func (ContextRef) Kind() Kind { return KindContextRef }

// Annotated wraps an inner expression with a CONFIDENCE or LABEL
// annotation. The inner expression is always attached.
type Annotated struct {
	Annotation byte
	// Confidence is set when Annotation == codebook.Confidence.
	Confidence float32
	// Label is set when Annotation == codebook.Label.
	Label string
	Inner Expression
}

func (Annotated) Kind() Kind { return KindAnnotated }

// Extension carries a proposed extension code. Its binding to a
// definition (the LABEL + struct that conventionally follows) stays an
// opaque annotation pair registered out-of-band.
type Extension struct {
	Proposed uint16
}

func (Extension) Kind() Kind { return KindExtension }

// Opaque represents a reserved or otherwise unrecognized code that the
// decoder could not interpret structurally.
type Opaque struct {
	Code     byte
	Mnemonic string
}

func (Opaque) Kind() Kind { return KindOpaque }

// MetaHeader is the mandatory utterance prefix plus any optional meta
// annotations that followed it. Each optional field is nil when absent;
// the order in which the optional annotations appeared is not recorded.
type MetaHeader struct {
	Confidence  float32
	Priority    uint8
	TimestampUs int64

	SourceAgent *[16]byte
	DestAgent   *[16]byte
	Seqnum      *uint32
	TraceID     *uint64
	TTL         *uint16
	Topic       *uint16
	VersionTag  *[2]uint16
}

// Utterance is one complete decoded/encoded message.
type Utterance struct {
	Meta MetaHeader
	Body []Expression
}

package codebook

// Base code constants, the full AILL v1.1 single-byte assignment.
const (
	// FrameControl 0x00-0x0F
	StartUtterance byte = 0x00
	EndUtterance   byte = 0x01
	Abort          byte = 0x02
	Pause          byte = 0x03
	Resume         byte = 0x04
	Retransmit     byte = 0x05
	AckEpoch       byte = 0x06
	NackEpoch      byte = 0x07
	SyncMark       byte = 0x08
	FragmentStart  byte = 0x09
	FragmentCont   byte = 0x0A
	FragmentEnd    byte = 0x0B
	EchoRequest    byte = 0x0C
	EchoReply      byte = 0x0D

	// TypeMarker 0x10-0x1F
	TInt8      byte = 0x10
	TInt16     byte = 0x11
	TInt32     byte = 0x12
	TInt64     byte = 0x13
	TUint8     byte = 0x14
	TUint16    byte = 0x15
	TUint32    byte = 0x16
	TUint64    byte = 0x17
	TFloat16   byte = 0x18
	TFloat32   byte = 0x19
	TFloat64   byte = 0x1A
	TBool      byte = 0x1B
	TString    byte = 0x1C
	TBytes     byte = 0x1D
	TTimestamp byte = 0x1E
	TNull      byte = 0x1F

	// Structure 0x20-0x2F
	BeginStruct byte = 0x20
	EndStruct   byte = 0x21
	FieldSep    byte = 0x22
	BeginList   byte = 0x23
	EndList     byte = 0x24
	BeginMap    byte = 0x25
	EndMap      byte = 0x26
	BeginTuple  byte = 0x27
	EndTuple    byte = 0x28
	FieldID     byte = 0x29
	BeginUnion  byte = 0x2A
	EndUnion    byte = 0x2B
	BeginOption byte = 0x2C
	EndOption   byte = 0x2D
	SchemaRef   byte = 0x2E

	// Quantifier 0x30-0x3F
	Forall       byte = 0x30
	Exists       byte = 0x31
	ExistsUnique byte = 0x32
	ExactlyN     byte = 0x33
	AtLeastN     byte = 0x34
	AtMostN      byte = 0x35
	CountQ       byte = 0x36
	ZeroQ        byte = 0x37
	OneQ         byte = 0x38
	FewQ         byte = 0x39
	ManyQ        byte = 0x3A
	AllQ         byte = 0x3B
	NoneQ        byte = 0x3C
	MostQ        byte = 0x3D
	Proportion   byte = 0x3E

	// Logic 0x40-0x4F
	And         byte = 0x40
	Or          byte = 0x41
	Not         byte = 0x42
	Xor         byte = 0x43
	Implies     byte = 0x44
	Iff         byte = 0x45
	Nand        byte = 0x46
	Nor         byte = 0x47
	IfThenElse  byte = 0x48
	Coalesce    byte = 0x49
	IsNull      byte = 0x4A
	IsType      byte = 0x4B

	// Relational 0x50-0x5F
	Eq          byte = 0x50
	Neq         byte = 0x51
	Lt          byte = 0x52
	Gt          byte = 0x53
	Lte         byte = 0x54
	Gte         byte = 0x55
	Approx      byte = 0x56
	Contains    byte = 0x57
	Subset      byte = 0x58
	Superset    byte = 0x59
	InRange     byte = 0x5A
	Matches     byte = 0x5B
	StartsWith  byte = 0x5C
	EndsWith    byte = 0x5D
	Between     byte = 0x5E

	// Temporal 0x60-0x6F
	Past          byte = 0x60
	Present       byte = 0x61
	Future        byte = 0x62
	Duration      byte = 0x63
	TBefore       byte = 0x64
	TAfter        byte = 0x65
	TDuring       byte = 0x66
	TSimultaneous byte = 0x67
	TStarts       byte = 0x68
	TFinishes     byte = 0x69
	TOverlaps     byte = 0x6A
	TMeets        byte = 0x6B
	TElapsed      byte = 0x6C
	TNow          byte = 0x6D
	TDeadline     byte = 0x6E

	// Modality 0x70-0x7F
	Certain        byte = 0x70
	Probable       byte = 0x71
	Possible       byte = 0x72
	Unlikely       byte = 0x73
	Uncertain      byte = 0x74
	Hypothetical   byte = 0x75
	Counterfactual byte = 0x76
	Obligatory     byte = 0x77
	Permitted      byte = 0x78
	Forbidden      byte = 0x79
	Inferred       byte = 0x7A
	Observed       byte = 0x7B
	Reported       byte = 0x7C
	Predicted      byte = 0x7D
	Desired        byte = 0x7E
	Undesired      byte = 0x7F

	// Pragmatic 0x80-0x8F
	Query       byte = 0x80
	Assert      byte = 0x81
	Request     byte = 0x82
	Command     byte = 0x83
	Acknowledge byte = 0x84
	Reject      byte = 0x85
	Clarify     byte = 0x86
	Correct     byte = 0x87
	Propose     byte = 0x88
	Accept      byte = 0x89
	Warn        byte = 0x8A
	Promise     byte = 0x8B
	Inform      byte = 0x8C
	Suggest     byte = 0x8D
	Greet       byte = 0x8E
	Farewell    byte = 0x8F

	// Meta 0x90-0x9F
	Confidence    byte = 0x90
	Priority      byte = 0x91
	SourceAgent   byte = 0x92
	DestAgent     byte = 0x93
	TimestampMeta byte = 0x94
	Seqnum        byte = 0x95
	HashRef       byte = 0x96
	Topic         byte = 0x97
	ContextRef    byte = 0x98
	EpochBoundary byte = 0x99
	Label         byte = 0x9A
	VersionTag    byte = 0x9B
	TraceID       byte = 0x9C
	Cost          byte = 0x9D
	TTL           byte = 0x9E

	// Arithmetic 0xA0-0xBF
	Add          byte = 0xA0
	Sub          byte = 0xA1
	Mul          byte = 0xA2
	Div          byte = 0xA3
	Mod          byte = 0xA4
	Pow          byte = 0xA5
	Sqrt         byte = 0xA6
	Log          byte = 0xA7
	Log10        byte = 0xA8
	Log2         byte = 0xA9
	Abs          byte = 0xAA
	Neg          byte = 0xAB
	Round        byte = 0xAC
	Floor        byte = 0xAD
	Ceil         byte = 0xAE
	Trunc        byte = 0xAF
	Min          byte = 0xB0
	Max          byte = 0xB1
	Sum          byte = 0xB2
	Mean         byte = 0xB3
	Median       byte = 0xB4
	Stddev       byte = 0xB5
	Variance     byte = 0xB6
	DotProduct   byte = 0xB7
	CrossProduct byte = 0xB8
	Norm         byte = 0xB9
	Clamp        byte = 0xBA
	Lerp         byte = 0xBB
	Sin          byte = 0xBC
	Cos          byte = 0xBD
	Atan2        byte = 0xBE
	Distance     byte = 0xBF

	// Escape 0xF0-0xFF
	EscapeL1     byte = 0xF0
	EscapeL2     byte = 0xF1
	EscapeL3     byte = 0xF2
	LiteralBytes byte = 0xF3
	CodebookRef  byte = 0xF4
	Extension    byte = 0xF5
	ExtAck       byte = 0xF6
	ExtNack      byte = 0xF7
	CodebookDef  byte = 0xF8
	CodebookAck  byte = 0xF9
	CodebookNack byte = 0xFA
	StreamID     byte = 0xFB
	Xref         byte = 0xFC
	Comment      byte = 0xFD
	Nop          byte = 0xFE
)

// CodeEntry describes one base codebook slot: its mnemonic and the
// category its byte range places it in.
type CodeEntry struct {
	Code     byte
	Mnemonic string
	Category Category
}

var mnemonics = map[byte]string{
	StartUtterance: "START_UTTERANCE", EndUtterance: "END_UTTERANCE", Abort: "ABORT",
	Pause: "PAUSE", Resume: "RESUME", Retransmit: "RETRANSMIT", AckEpoch: "ACK_EPOCH",
	NackEpoch: "NACK_EPOCH", SyncMark: "SYNC_MARK", FragmentStart: "FRAGMENT_START",
	FragmentCont: "FRAGMENT_CONT", FragmentEnd: "FRAGMENT_END", EchoRequest: "ECHO_REQUEST",
	EchoReply: "ECHO_REPLY",

	TInt8: "INT8", TInt16: "INT16", TInt32: "INT32", TInt64: "INT64",
	TUint8: "UINT8", TUint16: "UINT16", TUint32: "UINT32", TUint64: "UINT64",
	TFloat16: "FLOAT16", TFloat32: "FLOAT32", TFloat64: "FLOAT64",
	TBool: "BOOL", TString: "STRING", TBytes: "BYTES", TTimestamp: "TIMESTAMP", TNull: "NULL",

	BeginStruct: "BEGIN_STRUCT", EndStruct: "END_STRUCT", FieldSep: "FIELD_SEP",
	BeginList: "BEGIN_LIST", EndList: "END_LIST", BeginMap: "BEGIN_MAP", EndMap: "END_MAP",
	BeginTuple: "BEGIN_TUPLE", EndTuple: "END_TUPLE", FieldID: "FIELD_ID",
	BeginUnion: "BEGIN_UNION", EndUnion: "END_UNION", BeginOption: "BEGIN_OPTION",
	EndOption: "END_OPTION", SchemaRef: "SCHEMA_REF",

	Forall: "FORALL", Exists: "EXISTS", ExistsUnique: "EXISTS_UNIQUE", ExactlyN: "EXACTLY_N",
	AtLeastN: "AT_LEAST_N", AtMostN: "AT_MOST_N", CountQ: "COUNT", ZeroQ: "ZERO", OneQ: "ONE",
	FewQ: "FEW", ManyQ: "MANY", AllQ: "ALL", NoneQ: "NONE", MostQ: "MOST", Proportion: "PROPORTION",

	And: "AND", Or: "OR", Not: "NOT", Xor: "XOR", Implies: "IMPLIES", Iff: "IFF",
	Nand: "NAND", Nor: "NOR", IfThenElse: "IF_THEN_ELSE", Coalesce: "COALESCE",
	IsNull: "IS_NULL", IsType: "IS_TYPE",

	Eq: "EQ", Neq: "NEQ", Lt: "LT", Gt: "GT", Lte: "LTE", Gte: "GTE", Approx: "APPROX",
	Contains: "CONTAINS", Subset: "SUBSET", Superset: "SUPERSET", InRange: "IN_RANGE",
	Matches: "MATCHES", StartsWith: "STARTS_WITH", EndsWith: "ENDS_WITH", Between: "BETWEEN",

	Past: "PAST", Present: "PRESENT", Future: "FUTURE", Duration: "DURATION",
	TBefore: "T_BEFORE", TAfter: "T_AFTER", TDuring: "T_DURING", TSimultaneous: "T_SIMULTANEOUS",
	TStarts: "T_STARTS", TFinishes: "T_FINISHES", TOverlaps: "T_OVERLAPS", TMeets: "T_MEETS",
	TElapsed: "T_ELAPSED", TNow: "T_NOW", TDeadline: "T_DEADLINE",

	Certain: "CERTAIN", Probable: "PROBABLE", Possible: "POSSIBLE", Unlikely: "UNLIKELY",
	Uncertain: "UNCERTAIN", Hypothetical: "HYPOTHETICAL", Counterfactual: "COUNTERFACTUAL",
	Obligatory: "OBLIGATORY", Permitted: "PERMITTED", Forbidden: "FORBIDDEN",
	Inferred: "INFERRED", Observed: "OBSERVED", Reported: "REPORTED", Predicted: "PREDICTED",
	Desired: "DESIRED", Undesired: "UNDESIRED",

	Query: "QUERY", Assert: "ASSERT", Request: "REQUEST", Command: "COMMAND",
	Acknowledge: "ACKNOWLEDGE", Reject: "REJECT", Clarify: "CLARIFY", Correct: "CORRECT",
	Propose: "PROPOSE", Accept: "ACCEPT", Warn: "WARN", Promise: "PROMISE", Inform: "INFORM",
	Suggest: "SUGGEST", Greet: "GREET", Farewell: "FAREWELL",

	Confidence: "CONFIDENCE", Priority: "PRIORITY", SourceAgent: "SOURCE_AGENT",
	DestAgent: "DEST_AGENT", TimestampMeta: "TIMESTAMP_META", Seqnum: "SEQNUM",
	HashRef: "HASH_REF", Topic: "TOPIC", ContextRef: "CONTEXT_REF",
	EpochBoundary: "EPOCH_BOUNDARY", Label: "LABEL", VersionTag: "VERSION_TAG",
	TraceID: "TRACE_ID", Cost: "COST", TTL: "TTL",

	Add: "ADD", Sub: "SUB", Mul: "MUL", Div: "DIV", Mod: "MOD", Pow: "POW", Sqrt: "SQRT",
	Log: "LOG", Log10: "LOG10", Log2: "LOG2", Abs: "ABS", Neg: "NEG", Round: "ROUND",
	Floor: "FLOOR", Ceil: "CEIL", Trunc: "TRUNC", Min: "MIN", Max: "MAX", Sum: "SUM",
	Mean: "MEAN", Median: "MEDIAN", Stddev: "STDDEV", Variance: "VARIANCE",
	DotProduct: "DOT_PRODUCT", CrossProduct: "CROSS_PRODUCT", Norm: "NORM", Clamp: "CLAMP",
	Lerp: "LERP", Sin: "SIN", Cos: "COS", Atan2: "ATAN2", Distance: "DISTANCE",

	EscapeL1: "ESCAPE_L1", EscapeL2: "ESCAPE_L2", EscapeL3: "ESCAPE_L3",
	LiteralBytes: "LITERAL_BYTES", CodebookRef: "CODEBOOK_REF", Extension: "EXTENSION",
	ExtAck: "EXT_ACK", ExtNack: "EXT_NACK", CodebookDef: "CODEBOOK_DEF",
	CodebookAck: "CODEBOOK_ACK", CodebookNack: "CODEBOOK_NACK", StreamID: "STREAM_ID",
	Xref: "XREF", Comment: "COMMENT", Nop: "NOP",
}

// base is the total 256-entry table, built once at package init.
var base = buildBase()

func buildBase() [256]CodeEntry {
	var table [256]CodeEntry
	for i := 0; i < 256; i++ {
		code := byte(i)
		cat := categoryOf(code)
		mnem, ok := mnemonics[code]
		if !ok {
			mnem = reservedMnemonic(code, cat)
		}
		table[i] = CodeEntry{Code: code, Mnemonic: mnem, Category: cat}
	}
	return table
}

func reservedMnemonic(code byte, cat Category) string {
	if cat == Reserved {
		return "RESERVED"
	}
	return "UNASSIGNED"
}

// Lookup returns the base codebook entry for code. It is a total
// function: every value 0..255 has an entry, synthesizing a "RESERVED"
// or "UNASSIGNED" mnemonic for codes the standard tables leave open.
func Lookup(code byte) CodeEntry {
	return base[code]
}

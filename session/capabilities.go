// Package session implements the AILL channel characterization and
// handshake: a pure reduction of two peers' AgentCapabilities and one
// measured ChannelCharacterization into a negotiated SessionParams
// record. The handshake runs once, before data exchange, and
// parameterizes both endpoints.
package session

// Trace, when true, causes Negotiate to log its intermediate
// decisions. Off by default.
var Trace = false

// AgentCapabilities is one peer's declared capability record.
type AgentCapabilities struct {
	UUID                     [16]byte
	ProtocolVersion          uint16
	ConformanceLevel         uint8
	CapabilitiesBitmap       uint16
	MaxSampleRateKHz         uint16
	PreferredFrameDurationUs uint16
	NoiseFloorDbSPL          float32
	CodebookSets             []uint8
}

// Capability bitmap bits consulted by Negotiate.
const (
	CapBandsB2B3      uint16 = 0x01
	CapBandB4         uint16 = 0x02
	CapFountainFEC    uint16 = 0x10
	CapReedSolomonFEC uint16 = 0x20
)

// Magic optionally tags an AgentCapabilities utterance on the wire.
const Magic uint32 = 0xA111C0DE

// SessionParams is the negotiated policy both endpoints adopt.
type SessionParams struct {
	ConformanceLevel uint8
	Modulation       string
	ActiveBands      []string
	FrameDurationUs  uint16
	SampleRateKHz    uint16
	ErrorCorrection  string
	CodebookSets     []uint8
	SCTMaxSize       uint32
}

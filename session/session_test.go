package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandshakeSymmetry(t *testing.T) {
	a := AgentCapabilities{
		ConformanceLevel:   2,
		CapabilitiesBitmap: 0x007F,
		CodebookSets:       []uint8{1, 2, 5, 6},
	}
	b := AgentCapabilities{
		ConformanceLevel:   3,
		CapabilitiesBitmap: 0x03FF,
		CodebookSets:       []uint8{1, 2, 5, 6},
	}
	ch := ChannelCharacterization{EffectiveSNRDb: 28, RecommendedModulation: "16-QAM"}

	want := SessionParams{
		ConformanceLevel: 2,
		Modulation:       "16-QAM",
		ActiveBands:      []string{"B0", "B1", "B2", "B3"},
		ErrorCorrection:  "rate-1/2 conv + RS(255,223) + fountain",
		CodebookSets:     []uint8{1, 2, 5, 6},
		SCTMaxSize:       1024,
	}

	got := Negotiate(a, b, ch)
	require.Equal(t, want, got)

	// commutative: swapping peers yields the same result
	got2 := Negotiate(b, a, ch)
	require.Equal(t, want, got2)
}

func TestNegotiateLowConformanceSmallSCT(t *testing.T) {
	a := AgentCapabilities{ConformanceLevel: 1, CapabilitiesBitmap: 0, CodebookSets: []uint8{1}}
	b := AgentCapabilities{ConformanceLevel: 0, CapabilitiesBitmap: 0, CodebookSets: []uint8{1}}
	ch := ChannelCharacterization{EffectiveSNRDb: 5, RecommendedModulation: "BPSK"}

	got := Negotiate(a, b, ch)
	require.Equal(t, uint32(64), got.SCTMaxSize)
	require.Equal(t, []string{"B0", "B1"}, got.ActiveBands)
	require.Equal(t, "rate-1/2 conv", got.ErrorCorrection)
}

func TestCharacterizeModulationThresholds(t *testing.T) {
	cases := []struct {
		snr  float32
		want string
	}{
		{35, "64-QAM"},
		{25, "16-QAM"},
		{15, "QPSK"},
		{5, "BPSK"},
	}
	for _, c := range cases {
		cfg := ChannelConfig{SNRDb: c.snr, DistanceM: 0.1, ReverbRT60Ms: 0}
		ch := cfg.Characterize()
		require.Equal(t, c.want, ch.RecommendedModulation)
	}
}

func TestCharacterizeNearFieldAttenuation(t *testing.T) {
	// inside the 0.1 m near field there is no spreading loss at all
	cfg := ChannelConfig{SNRDb: 25, DistanceM: 0.05}
	require.Equal(t, float32(25), cfg.Characterize().EffectiveSNRDb)
}

func TestCharacterizePropagationDelay(t *testing.T) {
	// at 20 C sound travels 331.3 + 0.606*20 = 343.42 m/s
	cfg := ChannelConfig{SNRDb: 20, DistanceM: 343.42, TemperatureC: 20}
	require.InDelta(t, 1000.0, cfg.Characterize().PropagationDelayMs, 0.5)
}

func TestCharacterizeEffectiveSNRFloor(t *testing.T) {
	cfg := ChannelConfig{SNRDb: -50, DistanceM: 1000, ReverbRT60Ms: 1000}
	ch := cfg.Characterize()
	require.Equal(t, float32(-10), ch.EffectiveSNRDb)
}

func TestGuardIntervalSteps(t *testing.T) {
	require.Equal(t, float32(0.3), recommendGuardInterval(50))
	require.Equal(t, float32(0.5), recommendGuardInterval(150))
	require.Equal(t, float32(0.8), recommendGuardInterval(450))
	require.Equal(t, float32(1.2), recommendGuardInterval(900))
}

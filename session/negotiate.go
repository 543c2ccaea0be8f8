package session

import (
	"log"
	"sort"
)

// Negotiate is a pure function (no I/O, no retries) reducing two
// peers' capabilities and one channel characterization into a session
// policy both endpoints adopt. It is commutative in every field that
// uses a symmetric operator (min/AND/intersection); CodebookSets is
// sorted so it is equal regardless of argument order too.
func Negotiate(a, b AgentCapabilities, ch ChannelCharacterization) SessionParams {
	conformance := a.ConformanceLevel
	if b.ConformanceLevel < conformance {
		conformance = b.ConformanceLevel
	}

	commonCaps := a.CapabilitiesBitmap & b.CapabilitiesBitmap

	sampleRate := a.MaxSampleRateKHz
	if b.MaxSampleRateKHz < sampleRate {
		sampleRate = b.MaxSampleRateKHz
	}

	frameDuration := a.PreferredFrameDurationUs
	if b.PreferredFrameDurationUs > frameDuration {
		frameDuration = b.PreferredFrameDurationUs
	}

	bands := []string{"B0", "B1"}
	if commonCaps&CapBandsB2B3 != 0 && ch.EffectiveSNRDb >= 20 {
		bands = append(bands, "B2", "B3")
	}
	// B4 additionally requires Full (3) conformance: a lower
	// conformance level is a hard cap on feature availability
	// regardless of bitmap and channel headroom.
	if commonCaps&CapBandB4 != 0 && ch.EffectiveSNRDb >= 25 && conformance >= 3 {
		bands = append(bands, "B4")
	}

	ec := "rate-1/2 conv"
	if commonCaps&CapReedSolomonFEC != 0 {
		ec += " + RS(255,223)"
	}
	if commonCaps&CapFountainFEC != 0 {
		ec += " + fountain"
	}

	codebookSets := intersectSorted(a.CodebookSets, b.CodebookSets)

	sctMax := uint32(64)
	if conformance >= 2 {
		sctMax = 1024
	}

	params := SessionParams{
		ConformanceLevel: conformance,
		Modulation:       ch.RecommendedModulation,
		ActiveBands:      bands,
		FrameDurationUs:  frameDuration,
		SampleRateKHz:    sampleRate,
		ErrorCorrection:  ec,
		CodebookSets:     codebookSets,
		SCTMaxSize:       sctMax,
	}

	if Trace {
		log.Printf("aill/session: negotiated %+v (common_caps=%#04x, eff_snr=%.1fdB)", params, commonCaps, ch.EffectiveSNRDb)
	}

	return params
}

func intersectSorted(a, b []uint8) []uint8 {
	inB := make(map[uint8]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	var out []uint8
	seen := make(map[uint8]bool)
	for _, v := range a {
		if inB[v] && !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package session

import "math"

// ChannelConfig is the acoustic channel's configuration, consulted
// only for its pure characterization arithmetic. Bit-error injection
// and waveform simulation live with the channel itself.
type ChannelConfig struct {
	SNRDb                 float32
	DistanceM             float32
	ReverbRT60Ms          float32
	TemperatureC          float32
	HumidityPct           float32
	MultipathTaps         uint8
	FreqResponseRolloffDb float32
	DopplerShiftHz        float32
}

// ChannelCharacterization is the derived, per-link measurement that
// Negotiate consumes.
type ChannelCharacterization struct {
	EffectiveSNRDb             float32
	PropagationDelayMs         float32
	RecommendedModulation      string
	ReverbRT60Ms               float32
	MaxBands                   string
	RecommendedGuardIntervalMs float32
}

// speedOfSoundMS approximates the speed of sound in air as a function
// of temperature.
func speedOfSoundMS(temperatureC float32) float32 {
	return 331.3 + 0.606*temperatureC
}

// Characterize derives a ChannelCharacterization from cfg. Effective
// SNR is the nominal SNR less 20*log10(distance) spherical-spreading
// attenuation and a reverberation penalty, floored at -10 dB.
func (cfg ChannelConfig) Characterize() ChannelCharacterization {
	// Spherical spreading loss, zero inside the 0.1 m near field.
	var attenuationDb float32
	if cfg.DistanceM > 0.1 {
		attenuationDb = float32(20 * math.Log10(float64(cfg.DistanceM)))
	}

	reverbPenalty := (cfg.ReverbRT60Ms - 100) * 0.01
	if reverbPenalty < 0 {
		reverbPenalty = 0
	}
	if reverbPenalty > 6 {
		reverbPenalty = 6
	}

	effSNR := cfg.SNRDb - attenuationDb - reverbPenalty
	if effSNR < -10 {
		effSNR = -10
	}

	v := speedOfSoundMS(cfg.TemperatureC)
	delayMs := cfg.DistanceM / v * 1000

	return ChannelCharacterization{
		EffectiveSNRDb:             effSNR,
		PropagationDelayMs:         delayMs,
		RecommendedModulation:      recommendModulation(effSNR),
		ReverbRT60Ms:               cfg.ReverbRT60Ms,
		MaxBands:                   recommendBands(effSNR),
		RecommendedGuardIntervalMs: recommendGuardInterval(cfg.ReverbRT60Ms),
	}
}

func recommendModulation(effSNRDb float32) string {
	switch {
	case effSNRDb >= 30:
		return "64-QAM"
	case effSNRDb >= 20:
		return "16-QAM"
	case effSNRDb >= 10:
		return "QPSK"
	default:
		return "BPSK"
	}
}

func recommendBands(effSNRDb float32) string {
	switch {
	case effSNRDb >= 30:
		return "B0-B4"
	case effSNRDb >= 20:
		return "B0-B3"
	case effSNRDb >= 10:
		return "B0-B2"
	default:
		return "B0-B1"
	}
}

func recommendGuardInterval(rt60Ms float32) float32 {
	switch {
	case rt60Ms < 100:
		return 0.3
	case rt60Ms < 300:
		return 0.5
	case rt60Ms < 600:
		return 0.8
	default:
		return 1.2
	}
}

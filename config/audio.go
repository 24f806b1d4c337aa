package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundPop
	SoundAchievement
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveform selects how a sound effect is synthesized
type Waveform int

const (
	WaveNoise Waveform = iota // filtered white noise burst
	WaveSine                  // sine with a linear pitch sweep
	WaveBell                  // sine plus inharmonic partials
)

// ToneSpec describes a synthesized sound effect
type ToneSpec struct {
	Wave       Waveform
	Freq       float64 // start frequency in Hz, unused for noise
	FreqEnd    float64 // end frequency in Hz, 0 keeps Freq
	DurationMs int
	Decay      float64 // exponential decay rate per second
	Gain       float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	SFX               map[SoundID]ToneSpec
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]ToneSpec{
			SoundPop:          {Wave: WaveNoise, DurationMs: 120, Decay: 35, Gain: 0.9},
			SoundAchievement:  {Wave: WaveBell, Freq: 880, DurationMs: 900, Decay: 4, Gain: 0.5},
			SoundMenuNavigate: {Wave: WaveSine, Freq: 660, DurationMs: 50, Decay: 20, Gain: 0.4},
			SoundMenuSelect:   {Wave: WaveSine, Freq: 880, FreqEnd: 1320, DurationMs: 90, Decay: 12, Gain: 0.4},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundAchievement: 0.8,
		},
	}
}

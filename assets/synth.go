package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/automoto/balloonpop/config"
)

// attackSeconds is the linear fade-in that keeps sounds from clicking.
const attackSeconds = 0.002

// Synthesize renders a sound effect as 16-bit little-endian stereo PCM, the
// format audio.Context.NewPlayer expects. Output is deterministic.
func Synthesize(spec config.ToneSpec, sampleRate int) []byte {
	n := sampleRate * spec.DurationMs / 1000
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)

	rng := rand.New(rand.NewSource(1))
	freqEnd := spec.FreqEnd
	if freqEnd == 0 {
		freqEnd = spec.Freq
	}

	var phase, lowpass float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)

		env := math.Exp(-spec.Decay * t)
		if t < attackSeconds {
			env *= t / attackSeconds
		}

		var s float64
		switch spec.Wave {
		case config.WaveNoise:
			lowpass += 0.35 * (rng.Float64()*2 - 1 - lowpass)
			s = lowpass * 2
		case config.WaveSine:
			freq := spec.Freq + (freqEnd-spec.Freq)*progress
			phase += 2 * math.Pi * freq / float64(sampleRate)
			s = math.Sin(phase)
		case config.WaveBell:
			phase += 2 * math.Pi * spec.Freq / float64(sampleRate)
			s = (math.Sin(phase) + 0.5*math.Sin(2.76*phase) + 0.25*math.Sin(5.4*phase)) / 1.75
		}

		v := spec.Gain * env * max(-1, min(1, s))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}

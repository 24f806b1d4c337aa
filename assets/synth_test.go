package assets

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/automoto/balloonpop/config"
)

func TestSynthesizeLengthAndBounds(t *testing.T) {
	const rate = 44100
	for id, spec := range config.Sound.SFX {
		pcm := Synthesize(spec, rate)
		wantSamples := rate * spec.DurationMs / 1000
		if len(pcm) != wantSamples*4 {
			t.Errorf("sound %d: %d bytes, want %d", id, len(pcm), wantSamples*4)
			continue
		}

		peak := 0.0
		for i := 0; i+3 < len(pcm); i += 4 {
			l := int16(binary.LittleEndian.Uint16(pcm[i:]))
			r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
			if l != r {
				t.Fatalf("sound %d: channels differ at frame %d", id, i/4)
			}
			peak = max(peak, math.Abs(float64(l)))
		}
		if peak == 0 {
			t.Errorf("sound %d is silent", id)
		}
		if limit := spec.Gain*math.MaxInt16 + 1; peak > limit {
			t.Errorf("sound %d: peak %v above gain limit %v", id, peak, limit)
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	spec := config.Sound.SFX[config.SoundPop]
	if !bytes.Equal(Synthesize(spec, 22050), Synthesize(spec, 22050)) {
		t.Fatal("two renders of the same sound differ")
	}
}

func TestSynthesizeStartsSilentAndDecays(t *testing.T) {
	spec := config.ToneSpec{Wave: config.WaveSine, Freq: 440, DurationMs: 500, Decay: 10, Gain: 1}
	pcm := Synthesize(spec, 44100)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Errorf("first sample = %d, want 0 from the fade-in", first)
	}

	// exp(-10 * 0.45) is about 1% of full scale
	tail := 0.0
	for i := len(pcm) - 4*2000; i < len(pcm); i += 4 {
		tail = max(tail, math.Abs(float64(int16(binary.LittleEndian.Uint16(pcm[i:])))))
	}
	if tail > 0.02*math.MaxInt16 {
		t.Errorf("tail peak %v, want the envelope to have decayed", tail)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if pcm := Synthesize(config.ToneSpec{DurationMs: 0}, 44100); len(pcm) != 0 {
		t.Errorf("zero duration produced %d bytes", len(pcm))
	}
}

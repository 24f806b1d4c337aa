package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/balloonpop/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	spec, ok := config.Sound.SFX[id]
	if !ok {
		return nil, fmt.Errorf("no synthesis spec for sound %d", id)
	}

	data := Synthesize(spec, l.context.SampleRate())
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d rendered empty", id)
	}
	l.sfxCache[id] = data
	return data, nil
}

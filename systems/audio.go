package systems

import (
	"log"
	"sync"

	"github.com/automoto/balloonpop/archetypes"
	"github.com/automoto/balloonpop/assets"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/automoto/balloonpop/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects up front so the first pop plays
// without a synthesis hitch.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.SFXVolume = globalSFXVolume
	audioData.Muted = globalMuted
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a fire-and-forget sound effect. Muted sounds are dropped
// when the queue is flushed.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = gamemath.Clamp(volume, 0, 1)
}

// CycleSFXVolume moves to the next configured volume step, wrapping to the
// first after the loudest.
func CycleSFXVolume() float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return globalSFXVolume
	}
	next := steps[0]
	for _, v := range steps {
		if v > globalSFXVolume+1e-9 {
			next = v
			break
		}
	}
	SetSFXVolume(next)
	return globalSFXVolume
}

// SetMuted mutes or unmutes every sound effect
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound effects are muted
func IsMuted() bool {
	return globalMuted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

package systems

import (
	"github.com/automoto/balloonpop/archetypes"
	"github.com/automoto/balloonpop/components"
	cfg "github.com/automoto/balloonpop/config"
	"github.com/yohamta/donburi/ecs"
)

// globalBestScore survives scene changes like the audio globals do
var globalBestScore int

// UpdateSettings toggles mute from the keyboard or the speaker icon and
// keeps the Settings component in sync with the globals.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	toggle := GetAction(input, cfg.ActionMute).JustPressed
	if input.Pointer.JustTapped && muteIconHit(input.Pointer.X, input.Pointer.Y) {
		toggle = true
		// The icon sits over the game area; keep the click from popping a balloon
		input.Pointer.JustTapped = false
	}
	if toggle {
		SetMuted(!IsMuted())
		SaveCurrentSettings()
	}

	settings.Muted = IsMuted()
	settings.SFXVolume = GetSFXVolume()
	settings.BestScore = globalBestScore
}

// RecordScore raises the in-memory best score. It is persisted when the
// scene exits or the settings change.
func RecordScore(score int) bool {
	if score <= globalBestScore {
		return false
	}
	globalBestScore = score
	return true
}

// BestScore returns the best score across sessions
func BestScore() int {
	return globalBestScore
}

func muteIconHit(x, y float64) bool {
	m, size := cfg.HUD.Margin, cfg.HUD.MuteIconSize+cfg.HUD.Padding*2
	return x >= m && x < m+size && y >= m && y < m+size
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume: GetSFXVolume(),
			Muted:     IsMuted(),
			BestScore: globalBestScore,
		})
	}
	return components.Settings.Get(entry)
}

package components

import "github.com/yohamta/donburi"

// SettingsData stores the persisted player settings (singleton component)
type SettingsData struct {
	SFXVolume float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted     bool
	BestScore int
}

// Settings is the component type for player settings
var Settings = donburi.NewComponentType[SettingsData]()

package config

// SettingsConfig contains persisted settings defaults
type SettingsConfig struct {
	AppName     string // gdata namespace
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "balloonpop",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

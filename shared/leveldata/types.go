package leveldata

// SkyLayout is the parsed background layout of the balloon scene. It has no
// ebiten dependency so the headless runner can read the game-area size from
// the same file the game draws.
type SkyLayout struct {
	Name   string
	Width  int // pixels
	Height int // pixels
	Clouds []Cloud
}

// Cloud is a decorative cloud drifting across the sky.
type Cloud struct {
	X, Y, W, H float64
	Drift      float64 // pixels per frame, negative drifts left
}

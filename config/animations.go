package config

import "github.com/automoto/balloonpop/core"

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// ExitAnimations maps a terminal balloon state to the frame segment its
// exit effect plays once.
var ExitAnimations = map[core.State]AnimationDef{
	core.Deflated: {First: 0, Last: 30, Step: 1, Speed: 1},
	core.Exploded: {First: 0, Last: 20, Step: 1, Speed: 1},
}

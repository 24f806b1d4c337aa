// Package core is the headless balloon game simulation: the balloon
// collection, the spawn scheduler, the per-frame updater and the session
// lifecycle. It has no ebiten dependency; presentation talks to it through
// Session methods and the events declared in events.go.
package core

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// State is the lifecycle state of a balloon.
type State int

const (
	Falling State = iota
	Exploded
	Deflated
)

func (s State) String() string {
	switch s {
	case Falling:
		return "Falling"
	case Exploded:
		return "Exploded"
	case Deflated:
		return "Deflated"
	}
	return "Unknown"
}

// Terminal reports whether s is an end state awaiting exit cleanup.
func (s State) Terminal() bool {
	return s == Exploded || s == Deflated
}

// CanTransition reports whether a balloon in state s may move to next.
// Only Falling balloons change state.
func (s State) CanTransition(next State) bool {
	return s == Falling && next.Terminal()
}

// Balloon is a value snapshot of one balloon.
type Balloon struct {
	ID    int
	X, Y  float64 // top-left corner in game-area pixels
	Speed float64 // pixels per frame
	State State
}

// Center returns the center of a balloon of the given size.
func (b Balloon) Center(size float64) (float64, float64) {
	return b.X + size/2, b.Y + size/2
}

// Contains reports whether the point lies inside the balloon's box.
func (b Balloon) Contains(x, y, size float64) bool {
	return x >= b.X && x < b.X+size && y >= b.Y && y < b.Y+size
}

// BalloonData is the simulation state stored on a balloon entry.
type BalloonData struct {
	ID    int
	Speed float64
	State State
}

var BalloonComponent = donburi.NewComponentType[BalloonData]()

// BodyData holds the balloon's position and bounding box.
type BodyData struct {
	*resolv.Object
}

var BodyComponent = donburi.NewComponentType[BodyData]()

// ResolvBalloon is the resolv tag carried by balloon bodies.
const ResolvBalloon = "balloon"

func snapshot(e *donburi.Entry) Balloon {
	data := BalloonComponent.Get(e)
	body := BodyComponent.Get(e)
	return Balloon{
		ID:    data.ID,
		X:     body.X,
		Y:     body.Y,
		Speed: data.Speed,
		State: data.State,
	}
}

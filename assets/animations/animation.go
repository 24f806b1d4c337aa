// Package animations plays frame segments at a fixed tick rate.
package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	ticks            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	if a.Looped && a.FreezeOnComplete {
		return
	}
	a.ticks++
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a play-once segment has finished.
func (a *Animation) Done() bool {
	return a.Looped && a.FreezeOnComplete
}

// Duration is the number of Update calls one pass over the segment takes.
func (a *Animation) Duration() int {
	step := max(a.Step, 1)
	frames := (a.Last-a.First)/step + 1
	return frames * (int(a.SpeedInTps) + 1)
}

// Progress returns how far through the current pass the animation is, in [0, 1].
func (a *Animation) Progress() float64 {
	if a.Done() {
		return 1
	}
	d := a.Duration()
	if d == 0 {
		return 1
	}
	return min(float64(a.ticks%d)/float64(d), 1)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.ticks = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

// NewOneShot returns an animation that plays the segment once and holds the
// last frame.
func NewOneShot(first, last, step int, speed float32) *Animation {
	a := NewAnimation(first, last, step, speed)
	a.FreezeOnComplete = true
	return a
}

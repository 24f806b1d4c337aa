package core

import "github.com/yohamta/donburi"

// frameTick advances the simulation one frame and requests the next one.
func (s *Session) frameTick(gen uint64) {
	if !s.live(gen) {
		return
	}
	s.step()
	s.frameHandle = s.sched.RequestFrame(func() { s.frameTick(gen) })
}

// step moves every Falling balloon down by its speed. A balloon whose
// bottom edge would pass the floor is clamped onto it and deflates.
func (s *Session) step() {
	floor := s.area.Height - s.cfg.Size

	var deflated []Balloon
	BalloonComponent.Each(s.world, func(e *donburi.Entry) {
		data := BalloonComponent.Get(e)
		if data.State != Falling {
			return
		}

		body := BodyComponent.Get(e)
		y := body.Y + data.Speed
		if y > floor {
			y = floor
			data.State = Deflated
		}
		body.Y = y
		if body.Space != nil {
			body.Update()
		}

		if data.State == Deflated {
			deflated = append(deflated, snapshot(e))
		}
	})

	for _, b := range deflated {
		OnDeflated.Publish(s.world, DeflatedEvent{Balloon: b})
	}
}

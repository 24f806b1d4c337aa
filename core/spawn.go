package core

import "time"

// spawnTick attempts one spawn and reschedules itself while the run that
// scheduled it is still live.
func (s *Session) spawnTick(gen uint64) {
	if !s.live(gen) {
		return
	}

	if s.FallingCount() < s.cfg.MaxBalloons {
		if b, ok := TryPlace(s.Balloons(), s.area, s.cfg, s.rng); ok {
			b.Speed = s.nextSpeed()
			b = s.add(b)
			OnSpawned.Publish(s.world, SpawnedEvent{Balloon: b})
		}
	}

	s.spawnHandle = s.sched.AfterFunc(s.nextSpawnDelay(), func() { s.spawnTick(gen) })
}

func (s *Session) nextSpeed() float64 {
	return s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
}

func (s *Session) nextSpawnDelay() time.Duration {
	lo, hi := s.cfg.MinSpawnDelay(), s.cfg.MaxSpawnDelay()
	return lo + time.Duration(s.rng.Float64()*float64(hi-lo))
}

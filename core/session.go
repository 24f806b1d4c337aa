package core

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/automoto/balloonpop/clock"
	"github.com/automoto/balloonpop/shared/tuning"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the resolv cell size used for tap picking.
const spaceCellSize = 50

// Session is one play-through of the balloon game. It owns the balloon
// collection; the spawn timer and the frame updater mutate it only through
// the session, so every scheduled callback sees the latest committed state.
type Session struct {
	sched clock.Scheduler
	rng   *rand.Rand
	cfg   tuning.Balloon

	world donburi.World
	space *resolv.Space
	area  Area
	index map[int]donburi.Entity

	nextID int
	score  int
	active bool
	// gen changes on every Start and Stop so callbacks from an earlier run
	// turn into no-ops even if they were already queued.
	gen uint64

	spawnHandle clock.Handle
	frameHandle clock.Handle
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for placement, speed and delays.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithConfig overrides the default tuning.
func WithConfig(cfg tuning.Balloon) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithArea sets the initial game-area measurement.
func WithArea(width, height float64) Option {
	return func(s *Session) {
		s.area = sanitizeArea(width, height)
	}
}

// WithWorld makes the session store balloons in an existing world, so the
// presentation ECS can share it.
func WithWorld(w donburi.World) Option {
	return func(s *Session) {
		s.world = w
	}
}

// NewSession creates an inactive session driven by sched.
func NewSession(sched clock.Scheduler, opts ...Option) *Session {
	s := &Session{
		sched: sched,
		cfg:   tuning.Default(),
		index: make(map[int]donburi.Entity),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.world == nil {
		s.world = donburi.NewWorld()
	}
	s.rebuildSpace()
	return s
}

// Start begins a fresh play-through: score 0, empty collection, spawn
// scheduler and frame updater running. A running session is restarted.
func (s *Session) Start() {
	s.Stop()

	s.gen++
	s.active = true
	s.score = 0
	s.clearBalloons()
	s.nextID = 0

	gen := s.gen
	s.spawnTick(gen)
	s.frameHandle = s.sched.RequestFrame(func() { s.frameTick(gen) })
}

// Stop deactivates the session and cancels the pending spawn timer and
// frame callback. Safe to call repeatedly.
func (s *Session) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.gen++
	if s.spawnHandle != nil {
		s.spawnHandle.Cancel()
		s.spawnHandle = nil
	}
	if s.frameHandle != nil {
		s.frameHandle.Cancel()
		s.frameHandle = nil
	}
}

// Tap handles a player tap on a balloon. Unknown ids and balloons that are
// not Falling are ignored. A successful tap explodes the balloon, adds one
// to the score and raises the pop and reward events.
func (s *Session) Tap(id int) bool {
	if !s.active {
		return false
	}
	e, ok := s.Entry(id)
	if !ok {
		return false
	}
	data := BalloonComponent.Get(e)
	if !data.State.CanTransition(Exploded) {
		return false
	}

	data.State = Exploded
	s.score++

	b := snapshot(e)
	OnPopped.Publish(s.world, PoppedEvent{Balloon: b, Score: s.score})
	OnReward.Publish(s.world, RewardEvent{BalloonID: b.ID, Score: s.score})
	return true
}

// TapAt taps the topmost Falling balloon under the point, if any.
func (s *Session) TapAt(x, y float64) bool {
	id, ok := s.BalloonAt(x, y)
	if !ok {
		return false
	}
	return s.Tap(id)
}

// BalloonAt returns the id of the topmost Falling balloon containing the
// point. Later balloons are drawn on top.
func (s *Session) BalloonAt(x, y float64) (int, bool) {
	best, found := 0, false
	consider := func(e *donburi.Entry) {
		data := BalloonComponent.Get(e)
		if data.State != Falling {
			return
		}
		if !snapshot(e).Contains(x, y, s.cfg.Size) {
			return
		}
		if !found || data.ID > best {
			best, found = data.ID, true
		}
	}

	if s.space == nil || x < 0 || y < 0 || x >= s.area.Width || y >= s.area.Height {
		BalloonComponent.Each(s.world, consider)
		return best, found
	}

	probe := resolv.NewObject(x, y, 1, 1)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	collision := probe.Check(0, 0, ResolvBalloon)
	if collision == nil {
		return 0, false
	}
	for _, obj := range collision.Objects {
		id, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if e, ok := s.Entry(id); ok {
			consider(e)
		}
	}
	return best, found
}

// CompleteExit purges a terminal balloon once its exit animation has
// finished. Falling and unknown balloons are left alone.
func (s *Session) CompleteExit(id int) bool {
	if !s.active {
		return false
	}
	e, ok := s.Entry(id)
	if !ok {
		return false
	}
	data := BalloonComponent.Get(e)
	if !data.State.Terminal() {
		return false
	}
	state := data.State
	s.remove(e)
	OnRemoved.Publish(s.world, RemovedEvent{ID: id, State: state})
	return true
}

// SetArea records the game-area measurement. Negative or non-finite sizes
// are treated as unmeasured (0).
func (s *Session) SetArea(width, height float64) {
	a := sanitizeArea(width, height)
	if a == s.area {
		return
	}
	s.area = a
	s.rebuildSpace()
}

func (s *Session) Area() Area {
	return s.area
}

func (s *Session) Active() bool {
	return s.active
}

func (s *Session) Score() int {
	return s.score
}

// Config returns the tuning the session runs with.
func (s *Session) Config() tuning.Balloon {
	return s.cfg
}

// World exposes the donburi world holding the balloon entries.
func (s *Session) World() donburi.World {
	return s.world
}

// Balloons returns a snapshot of every balloon, ordered by id.
func (s *Session) Balloons() []Balloon {
	out := make([]Balloon, 0, len(s.index))
	BalloonComponent.Each(s.world, func(e *donburi.Entry) {
		out = append(out, snapshot(e))
	})
	slices.SortFunc(out, func(a, b Balloon) int { return a.ID - b.ID })
	return out
}

// Balloon returns the snapshot for id.
func (s *Session) Balloon(id int) (Balloon, bool) {
	e, ok := s.Entry(id)
	if !ok {
		return Balloon{}, false
	}
	return snapshot(e), true
}

// FallingCount returns how many balloons are currently Falling.
func (s *Session) FallingCount() int {
	n := 0
	BalloonComponent.Each(s.world, func(e *donburi.Entry) {
		if BalloonComponent.Get(e).State == Falling {
			n++
		}
	})
	return n
}

func (s *Session) live(gen uint64) bool {
	return s.active && gen == s.gen
}

// Entry returns the world entry of a balloon so presentation systems can
// attach their own components to it.
func (s *Session) Entry(id int) (*donburi.Entry, bool) {
	ent, ok := s.index[id]
	if !ok || !s.world.Valid(ent) {
		return nil, false
	}
	return s.world.Entry(ent), true
}

// add stores a new balloon and assigns it the next id.
func (s *Session) add(b Balloon) Balloon {
	s.nextID++
	b.ID = s.nextID

	ent := s.world.Create(BalloonComponent, BodyComponent)
	e := s.world.Entry(ent)
	BalloonComponent.SetValue(e, BalloonData{ID: b.ID, Speed: b.Speed, State: b.State})

	obj := resolv.NewObject(b.X, b.Y, s.cfg.Size, s.cfg.Size, ResolvBalloon)
	obj.Data = b.ID
	BodyComponent.SetValue(e, BodyData{Object: obj})
	if s.space != nil {
		s.space.Add(obj)
	}

	s.index[b.ID] = ent
	return b
}

func (s *Session) remove(e *donburi.Entry) {
	data := BalloonComponent.Get(e)
	body := BodyComponent.Get(e)
	if body.Object != nil && body.Space != nil {
		body.Space.Remove(body.Object)
	}
	delete(s.index, data.ID)
	s.world.Remove(e.Entity())
}

// clearBalloons removes every balloon entry and leaves other entries in the world.
func (s *Session) clearBalloons() {
	var toRemove []*donburi.Entry
	BalloonComponent.Each(s.world, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		s.remove(e)
	}
	clear(s.index)
}

func (s *Session) rebuildSpace() {
	if s.space != nil {
		s.space.Remove(s.space.Objects()...)
	}
	s.space = nil
	if s.area.Width >= 1 && s.area.Height >= 1 {
		s.space = resolv.NewSpace(int(s.area.Width), int(s.area.Height), spaceCellSize, spaceCellSize)
	}

	BalloonComponent.Each(s.world, func(e *donburi.Entry) {
		body := BodyComponent.Get(e)
		if s.space != nil {
			s.space.Add(body.Object)
		}
	})
}

func sanitizeArea(width, height float64) Area {
	clean := func(v float64) float64 {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	return Area{Width: clean(width), Height: clean(height)}
}

package core

import "github.com/yohamta/donburi/features/events"

// Events are queued on the session world and delivered when the host calls
// events.ProcessAllEvents(session.World()).

type SpawnedEvent struct {
	Balloon Balloon
}

// PoppedEvent fires when a tap explodes a balloon. Score already includes it.
type PoppedEvent struct {
	Balloon Balloon
	Score   int
}

type DeflatedEvent struct {
	Balloon Balloon
}

// RewardEvent asks the presentation layer to show the prize reveal.
type RewardEvent struct {
	BalloonID int
	Score     int
}

// RemovedEvent fires when a terminal balloon is purged after its exit.
type RemovedEvent struct {
	ID    int
	State State
}

var (
	OnSpawned  = events.NewEventType[SpawnedEvent]()
	OnPopped   = events.NewEventType[PoppedEvent]()
	OnDeflated = events.NewEventType[DeflatedEvent]()
	OnReward   = events.NewEventType[RewardEvent]()
	OnRemoved  = events.NewEventType[RemovedEvent]()
)

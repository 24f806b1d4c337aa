package components

import "github.com/yohamta/donburi"

// RewardData stores the reward modal state (singleton component)
type RewardData struct {
	Visible   bool
	BalloonID int // balloon that earned the prize on display
	Score     int // score at the time of the pop
	Claimed   int // prizes claimed this scene
}

var Reward = donburi.NewComponentType[RewardData]()

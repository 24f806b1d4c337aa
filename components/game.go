package components

import (
	"github.com/automoto/balloonpop/clock"
	"github.com/automoto/balloonpop/core"
	"github.com/automoto/balloonpop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// BalloonGameData ties the balloon scene's ECS to its simulation (singleton component)
type BalloonGameData struct {
	Session *core.Session
	Loop    *clock.FrameLoop
	Sky     *leveldata.SkyLayout

	CloudOffsets  []float64 // horizontal drift per cloud
	BackRequested bool
}

var BalloonGame = donburi.NewComponentType[BalloonGameData]()

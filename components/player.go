package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	FireCooldown int
	InvulnFrames int
	Lives        int
}

var Player = donburi.NewComponentType[PlayerData]()

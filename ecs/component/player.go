package component

import "github.com/milk9111/wastesorter/player"

type Player struct {
	Controller *player.Controller
}

var PlayerComponent = NewComponent[Player]()

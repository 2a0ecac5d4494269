package ipc

import (
	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/workers"
)

// These constants must stay in sync with the host's message types.
const (
	TypeHello  = "hello"
	TypeAck    = "ack"
	TypeTurn   = "turn"
	TypeOrders = "orders"
)

// HelloMessage opens a session for one AI realm.
type HelloMessage struct {
	Realm int    `json:"realm"`
	Name  string `json:"name"`
	Game  string `json:"game,omitempty"` // folded into the random seed when set
}

type AckMessage struct {
	Status string `json:"status"`
}

// TurnMessage is the realm's view of the game at the start of a turn. Planets
// owned by the realm are listed in World.Planets next to everyone else's.
type TurnMessage struct {
	Realm model.Realm `json:"realm"`
	World model.World `json:"world"`
}

// PlanetOrders is what the AI decided for one planet.
type PlanetOrders struct {
	Planet       string              `json:"planet"`
	Construction *model.Construction `json:"construction,omitempty"`
	Rushed       string              `json:"rushed,omitempty"` // "credits" or "population"
	Removed      string              `json:"removed,omitempty"`
	Labor        workers.Allocation  `json:"labor"`
	Tax          int                 `json:"tax"`
}

// OrdersMessage answers a TurnMessage. Missions lists every mission the turn
// created or moved to the building phase.
type OrdersMessage struct {
	Realm    int              `json:"realm"`
	Turn     int              `json:"turn"`
	Credits  int              `json:"credits"`
	Planets  []PlanetOrders   `json:"planets"`
	Missions []*model.Mission `json:"missions,omitempty"`
}

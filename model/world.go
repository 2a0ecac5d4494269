package model

import "math"

// GameLength is the coarse phase of the game, derived by the host from the
// turn count and the configured game length.
type GameLength string

const (
	GameStarting GameLength = "starting"
	GameEarly    GameLength = "early"
	GameMiddle   GameLength = "middle"
	GameLate     GameLength = "late"
	GameEnd      GameLength = "end"
)

// RealmTotals is a realm's aggregated per-turn production.
type RealmTotals struct {
	Research int `json:"research"`
	Culture  int `json:"culture"`
	Credits  int `json:"credits"`
}

// World is the read-only context shared by every planet decision in a turn.
type World struct {
	Turn    int                 `json:"turn"`
	Length  GameLength          `json:"length"`
	Totals  map[int]RealmTotals `json:"totals"`
	Planets []*Planet           `json:"planets"`
}

// RealmTotals returns the production totals of the realm at index, zero when unknown.
func (w *World) RealmTotals(index int) RealmTotals {
	if w == nil {
		return RealmTotals{}
	}
	return w.Totals[index]
}

// Planet looks up a planet by name.
func (w *World) Planet(name string) *Planet {
	if w == nil {
		return nil
	}
	for _, p := range w.Planets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Distance is the straight-line distance between two map coordinates.
func Distance(x1, y1, x2, y2 int) int {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return int(math.Sqrt(dx*dx + dy*dy))
}

package agent

import (
	"fmt"
	"maps"
	"slices"

	"github.com/nstehr/orrery/orrery-core/ipc"
	"github.com/nstehr/orrery/orrery-core/model"
)

// EventKind identifies a change between two consecutive turns that is worth
// reporting in the turn log.
type EventKind string

const (
	EventPlanetLost      EventKind = "planet_lost"
	EventPlanetGained    EventKind = "planet_gained"
	EventWarDeclared     EventKind = "war_declared"
	EventPeace           EventKind = "peace"
	EventCreditCrisis    EventKind = "credit_crisis"
	EventPhaseTransition EventKind = "phase_transition"
)

// Event represents a significant change detected by diffing consecutive
// turn states.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// stateSnapshot captures the diffable fields of one turn.
type stateSnapshot struct {
	turn    int
	planets map[string]bool // owned planet names
	wars    int
	income  int
	length  model.GameLength
}

func takeSnapshot(turn *ipc.TurnMessage) stateSnapshot {
	s := stateSnapshot{
		turn:    turn.World.Turn,
		planets: make(map[string]bool),
		wars:    turn.Realm.Wars,
		income:  turn.World.RealmTotals(turn.Realm.Index).Credits,
		length:  turn.World.Length,
	}
	for _, p := range turn.World.Planets {
		if p.Owner == turn.Realm.Index {
			s.planets[p.Name] = true
		}
	}
	return s
}

// detectEvents compares the current turn against the previous snapshot.
// A nil prev (first turn of the session) yields no events.
func detectEvents(cur stateSnapshot, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}
	var events []Event
	add := func(kind EventKind, detail string) {
		events = append(events, Event{Kind: kind, Turn: cur.turn, Detail: detail})
	}

	for _, name := range slices.Sorted(maps.Keys(prev.planets)) {
		if !cur.planets[name] {
			add(EventPlanetLost, name)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(cur.planets)) {
		if !prev.planets[name] {
			add(EventPlanetGained, name)
		}
	}

	switch {
	case cur.wars > prev.wars:
		add(EventWarDeclared, fmt.Sprintf("%d active wars", cur.wars))
	case cur.wars < prev.wars:
		add(EventPeace, fmt.Sprintf("%d active wars", cur.wars))
	}

	if cur.income < 0 && prev.income >= 0 {
		add(EventCreditCrisis, fmt.Sprintf("income %d per turn", cur.income))
	}
	if cur.length != prev.length {
		add(EventPhaseTransition, fmt.Sprintf("%s → %s", prev.length, cur.length))
	}
	return events
}

// Package planner decides, once per turn and planet, what an AI planet builds,
// how its citizens work, whether to rush and what tax to levy.
package planner

import (
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/rules"
	"github.com/nstehr/orrery/orrery-core/workers"
)

// Rand is the source of every random choice. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type RushKind string

const (
	RushNone       RushKind = ""
	RushCredits    RushKind = "credits"
	RushPopulation RushKind = "population"
)

// Decision records everything Process changed on one planet.
type Decision struct {
	Planet   string              `json:"planet"`
	Selected *model.Construction `json:"selected,omitempty"`
	Source   string              `json:"source,omitempty"` // ladder rule name or "scored"
	Removed  string              `json:"removed,omitempty"`
	Bound    *model.Mission      `json:"bound,omitempty"`
	Created  []*model.Mission    `json:"created,omitempty"`
	Rush     RushKind            `json:"rush,omitempty"`
	Labor    workers.Allocation  `json:"labor"`
	Tax      int                 `json:"tax"`
}

// Engine holds the compiled ladder. It keeps no per-planet state, so one
// engine can serve every planet of a realm.
type Engine struct {
	ladder *rules.Ladder
	idle   rate.Sometimes
}

// New builds an engine around the default infrastructure ladder.
func New() (*Engine, error) {
	l, err := rules.NewLadder(rules.DefaultLadder())
	if err != nil {
		return nil, err
	}
	return NewEngine(l), nil
}

func NewEngine(l *rules.Ladder) *Engine {
	return &Engine{ladder: l, idle: rate.Sometimes{First: 3, Every: 50}}
}

// Process runs the full turn for one AI planet: construction choice when the
// slot is free, rushing, labor and tax. Planets without population are
// skipped.
func (e *Engine) Process(p *model.Planet, realm *model.Realm, world *model.World, rng Rand) Decision {
	d := Decision{Planet: p.Name, Tax: p.Tax}
	if p.Population <= 0 {
		slog.Debug("skipping empty planet", "planet", p.Name)
		return d
	}

	if p.UnderConstruction == nil {
		e.Choose(p, realm, world, rng, &d)
	}
	// Rushing with population shrinks the planet, so labor comes after it.
	d.Rush = Rush(p, realm, rng)
	d.Labor = workers.Allocate(p, realm, world)
	d.Tax = AdjustTax(p, realm, world)

	if p.UnderConstruction == nil {
		e.idle.Do(func() {
			slog.Info("idle planet", "planet", p.Name, "realm", realm.Name,
				"candidates", len(p.Candidates), "free", p.FreeSlots())
		})
	}
	return d
}

package planner

import (
	"log/slog"

	"github.com/nstehr/orrery/orrery-core/model"
)

// Rush decides whether to finish the current construction immediately, paying
// with credits when the government allows it and with citizens otherwise.
// It returns what was spent, if anything.
func Rush(p *model.Planet, realm *model.Realm, rng Rand) RushKind {
	c := p.UnderConstruction
	if c == nil {
		return RushNone
	}
	if p.RemainingTime(&realm.Race) <= 1 {
		return RushNone
	}
	cost := p.RushCost()
	if cost <= 0 {
		return RushNone
	}
	mission := realm.Missions.BuildingAt(p.Name) != nil

	switch {
	case realm.Government.CreditRush:
		if realm.Credits < cost {
			return RushNone
		}
		bonus := creditTier(realm.Credits, cost)
		if mission {
			bonus += 20
		}
		if c.IsShip() {
			bonus += 5
		}
		if roll(rng) >= bonus {
			return RushNone
		}
		realm.Credits -= cost
		p.CompleteConstruction()
		slog.Debug("rushed with credits", "planet", p.Name, "construction", c.Name(), "cost", cost)
		return RushCredits

	case realm.Government.PopulationRush:
		need := p.RushPopulation()
		if p.Population <= need {
			return RushNone
		}
		bonus := 0
		if mission {
			bonus += 15
		}
		if p.Population >= p.PopulationLimit {
			bonus += 10
		}
		if c.IsShip() {
			bonus += 3
		}
		if roll(rng) >= bonus {
			return RushNone
		}
		p.Population -= need
		p.CompleteConstruction()
		slog.Debug("rushed with population", "planet", p.Name, "construction", c.Name(), "citizens", need)
		return RushPopulation
	}
	return RushNone
}

// creditTier rewards a treasury that is several times the price.
func creditTier(credits, cost int) int {
	switch {
	case credits >= 5*cost:
		return 20
	case credits >= 4*cost:
		return 15
	case credits >= 3*cost:
		return 10
	case credits >= 2*cost:
		return 5
	}
	return 0
}

// roll returns 1..100.
func roll(rng Rand) int { return rng.Intn(100) + 1 }

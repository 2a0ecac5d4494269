package rules

import (
	"log/slog"

	"github.com/nstehr/orrery/orrery-core/model"
)

// cheapestOf returns the cheapest buildable building of type t, first on ties.
func cheapestOf(p *model.Planet, t model.BuildingType) *model.Construction {
	var best *model.Construction
	for i, c := range p.Candidates {
		if !c.IsBuilding() || c.Building.Type != t {
			continue
		}
		if best == nil || cost(c) < cost(*best) {
			best = &p.Candidates[i]
		}
	}
	return best
}

func cost(c model.Construction) int { return c.MetalCost() + c.ProdCost() }

func pick(c *model.Construction) Outcome {
	if c == nil {
		return Outcome{}
	}
	picked := *c
	return Outcome{Pick: &picked}
}

func ActionCheapest(t model.BuildingType) ActionFunc {
	return func(env LadderEnv) Outcome {
		return pick(cheapestOf(env.Planet, t))
	}
}

// ActionBestResearch picks the lab with the highest research bonus, the cheaper
// one on ties.
func ActionBestResearch(env LadderEnv) Outcome {
	var best *model.Construction
	for i, c := range env.Planet.Candidates {
		if !c.IsBuilding() || c.Building.Type != model.BuildingResearch {
			continue
		}
		if best == nil || c.Building.ReseBonus > best.Building.ReseBonus ||
			(c.Building.ReseBonus == best.Building.ReseBonus && cost(c) < cost(*best)) {
			best = &env.Planet.Candidates[i]
		}
	}
	return pick(best)
}

func ActionCitizenBuilding(env LadderEnv) Outcome {
	return pick(env.citizenCandidate())
}

// ActionDefendMission registers a defend mission for the planet. Nothing is
// built by this rule.
func ActionDefendMission(env LadderEnv) Outcome {
	m := model.NewMission(model.MissionDefend)
	m.TargetPlanet = env.Planet.Name
	m.TargetRealm = env.Realm.Index
	m.TargetX, m.TargetY = env.Planet.X, env.Planet.Y
	slog.Debug("defend mission planned", "planet", env.Planet.Name, "mission", m.ID)
	return Outcome{Mission: m}
}

package rules

import "github.com/nstehr/orrery/orrery-core/model"

// citizenCoverage is the share of a citizen building's cost the treasury must
// cover before the ladder asks for one.
const citizenCoverage = 7

// LadderEnv wraps one planet's view of the game and exposes helper methods
// callable from expr expressions.
type LadderEnv struct {
	Planet *model.Planet
	Realm  *model.Realm
	World  *model.World
}

func (e LadderEnv) race() *model.Race { return &e.Realm.Race }

func (e LadderEnv) HasBuilding(t string) bool {
	return containsType(e.Planet.Buildings, t)
}

func (e LadderEnv) EatsFood() bool              { return e.race().EatsFood() }
func (e LadderEnv) ConstructedPopulation() bool { return e.race().ConstructedPopulation }
func (e LadderEnv) MetalInGround() int          { return e.Planet.MetalInGround }
func (e LadderEnv) Population() int             { return e.Planet.Population }

func (e LadderEnv) Production() int { return e.Planet.Output(model.ResProduction, e.race()) }
func (e LadderEnv) Metal() int      { return e.Planet.Output(model.ResMetal, e.race()) }

func (e LadderEnv) Turn() int {
	if e.World == nil {
		return 0
	}
	return e.World.Turn
}

func (e LadderEnv) HasDefendMission() bool {
	return e.Realm.Missions.ForPlanet(model.MissionDefend, e.Planet.Name) != nil
}

// CanAffordCitizen reports whether the race's citizen building is on offer and
// the treasury covers at least a seventh of its cost.
func (e LadderEnv) CanAffordCitizen() bool {
	c := e.citizenCandidate()
	if c == nil {
		return false
	}
	return e.Realm.Credits*citizenCoverage >= c.MetalCost()+c.ProdCost()
}

func (e LadderEnv) citizenCandidate() *model.Construction {
	name := e.race().CitizenBuilding
	if name == "" {
		return nil
	}
	for i, c := range e.Planet.Candidates {
		if c.IsBuilding() && c.Name() == name {
			return &e.Planet.Candidates[i]
		}
	}
	return nil
}

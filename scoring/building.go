package scoring

import "github.com/nstehr/orrery/orrery-core/model"

// tally is the accumulator threaded through the building and ship rules.
// Once settled, later rules leave it untouched.
type tally struct {
	score   int
	settled bool
}

func veto() tally { return tally{score: MustNotBuild, settled: true} }

func fixed(score int) tally { return tally{score: score, settled: true} }

func (t tally) add(n int) tally {
	t.score += n
	return t
}

type buildingRule func(t tally, b *model.Building, s *situation) tally

// buildingRules run left to right. Order matters: vetoes come last so they
// see the final weighted total.
var buildingRules = []buildingRule{
	weightedBonuses,
	focusBonus,
	attitudeBonus,
	strategyBonus,
	happinessBonus,
	fleetCapacityBonus,
	upkeepPenalty,
	buildingVetoes,
}

func scoreBuilding(b *model.Building, s *situation) int {
	var t tally
	for _, rule := range buildingRules {
		if t.settled {
			break
		}
		t = rule(t, b, s)
	}
	return t.score
}

func weightedBonuses(t tally, b *model.Building, s *situation) tally {
	race := s.race

	defense := 15
	if race.CombatTrait {
		defense = 20
	}
	t = t.add(b.DefenseDamage * defense)
	t = t.add(b.ScanRange * 10)
	t = t.add(b.FactBonus * 60)
	if s.planet.MetalInGround > 30 {
		t = t.add(b.MineBonus * 40)
	}

	if race.EatsFood() {
		farm := b.FarmBonus * 40 * race.FarmingSpeed / 100
		if !race.Growth {
			farm /= 2
		}
		t = t.add(farm)
	} else {
		t = t.add(-b.FarmBonus * 20)
	}

	research := b.ReseBonus * 60 * race.ResearchSpeed / 100
	culture := b.CultBonus * 50 * race.CultureSpeed / 100
	if race.EnergyPowered {
		research = research * 3 / 2
		culture = culture * 3 / 2
	}
	t = t.add(research + culture)

	credit := b.CredBonus * 30
	if s.planet.Output(model.ResCredits, race) < 0 {
		credit *= 2
	}
	t = t.add(credit)
	return t.add(b.RecycleBonus * 20)
}

func focusBonus(t tally, b *model.Building, s *situation) tally {
	switch s.planet.Focus {
	case model.FocusMetal:
		return t.add(b.MineBonus * 20)
	case model.FocusProduction:
		return t.add(b.FactBonus * 30)
	case model.FocusFood:
		return t.add(b.FarmBonus * 10)
	case model.FocusResearch:
		return t.add(b.ReseBonus * 40)
	case model.FocusCulture:
		return t.add(b.CultBonus * 50)
	case model.FocusCredits:
		return t.add(b.CredBonus * 20)
	case model.FocusMilitary:
		if b.DefenseDamage > 0 {
			return t.add(30)
		}
	case model.FocusPopulation:
		if b.Type == model.BuildingPopulation {
			return t.add(30)
		}
	}
	return t
}

func attitudeBonus(t tally, b *model.Building, s *situation) tally {
	switch s.realm.Attitude {
	case model.AttitudeDiplomatic:
		return t.add(b.CultBonus * 10)
	case model.AttitudeScientific, model.AttitudeLogical:
		return t.add(b.ReseBonus * 10)
	case model.AttitudeMilitaristic, model.AttitudeAggressive:
		return t.add(b.DefenseDamage * 10)
	case model.AttitudeMerchantical:
		return t.add(b.CredBonus * 10)
	case model.AttitudeExpansionist:
		if b.Type == model.BuildingPopulation {
			return t.add(10)
		}
	case model.AttitudePeaceful:
		return t.add(b.Happiness * 5)
	}
	return t
}

func strategyBonus(t tally, b *model.Building, s *situation) tally {
	switch s.realm.Strategy {
	case model.StrategyCulture:
		if b.Type == model.BuildingCulture {
			return t.add(50)
		}
	case model.StrategyScience:
		if b.Type == model.BuildingResearch {
			return t.add(50)
		}
	case model.StrategyDiplomacy:
		switch b.Type {
		case model.BuildingCulture:
			return t.add(30)
		case model.BuildingHappiness:
			return t.add(20)
		}
	case model.StrategyPopulation:
		if b.Type == model.BuildingPopulation || b.Type == model.BuildingFarm {
			return t.add(40)
		}
	case model.StrategyConquer:
		if b.Type == model.BuildingMilitary || b.Type == model.BuildingFleetCapacity {
			return t.add(20)
		}
	}
	return t
}

// happinessBonus grows as the planet gets unhappier, up to four times.
func happinessBonus(t tally, b *model.Building, s *situation) tally {
	if b.Happiness == 0 || s.realm.Government.HappinessImmune {
		return t
	}
	mult := Clamp(1-s.planet.Happiness, 1, 4)
	return t.add(b.Happiness * s.tuning.HappinessWeight * mult)
}

func fleetCapacityBonus(t tally, b *model.Building, s *situation) tally {
	bonus := b.FleetCapacity * 10
	if s.nearFleetLimit {
		bonus *= 3
	}
	return t.add(bonus)
}

func upkeepPenalty(t tally, b *model.Building, _ *situation) tally {
	return t.add(-b.Maintenance*10 - (b.MetalCost+b.ProdCost)/10)
}

func buildingVetoes(t tally, b *model.Building, s *situation) tally {
	p, race := s.planet, s.race
	metal := p.Output(model.ResMetal, race)
	prod := p.Output(model.ResProduction, race)

	if b.FactBonus > 0 && prod > 0 && prod >= 3*metal {
		return veto()
	}
	if b.MineBonus > 0 && metal > 0 && metal >= 3*prod {
		return veto()
	}
	if b.FarmBonus > 0 {
		if !race.EatsFood() {
			return veto()
		}
		surplus := p.Output(model.ResFood, race) - p.FoodRequired(race)
		if p.Population >= p.PopulationLimit && surplus > 0 {
			return veto()
		}
	}
	if b.ObsoletedBy != "" && s.realm.HasTech(b.ObsoletedBy) && mainOutput(b, p, race) > 10 {
		return veto()
	}
	if b.Type == model.BuildingRadiation {
		if p.Radiation > race.MaxRadiation {
			return fixed(MaxSlotScore)
		}
		return veto()
	}
	return t
}

// mainOutput is the planet's current output of whatever the building mainly
// contributes to.
func mainOutput(b *model.Building, p *model.Planet, race *model.Race) int {
	switch {
	case b.FactBonus > 0:
		return p.Output(model.ResProduction, race)
	case b.MineBonus > 0:
		return p.Output(model.ResMetal, race)
	case b.FarmBonus > 0:
		return p.Output(model.ResFood, race)
	case b.ReseBonus > 0:
		return p.Output(model.ResResearch, race)
	case b.CultBonus > 0:
		return p.Output(model.ResCulture, race)
	case b.CredBonus > 0:
		return p.Output(model.ResCredits, race)
	}
	return 0
}

package scoring

import "github.com/nstehr/orrery/orrery-core/model"

type shipRule func(t tally, sh *model.Ship, s *situation) tally

// shipRules run left to right; a veto or zero override settles the score.
var shipRules = []shipRule{
	shipBase,
	orbitalAdjust,
	militaryMissions,
	scoutBonus,
	colonyBonus,
	gatherShips,
	spyBonus,
	tradeBonus,
	starbaseBonus,
}

func scoreShip(sh *model.Ship, s *situation) int {
	var t tally
	for _, rule := range shipRules {
		if t.settled {
			break
		}
		t = rule(t, sh, s)
	}
	return t.score
}

// powerMultiplier rises with the game phase: late fleets matter more.
func powerMultiplier(length model.GameLength) int {
	switch length {
	case model.GameEarly:
		return 3
	case model.GameMiddle:
		return 4
	case model.GameLate, model.GameEnd:
		return 5
	default:
		return 2
	}
}

func gameLength(w *model.World) model.GameLength {
	if w == nil {
		return model.GameStarting
	}
	return w.Length
}

// shipBase starts at 20 because ships do not use a ground slot.
func shipBase(t tally, sh *model.Ship, s *situation) tally {
	mult := powerMultiplier(gameLength(s.world))
	if s.planet.Focus == model.FocusMilitary {
		mult++
	}
	return t.add(20 + sh.MilitaryPower*mult - (sh.MetalCost+sh.ProdCost)/10)
}

func orbitalAdjust(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Orbital {
		return t
	}
	if sh.MinorOrbital {
		return fixed(0)
	}
	if cur := s.planet.Orbital; cur != nil {
		if cur.Name == sh.Name || cur.Mass > sh.Mass || cur.MilitaryPower > sh.MilitaryPower {
			return fixed(0)
		}
	}
	return t.add(sh.Mass * 5)
}

func militaryMissions(t tally, sh *model.Ship, s *situation) tally {
	if sh.MilitaryPower <= 0 {
		return t
	}
	tn := s.tuning
	missions := &s.realm.Missions
	t = t.add(s.realm.Wars * tn.WarBonus)

	if m := missions.ForPlanet(model.MissionDefend, s.planet.Name); m != nil {
		switch m.Phase {
		case model.PhasePlanning:
			flat := 5
			if s.realm.Attitude == model.AttitudeMilitaristic || s.realm.Attitude == model.AttitudeAggressive {
				flat = 10
			}
			t = t.add(sh.MilitaryPower*tn.DefendPlanning + flat)
		case model.PhaseBuilding:
			t = t.add(sh.MilitaryPower * tn.DefendBuilding)
		}
	}

	attack := missions.Find(model.MissionAttack, model.PhasePlanning)
	assault := missions.FindGather(model.GatherAssault, model.PhasePlanning)
	if attack != nil || assault != nil {
		flat := 10
		switch s.realm.Attitude {
		case model.AttitudeAggressive, model.AttitudeMilitaristic:
			flat = 20
		case model.AttitudeBackstabbing:
			flat = 15
		}
		t = t.add(sh.MilitaryPower*tn.AttackPlanning + flat)
		if attack != nil && missions.HasGather(model.GatherAssault) {
			t = t.add(tn.AssaultGather)
		}
	}
	return t
}

func scoutBonus(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Scout {
		return t
	}
	missions := &s.realm.Missions
	if s.realm.FleetCount == 0 {
		t = t.add(s.tuning.ScoutNoFleets)
	}
	if missions.Find(model.MissionExplore, model.PhasePlanning) != nil ||
		missions.Find(model.MissionDiplomaticDelegacy, model.PhasePlanning) != nil {
		t = t.add(s.tuning.ScoutMission)
	}
	if s.realm.Attitude == model.AttitudeExpansionist {
		t = t.add(5)
	}
	return t
}

// colonyBonus never lets a planet give away its last colonist.
func colonyBonus(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Colony {
		return t
	}
	missions := s.realm.Missions.FindAll(model.MissionColonize, model.PhasePlanning)
	if len(missions) == 0 || s.planet.Population == 1 {
		return veto()
	}
	for _, tier := range []int{4, 8, 12} {
		if s.planet.Population > tier {
			t = t.add(s.tuning.ColonyTier)
		}
	}
	best := colonyValue(missions[0], s)
	for _, m := range missions[1:] {
		best = max(best, colonyValue(m, s))
	}
	return t.add(best)
}

func gatherShips(t tally, sh *model.Ship, s *situation) tally {
	for _, g := range []struct {
		flag bool
		kind model.GatherKind
	}{
		{sh.Bomber, model.GatherBomber},
		{sh.Trooper, model.GatherTrooper},
	} {
		if !g.flag {
			continue
		}
		if s.realm.Missions.FindGather(g.kind, model.PhasePlanning) == nil {
			return veto()
		}
		t = t.add(s.tuning.GatherBonus)
		if s.realm.Attitude == model.AttitudeAggressive {
			t = t.add(10)
		}
	}
	return t
}

// spyLevelThreshold is the espionage level below which a met realm counts as
// under-watched.
const spyLevelThreshold = 5

func spyBonus(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Spy {
		return t
	}
	if s.realm.Missions.Find(model.MissionSpy, model.PhasePlanning) == nil {
		return veto()
	}
	t = t.add(len(s.realm.UnderSpied(spyLevelThreshold)) * s.tuning.SpyPerRealm)
	if s.realm.Attitude == model.AttitudeBackstabbing {
		t = t.add(10)
	}
	return t
}

func tradeBonus(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Trade {
		return t
	}
	m := s.realm.Missions.Find(model.MissionTrade, model.PhasePlanning)
	if m == nil {
		return veto()
	}
	tx, ty := m.TargetX, m.TargetY
	if target := s.world.Planet(m.TargetPlanet); target != nil {
		tx, ty = target.X, target.Y
	}
	dist := model.Distance(s.planet.X, s.planet.Y, tx, ty)
	t = t.add(min(dist/2, s.tuning.TradeDistanceCap))
	if s.realm.Strategy == model.StrategyDiplomacy {
		t = t.add(20)
	}
	if s.realm.Attitude == model.AttitudeMerchantical {
		t = t.add(10)
	}
	return t
}

func starbaseBonus(t tally, sh *model.Ship, s *situation) tally {
	if !sh.Starbase {
		return t
	}
	if s.realm.Missions.Find(model.MissionDeployStarbase, model.PhasePlanning) == nil {
		return veto()
	}
	research, culture, credit := 10, 10, 10
	switch s.realm.Attitude {
	case model.AttitudeScientific:
		research = 20
	case model.AttitudeDiplomatic:
		culture = 20
	case model.AttitudeMerchantical:
		credit = 20
	}
	t = t.add(sh.StarbaseResearch*research + sh.StarbaseCulture*culture + sh.StarbaseCredit*credit)

	focus := s.planet.Focus
	if (focus == model.FocusResearch && sh.StarbaseResearch > 0) ||
		(focus == model.FocusCulture && sh.StarbaseCulture > 0) ||
		(focus == model.FocusCredits && sh.StarbaseCredit > 0) {
		t = t.add(s.tuning.StarbaseFocus)
	}
	return t
}

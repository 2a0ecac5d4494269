package planner

import (
	"log/slog"
	"math"

	"github.com/nstehr/orrery/orrery-core/model"
)

// BindShip attaches a freshly selected ship to the first pending mission that
// wants it and moves that mission to the building phase. The second result is
// a mission created for the occasion (only ever a spy mission).
func BindShip(sh *model.Ship, p *model.Planet, realm *model.Realm, rng Rand) (bound, created *model.Mission) {
	if sh.Privateer {
		return nil, nil
	}
	missions := &realm.Missions
	planning := func(t model.MissionType) *model.Mission { return missions.Find(t, model.PhasePlanning) }
	gather := func(k model.GatherKind) *model.Mission { return missions.FindGather(k, model.PhasePlanning) }
	military := sh.MilitaryPower > 0

	var m *model.Mission
	switch {
	case sh.Spy:
		m = planning(model.MissionSpy)
		if m == nil {
			m = newSpyMission(realm)
			created = m
		}
	case sh.Colony:
		m = planning(model.MissionColonize)
	}
	if m == nil && military && realm.Race.ZeroGravity {
		m = defendFor(missions, p.Name)
	}
	if m == nil && sh.Trooper {
		m = gather(model.GatherTrooper)
	}
	if m == nil && sh.Bomber {
		m = gather(model.GatherBomber)
	}
	if m == nil && military {
		m = assaultFor(missions, realm.Attitude, rng)
	}
	if m == nil && sh.Trade {
		m = planning(model.MissionTrade)
	}
	if m == nil && sh.Scout {
		m = planning(model.MissionDiplomaticDelegacy)
		if m == nil {
			m = planning(model.MissionExplore)
		}
	}
	if m == nil && sh.Starbase {
		m = planning(model.MissionDeployStarbase)
	}
	if m == nil && military {
		explore, defend := planning(model.MissionExplore), defendFor(missions, p.Name)
		switch realm.Attitude {
		case model.AttitudeExpansionist, model.AttitudeScientific, model.AttitudeLogical:
			m = firstOf(explore, defend)
		default:
			m = firstOf(defend, explore)
		}
	}
	if m == nil {
		return nil, created
	}

	if err := m.Advance(model.PhaseBuilding); err != nil {
		slog.Warn("mission binding failed", "planet", p.Name, "ship", sh.Name, "error", err)
		return nil, created
	}
	m.PlanetBuilding = p.Name
	m.ShipName = sh.Name
	slog.Debug("ship bound to mission", "planet", p.Name, "ship", sh.Name, "mission", m.Type, "id", m.ID)
	return m, created
}

// newSpyMission targets the met realm the realm knows least about. It returns
// nil when no realm has been met. Scoring keeps spy ships at -1 until a spy
// mission is planning, so Choose always attaches; only direct BindShip callers
// (the host binding a ship it queued itself) reach this.
func newSpyMission(realm *model.Realm) *model.Mission {
	targets := realm.UnderSpied(math.MaxInt)
	if len(targets) == 0 {
		return nil
	}
	m := model.NewMission(model.MissionSpy)
	m.TargetRealm = targets[0]
	realm.Missions.Add(m)
	return m
}

// defendFor prefers a defend mission for the building planet over any other.
func defendFor(missions *model.MissionRepository, planet string) *model.Mission {
	if m := missions.ForPlanet(model.MissionDefend, planet); m != nil && m.Phase == model.PhasePlanning {
		return m
	}
	return missions.Find(model.MissionDefend, model.PhasePlanning)
}

// assaultFor splits military ships between fleet assaults and starbase
// assaults. The starbase share is drawn from 30..60 percent and nudged by
// attitude.
func assaultFor(missions *model.MissionRepository, attitude model.Attitude, rng Rand) *model.Mission {
	chance := 30 + rng.Intn(31)
	switch attitude {
	case model.AttitudeAggressive, model.AttitudeBackstabbing:
		chance += 10
	case model.AttitudePeaceful, model.AttitudeDiplomatic:
		chance -= 10
	}
	fleet := missions.FindGather(model.GatherAssault, model.PhasePlanning)
	starbase := missions.FindGather(model.GatherStarbaseAssault, model.PhasePlanning)
	if rng.Intn(100) < chance {
		return firstOf(starbase, fleet)
	}
	return firstOf(fleet, starbase)
}

func firstOf(ms ...*model.Mission) *model.Mission {
	for _, m := range ms {
		if m != nil {
			return m
		}
	}
	return nil
}

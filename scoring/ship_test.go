package scoring

import (
	"testing"

	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/model/modeltest"
)

// withMission registers a planning mission of type mt, adjusted by mod.
func withMission(mt model.MissionType, mod func(m *model.Mission)) setupFunc {
	return func(_ *model.Planet, realm *model.Realm, _ *model.World) {
		m := model.NewMission(mt)
		if mod != nil {
			mod(m)
		}
		realm.Missions.Add(m)
	}
}

func withGather(kind model.GatherKind) setupFunc {
	return withMission(model.MissionGather, func(m *model.Mission) { m.Gather = kind })
}

func defendTerra(phase model.MissionPhase) setupFunc {
	return withMission(model.MissionDefend, func(m *model.Mission) {
		m.TargetPlanet = "Terra"
		m.Phase = phase
	})
}

func TestMilitaryShipScores(t *testing.T) {
	fighter := ship(modeltest.Fighter())
	attack := withMission(model.MissionAttack, nil)
	underway := func(m *model.Mission) { m.Phase = model.PhaseBuilding }

	runScoreCases(t, []scoreCase{
		{name: "attack planning", c: fighter, setup: attack, want: 107},
		{name: "attack aggressive", c: fighter, setup: all(attack, withAttitude(model.AttitudeAggressive)), want: 117},
		{name: "attack backstabbing", c: fighter, setup: all(attack, withAttitude(model.AttitudeBackstabbing)), want: 112},
		{name: "attack with assault gather", c: fighter, setup: all(attack, withGather(model.GatherAssault)), want: 137},
		{name: "advanced attack with assault gather", scorer: Advanced{}, c: fighter, setup: all(attack, withGather(model.GatherAssault)), want: 163},
		{name: "assault gather alone", c: fighter, setup: withGather(model.GatherAssault), want: 107},
		{name: "attack already building", c: fighter, setup: withMission(model.MissionAttack, underway), want: 49},
		{name: "defend building", c: fighter, setup: defendTerra(model.PhaseBuilding), want: 65},
		{name: "advanced defend building", scorer: Advanced{}, c: fighter, setup: defendTerra(model.PhaseBuilding), want: 81},
		{name: "defend planning militaristic", c: fighter, setup: all(defendTerra(model.PhasePlanning), withAttitude(model.AttitudeMilitaristic)), want: 91},
		{
			name:   "advanced at war",
			scorer: Advanced{},
			c:      fighter,
			setup:  func(_ *model.Planet, realm *model.Realm, _ *model.World) { realm.Wars = 2 },
			want:   79,
		},
		{name: "military focus", c: fighter, setup: withFocus(model.FocusMilitary), want: 65},
		{
			name:  "middle game",
			c:     fighter,
			setup: func(_ *model.Planet, _ *model.Realm, w *model.World) { w.Length = model.GameMiddle },
			want:  81,
		},
		{
			name:  "late game",
			c:     fighter,
			setup: func(_ *model.Planet, _ *model.Realm, w *model.World) { w.Length = model.GameLate },
			want:  97,
		},
	})
}

func TestScoutScores(t *testing.T) {
	scout := ship(modeltest.Scout())
	noFleets := func(_ *model.Planet, realm *model.Realm, _ *model.World) { realm.FleetCount = 0 }

	runScoreCases(t, []scoreCase{
		{name: "nothing to scout", c: scout, want: 19},
		{name: "no fleets", c: scout, setup: noFleets, want: 59},
		{name: "advanced no fleets", scorer: Advanced{}, c: scout, setup: noFleets, want: 69},
		{name: "explore planning", c: scout, setup: withMission(model.MissionExplore, nil), want: 49},
		{name: "advanced explore planning", scorer: Advanced{}, c: scout, setup: withMission(model.MissionExplore, nil), want: 59},
		{name: "delegacy planning", c: scout, setup: withMission(model.MissionDiplomaticDelegacy, nil), want: 49},
		{
			name:  "explore already building",
			c:     scout,
			setup: withMission(model.MissionExplore, func(m *model.Mission) { m.Phase = model.PhaseBuilding }),
			want:  19,
		},
		{name: "expansionist", c: scout, setup: withAttitude(model.AttitudeExpansionist), want: 24},
	})
}

func TestGatherShipScores(t *testing.T) {
	runScoreCases(t, []scoreCase{
		{name: "bomber", c: ship(modeltest.Bomber()), setup: withGather(model.GatherBomber), want: 68},
		{name: "bomber aggressive", c: ship(modeltest.Bomber()), setup: all(withGather(model.GatherBomber), withAttitude(model.AttitudeAggressive)), want: 78},
		{name: "advanced bomber", scorer: Advanced{}, c: ship(modeltest.Bomber()), setup: withGather(model.GatherBomber), want: 78},
		{name: "bomber with trooper gather only", c: ship(modeltest.Bomber()), setup: withGather(model.GatherTrooper), want: MustNotBuild},
		{name: "trooper", c: ship(modeltest.Trooper()), setup: withGather(model.GatherTrooper), want: 61},
	})
}

func TestTradeShipScores(t *testing.T) {
	trade := ship(modeltest.TradeShip())
	target := func(x int) setupFunc {
		return withMission(model.MissionTrade, func(m *model.Mission) { m.TargetX = x })
	}

	runScoreCases(t, []scoreCase{
		{name: "near target", c: trade, setup: target(30), want: 43},
		{name: "distance capped", c: trade, setup: target(200), want: 68},
		{name: "advanced distance cap", scorer: Advanced{}, c: trade, setup: target(200), want: 78},
		{name: "diplomacy strategy", c: trade, setup: all(target(30), withStrategy(model.StrategyDiplomacy)), want: 63},
		{
			name: "target planet position",
			c:    trade,
			setup: all(
				func(_ *model.Planet, _ *model.Realm, w *model.World) {
					w.Planets = []*model.Planet{{Name: "Vega", Y: 40}}
				},
				withMission(model.MissionTrade, func(m *model.Mission) { m.TargetPlanet = "Vega" }),
			),
			want: 48,
		},
	})
}

func TestStarbaseScores(t *testing.T) {
	starbase := ship(modeltest.Starbase())
	deploy := withMission(model.MissionDeployStarbase, nil)

	runScoreCases(t, []scoreCase{
		{name: "merchantical", c: starbase, setup: deploy, want: 35},
		{name: "scientific", c: starbase, setup: all(deploy, withAttitude(model.AttitudeScientific)), want: 45},
		{name: "diplomatic", c: starbase, setup: all(deploy, withAttitude(model.AttitudeDiplomatic)), want: 45},
		{name: "research focus", c: starbase, setup: all(deploy, withFocus(model.FocusResearch)), want: 55},
		{name: "advanced research focus", scorer: Advanced{}, c: starbase, setup: all(deploy, withFocus(model.FocusResearch)), want: 65},
		{name: "credit focus without credit output", c: starbase, setup: all(deploy, withFocus(model.FocusCredits)), want: 35},
	})
}

func TestColonyShipTiers(t *testing.T) {
	colony := ship(modeltest.ColonyShip())
	vega := all(
		func(_ *model.Planet, _ *model.Realm, w *model.World) {
			w.Planets = append(w.Planets, &model.Planet{Name: "Vega", X: 10, GroundSize: 10, Radiation: 1})
		},
		withMission(model.MissionColonize, func(m *model.Mission) { m.TargetPlanet = "Vega" }),
	)
	population := func(n int) setupFunc {
		return func(p *model.Planet, _ *model.Realm, _ *model.World) { p.Population = n }
	}

	runScoreCases(t, []scoreCase{
		{name: "small colony", c: colony, setup: all(vega, population(4)), want: 52},
		{name: "one tier", c: colony, setup: vega, want: 62},
		{name: "two tiers", c: colony, setup: all(vega, population(9)), want: 72},
		{name: "three tiers", c: colony, setup: all(vega, population(13)), want: 82},
		{name: "advanced tier weight", scorer: Advanced{}, c: colony, setup: vega, want: 67},
		{name: "population focus", c: colony, setup: all(vega, withFocus(model.FocusPopulation)), want: 72},
		{
			name:  "early game",
			c:     colony,
			setup: all(vega, func(_ *model.Planet, _ *model.Realm, w *model.World) { w.Length = model.GameEarly }),
			want:  52,
		},
		{
			name: "irradiated target",
			c:    colony,
			setup: all(vega, func(_ *model.Planet, _ *model.Realm, w *model.World) {
				w.Planets[0].Radiation = 6
			}),
			want: 42,
		},
		{
			name: "best of two targets",
			c:    colony,
			setup: all(vega,
				func(_ *model.Planet, _ *model.Realm, w *model.World) {
					w.Planets = append(w.Planets, &model.Planet{Name: "Rigel", X: 2, GroundSize: 12, Radiation: 1})
				},
				withMission(model.MissionColonize, func(m *model.Mission) { m.TargetPlanet = "Rigel" }),
			),
			want: 70,
		},
	})
}

func TestSpyShipWeights(t *testing.T) {
	spy := ship(modeltest.SpyShip())
	watched := all(
		withMission(model.MissionSpy, nil),
		func(_ *model.Planet, realm *model.Realm, _ *model.World) { realm.Espionage = map[int]int{2: 1, 3: 7} },
	)

	runScoreCases(t, []scoreCase{
		{name: "standard", c: spy, setup: watched, want: 29},
		{name: "advanced", scorer: Advanced{}, c: spy, setup: watched, want: 34},
		{name: "backstabbing", c: spy, setup: all(watched, withAttitude(model.AttitudeBackstabbing)), want: 39},
	})
}

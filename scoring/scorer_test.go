package scoring

import (
	"testing"

	"github.com/nstehr/orrery/orrery-core/model"
	"github.com/nstehr/orrery/orrery-core/model/modeltest"
)

func building(b model.Building) model.Construction { return model.BuildingConstruction(b) }
func ship(s model.Ship) model.Construction         { return model.ShipConstruction(s) }

func scoreOne(t *testing.T, sc Scorer, c model.Construction, p *model.Planet, realm *model.Realm, world *model.World) int {
	t.Helper()
	scores := sc.ScoreAll([]model.Construction{c}, p, realm, world, realm.NearFleetLimit())
	if len(scores) != 1 {
		t.Fatalf("ScoreAll returned %d scores, want 1", len(scores))
	}
	return scores[0]
}

func TestReferenceBuildingScores(t *testing.T) {
	tests := []struct {
		name  string
		race  func() model.Race
		mod   func(r *model.Race)
		build model.Building
		want  int
	}{
		{"farm", modeltest.Human, nil, modeltest.BasicFarm(), 39},
		{"farm fast farmers", modeltest.Human, func(r *model.Race) { r.FarmingSpeed = 125 }, modeltest.BasicFarm(), 49},
		{"farm for non-eaters", modeltest.Mechion, nil, modeltest.BasicFarm(), MustNotBuild},
		{"factory", modeltest.Human, nil, modeltest.BasicFactory(), 59},
		{"mine", modeltest.Human, nil, modeltest.BasicMine(), 40},
		{"lab", modeltest.Human, nil, modeltest.BasicLab(), 59},
		{"lab fast research", modeltest.Human, func(r *model.Race) { r.ResearchSpeed = 125 }, modeltest.BasicLab(), 74},
		{"turret", modeltest.Human, nil, modeltest.DefenseTurret(), 39},
		{"turret combat race", modeltest.Human, func(r *model.Race) { r.CombatTrait = true }, modeltest.DefenseTurret(), 54},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			race := tt.race()
			if tt.mod != nil {
				tt.mod(&race)
			}
			realm := modeltest.Realm(race)
			got := scoreOne(t, Standard{}, building(tt.build), modeltest.Planet(), realm, modeltest.World())
			if got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFighterScore(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	got := scoreOne(t, Standard{}, ship(modeltest.Fighter()), modeltest.Planet(), realm, modeltest.World())
	if got != 49 {
		t.Errorf("fighter score = %d, want 49", got)
	}

	realm.Wars = 2
	got = scoreOne(t, Standard{}, ship(modeltest.Fighter()), modeltest.Planet(), realm, modeltest.World())
	if got != 69 {
		t.Errorf("fighter score at war = %d, want 69", got)
	}
}

func TestDefendMissionFavorsAdvanced(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	m := model.NewMission(model.MissionDefend)
	m.TargetPlanet = "Terra"
	realm.Missions.Add(m)

	std := scoreOne(t, Standard{}, ship(modeltest.Fighter()), modeltest.Planet(), realm, modeltest.World())
	adv := scoreOne(t, Advanced{}, ship(modeltest.Fighter()), modeltest.Planet(), realm, modeltest.World())
	if std != 86 {
		t.Errorf("standard = %d, want 86", std)
	}
	if adv != 102 {
		t.Errorf("advanced = %d, want 102", adv)
	}
}

func TestMissionShipsNeedMission(t *testing.T) {
	ships := []model.Ship{
		modeltest.ColonyShip(),
		modeltest.Bomber(),
		modeltest.Trooper(),
		modeltest.SpyShip(),
		modeltest.TradeShip(),
		modeltest.Starbase(),
	}
	realm := modeltest.Realm(modeltest.Human())
	for _, sh := range ships {
		t.Run(sh.Name, func(t *testing.T) {
			got := scoreOne(t, Standard{}, ship(sh), modeltest.Planet(), realm, modeltest.World())
			if got != MustNotBuild {
				t.Errorf("score without mission = %d, want %d", got, MustNotBuild)
			}
		})
	}
}

func TestSpyShipCountsUnderSpiedRealms(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	realm.Missions.Add(model.NewMission(model.MissionSpy))
	realm.Espionage = map[int]int{2: 1, 3: 7}

	got := scoreOne(t, Standard{}, ship(modeltest.SpyShip()), modeltest.Planet(), realm, modeltest.World())
	if got != 29 {
		t.Errorf("spy score = %d, want 29", got)
	}
}

func TestColonyShip(t *testing.T) {
	world := modeltest.World()
	world.Planets = []*model.Planet{{Name: "Vega", X: 10, GroundSize: 10, Radiation: 1}}
	realm := modeltest.Realm(modeltest.Human())
	m := model.NewMission(model.MissionColonize)
	m.TargetPlanet = "Vega"
	realm.Missions.Add(m)

	got := scoreOne(t, Standard{}, ship(modeltest.ColonyShip()), modeltest.Planet(), realm, world)
	if got != 62 {
		t.Errorf("colony score = %d, want 62", got)
	}

	p := modeltest.Planet()
	p.Population = 1
	if got := scoreOne(t, Standard{}, ship(modeltest.ColonyShip()), p, realm, world); got != MustNotBuild {
		t.Errorf("colony from last colonist = %d, want %d", got, MustNotBuild)
	}
}

func TestOrbitalReplacement(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	p := modeltest.Planet()
	if got := scoreOne(t, Standard{}, ship(modeltest.Orbital()), p, realm, modeltest.World()); got != 52 {
		t.Errorf("orbital on empty orbit = %d, want 52", got)
	}
	cur := modeltest.Orbital()
	p.Orbital = &cur
	if got := scoreOne(t, Standard{}, ship(modeltest.Orbital()), p, realm, modeltest.World()); got != 0 {
		t.Errorf("duplicate orbital = %d, want 0", got)
	}
}

func TestBuildTimePenalty(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	slow := modeltest.BasicLab()
	slow.ProdCost = 60 // 20 turns at 3 production
	if got := scoreOne(t, Standard{}, building(slow), modeltest.Planet(), realm, modeltest.World()); got != 27 {
		t.Errorf("20 turn lab = %d, want 27", got)
	}
	slow.ProdCost = 90 // 30 turns
	if got := scoreOne(t, Standard{}, building(slow), modeltest.Planet(), realm, modeltest.World()); got != MustNotBuild {
		t.Errorf("30 turn lab = %d, want %d", got, MustNotBuild)
	}
}

func TestTimePenalty(t *testing.T) {
	tests := []struct {
		score, turns int
		citizen      bool
		want         int
	}{
		{MustNotBuild, 3, false, MustNotBuild},
		{80, -1, false, MustNotBuild},
		{80, 26, false, MustNotBuild},
		{80, 25, false, 40},
		{80, 16, true, 20},
		{80, 15, true, 80},
	}
	for _, tt := range tests {
		if got := timePenalty(tt.score, tt.turns, tt.citizen); got != tt.want {
			t.Errorf("timePenalty(%d, %d, %v) = %d, want %d", tt.score, tt.turns, tt.citizen, got, tt.want)
		}
	}
}

func TestRadiationDampener(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	p := modeltest.Planet()
	if got := scoreOne(t, Standard{}, building(modeltest.RadiationDampener()), p, realm, modeltest.World()); got != MustNotBuild {
		t.Errorf("dampener on safe planet = %d, want %d", got, MustNotBuild)
	}
	p.Radiation = 6
	if got := scoreOne(t, Standard{}, building(modeltest.RadiationDampener()), p, realm, modeltest.World()); got != MaxSlotScore {
		t.Errorf("dampener on irradiated planet = %d, want %d", got, MaxSlotScore)
	}
}

func TestFarmAtPopulationLimit(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	p := modeltest.Planet()
	p.Population = 12
	p.Farmers = 14
	p.Workers, p.Miners = 0, 0
	if got := scoreOne(t, Standard{}, building(modeltest.BasicFarm()), p, realm, modeltest.World()); got != MustNotBuild {
		t.Errorf("farm with surplus at limit = %d, want %d", got, MustNotBuild)
	}
}

func TestScoresStayInRange(t *testing.T) {
	realm := modeltest.Realm(modeltest.Human())
	realm.Strategy = model.StrategyScience
	realm.Attitude = model.AttitudeScientific
	p := modeltest.Planet()
	p.Focus = model.FocusResearch
	big := modeltest.BasicLab()
	big.ReseBonus = 10
	if got := scoreOne(t, Standard{}, building(big), p, realm, modeltest.World()); got != MaxSlotScore {
		t.Errorf("oversized lab = %d, want %d", got, MaxSlotScore)
	}
}

func TestForDifficulty(t *testing.T) {
	tests := []struct {
		d    model.Difficulty
		want string
	}{
		{model.DifficultyWeak, "standard"},
		{model.DifficultyNormal, "standard"},
		{model.DifficultyHard, "advanced"},
		{model.DifficultyChallenging, "advanced"},
	}
	for _, tt := range tests {
		if got := ForDifficulty(tt.d).Name(); got != tt.want {
			t.Errorf("ForDifficulty(%s) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(300, MustNotBuild, MaxSlotScore); got != MaxSlotScore {
		t.Errorf("Clamp(300) = %d", got)
	}
	if got := Clamp(-40, MustNotBuild, MaxSlotScore); got != MustNotBuild {
		t.Errorf("Clamp(-40) = %d", got)
	}
	if got := Clamp(0.5, 0.0, 1.0); got != 0.5 {
		t.Errorf("Clamp(0.5) = %v", got)
	}
}
